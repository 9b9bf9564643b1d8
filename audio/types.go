package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"
)

// Sentinel errors
var (
	ErrAssetMissing = errors.New("audio asset missing")
	ErrAssetDecode  = errors.New("audio asset decode failed")
	ErrAssetUnknown = errors.New("audio asset load failed")
	ErrNoDevice     = errors.New("audio device unavailable")
)

// LoadError describes a failed asset load
// Err wraps exactly one of ErrAssetMissing, ErrAssetDecode, ErrAssetUnknown
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Clip is a fully decoded audio asset
type Clip struct {
	buffer *beep.Buffer
}

// NewClip wraps a decoded buffer
func NewClip(buf *beep.Buffer) *Clip {
	return &Clip{buffer: buf}
}

// Len returns the clip length in samples, zero for an empty clip
func (c *Clip) Len() int {
	if c == nil || c.buffer == nil {
		return 0
	}
	return c.buffer.Len()
}

// Format returns the decoded stream format
func (c *Clip) Format() beep.Format {
	if c == nil || c.buffer == nil {
		return beep.Format{}
	}
	return c.buffer.Format()
}

// Duration returns the playback length at the clip's native rate
func (c *Clip) Duration() time.Duration {
	n := c.Len()
	if n == 0 {
		return 0
	}
	return c.buffer.Format().SampleRate.D(n)
}

// Voice is one sound the mix wants audible
// Name selects the per-sound gain; Start is in simulation time
type Voice struct {
	Name  string
	Clip  *Clip
	Start time.Time
	Loop  bool
}

// id identifies a voice across successive mixes
// n tells apart voices sharing name and start, e.g. two releases in one tick
func (v Voice) id(n int) voiceID {
	return voiceID{name: v.Name, start: v.Start.UnixNano(), n: n}
}

type voiceID struct {
	name  string
	start int64
	n     int
}

// Config holds player settings
type Config struct {
	Enabled      bool
	MasterVolume float64            // 0.0-1.0
	Volumes      map[string]float64 // per voice name, 0.0-1.0
	SampleRate   int
}

// DefaultConfig returns unmuted settings at 44.1kHz
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.8,
		Volumes:      map[string]float64{},
		SampleRate:   44100,
	}
}

// gain returns the effective linear gain for a voice name
func (c *Config) gain(name string) float64 {
	vol := 1.0
	if v, ok := c.Volumes[name]; ok {
		vol = v
	}
	return vol * c.MasterVolume
}
