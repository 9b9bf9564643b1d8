package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// resampleQuality trades CPU for fidelity when clip and device rates differ
const resampleQuality = 4

// Player keeps the device mix in step with a declarative voice list
// Each voice is started once and then left to the mixer; voices that drop
// out of the list are forgotten but never cut short
type Player struct {
	mu      sync.Mutex
	config  *Config
	rate    beep.SampleRate
	mixer   *beep.Mixer
	started map[voiceID]struct{}
	running bool
}

// NewPlayer creates a player; no device is opened until Start
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		config:  cfg,
		rate:    beep.SampleRate(cfg.SampleRate),
		mixer:   &beep.Mixer{},
		started: make(map[voiceID]struct{}),
	}
}

// Start opens the audio device and attaches the mixer
// A disabled config is not an error; the player simply stays silent
func (p *Player) Start(buffer time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running || !p.config.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(buffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}

	speaker.Play(p.mixer)
	p.running = true
	return nil
}

// Stop detaches all sounds and closes the device
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.running = false
}

// IsRunning reports whether the device is open
func (p *Player) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Active returns the number of streamers still in the mix
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Sync starts every voice in voices not yet started whose start time has
// been reached at now, seeking into the clip by the time already elapsed
func (p *Player) Sync(voices []Voice, now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	seen := make(map[voiceID]struct{}, len(voices))
	dups := make(map[voiceID]int, len(voices))
	var fresh []beep.Streamer

	for _, v := range voices {
		base := v.id(0)
		id := v.id(dups[base])
		dups[base]++
		seen[id] = struct{}{}
		if _, ok := p.started[id]; ok {
			continue
		}
		if now.Before(v.Start) {
			continue
		}
		p.started[id] = struct{}{}

		if s := p.streamer(v, now.Sub(v.Start)); s != nil {
			fresh = append(fresh, s)
		}
	}

	// Forget voices the mix no longer lists
	for id := range p.started {
		if _, ok := seen[id]; !ok {
			delete(p.started, id)
		}
	}

	if len(fresh) == 0 || !p.config.Enabled {
		return
	}

	if p.running {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(fresh...)
}

// streamer builds the device-rate stream for v positioned at offset
// Returns nil for empty clips and one-shots that have already finished
func (p *Player) streamer(v Voice, offset time.Duration) beep.Streamer {
	n := v.Clip.Len()
	if n == 0 {
		return nil
	}

	format := v.Clip.Format()
	pos := format.SampleRate.N(offset)

	var s beep.Streamer
	if v.Loop {
		seeker := v.Clip.buffer.Streamer(0, n)
		if err := seeker.Seek(pos % n); err != nil {
			return nil
		}
		s = beep.Loop(-1, seeker)
	} else {
		if pos >= n {
			return nil
		}
		s = v.Clip.buffer.Streamer(pos, n)
	}

	if format.SampleRate != p.rate {
		s = beep.Resample(resampleQuality, format.SampleRate, p.rate, s)
	}
	return newVolume(s, p.config.gain(v.Name))
}

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero gain maps to a silent volume
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
