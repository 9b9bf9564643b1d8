package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ripple/audio"
	"github.com/lixenwraith/ripple/constant"
	"github.com/lixenwraith/ripple/scene"
)

// Environment overrides, applied after the config file
const (
	EnvAudioEnabled = "RIPPLE_AUDIO_ENABLED"
	EnvMasterVolume = "RIPPLE_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "RIPPLE_SFX_VOLUMES"   // JSON object keyed by kind name
	EnvSampleRate   = "RIPPLE_SAMPLE_RATE"
	EnvAssetDir     = "RIPPLE_ASSET_DIR"
)

var (
	ErrConfigParse   = errors.New("config: parse failed")
	ErrConfigInvalid = errors.New("config: invalid")
)

// Config is the full runtime configuration
type Config struct {
	Assets AssetsConfig `yaml:"assets"`
	Audio  AudioConfig  `yaml:"audio"`
	Clock  ClockConfig  `yaml:"clock"`
	Debug  bool         `yaml:"debug"`
}

// AssetsConfig maps kind names to files under Dir
type AssetsConfig struct {
	Dir   string            `yaml:"dir"`
	Files map[string]string `yaml:"files"`
}

type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"` // 0.0-1.0
	Volumes      map[string]float64 `yaml:"volumes"`
	SampleRate   int                `yaml:"sample_rate"`
}

type ClockConfig struct {
	Tick       time.Duration `yaml:"tick"`
	Frame      time.Duration `yaml:"frame"`
	KeyRelease time.Duration `yaml:"key_release"`
}

// Default returns the built-in configuration
func Default() *Config {
	audioDefaults := audio.DefaultConfig()
	return &Config{
		Assets: AssetsConfig{
			Dir: constant.AssetDir,
			Files: map[string]string{
				scene.KindWaves.String():  constant.WavesAssetPath,
				scene.KindSplash.String(): constant.SplashAssetPath,
			},
		},
		Audio: AudioConfig{
			Enabled:      audioDefaults.Enabled,
			MasterVolume: audioDefaults.MasterVolume,
			Volumes:      map[string]float64{},
			SampleRate:   constant.AudioSampleRate,
		},
		Clock: ClockConfig{
			Tick:       constant.TickInterval,
			Frame:      constant.FrameUpdateInterval,
			KeyRelease: constant.KeyReleaseDelay,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path and
// the environment, in that order. An empty path or a missing file leaves
// the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return nil
}

// applyEnv overlays environment settings; malformed or out-of-range values
// are ignored, so only the config file can fail validation
func (c *Config) applyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sfx := os.Getenv(EnvSFXVolumes); sfx != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(sfx), &volumes); err == nil {
			if c.Audio.Volumes == nil {
				c.Audio.Volumes = make(map[string]float64, len(volumes))
			}
			for name, v := range volumes {
				if _, ok := scene.KindByName(name); !ok || v < 0 || v > 1 {
					continue
				}
				c.Audio.Volumes[name] = v
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}

	if dir := os.Getenv(EnvAssetDir); dir != "" {
		c.Assets.Dir = dir
	}
}

// Validate checks kind names, paths, volumes and durations
func (c *Config) Validate() error {
	for name, file := range c.Assets.Files {
		if _, ok := scene.KindByName(name); !ok {
			return fmt.Errorf("%w: unknown audio kind %q in assets", ErrConfigInvalid, name)
		}
		if file == "" {
			return fmt.Errorf("%w: empty asset path for %q", ErrConfigInvalid, name)
		}
	}
	for _, k := range scene.Kinds() {
		if _, ok := c.Assets.Files[k.String()]; !ok {
			return fmt.Errorf("%w: no asset for %q", ErrConfigInvalid, k)
		}
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master volume %v outside 0-1", ErrConfigInvalid, c.Audio.MasterVolume)
	}
	for name, v := range c.Audio.Volumes {
		if _, ok := scene.KindByName(name); !ok {
			return fmt.Errorf("%w: unknown audio kind %q in volumes", ErrConfigInvalid, name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: volume %v for %q outside 0-1", ErrConfigInvalid, v, name)
		}
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrConfigInvalid, c.Audio.SampleRate)
	}

	if c.Clock.Tick <= 0 || c.Clock.Frame <= 0 || c.Clock.KeyRelease <= 0 {
		return fmt.Errorf("%w: clock intervals must be positive", ErrConfigInvalid)
	}
	return nil
}

// AssetPaths returns the per-kind asset file, relative to Assets.Dir
func (c *Config) AssetPaths() [scene.KindCount]string {
	var paths [scene.KindCount]string
	for _, k := range scene.Kinds() {
		paths[k] = c.Assets.Files[k.String()]
	}
	return paths
}

// PlayerConfig converts the audio section for audio.NewPlayer
func (c *Config) PlayerConfig() *audio.Config {
	volumes := make(map[string]float64, len(c.Audio.Volumes))
	for name, v := range c.Audio.Volumes {
		volumes[name] = v
	}
	return &audio.Config{
		Enabled:      c.Audio.Enabled,
		MasterVolume: c.Audio.MasterVolume,
		Volumes:      volumes,
		SampleRate:   c.Audio.SampleRate,
	}
}
