package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/ripple/constant"
	"github.com/lixenwraith/ripple/scene"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ripple.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAudioEnabled, EnvMasterVolume, EnvSFXVolumes, EnvSampleRate, EnvAssetDir} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if cfg.Audio.SampleRate != constant.AudioSampleRate {
		t.Errorf("Expected sample rate %d, got %d", constant.AudioSampleRate, cfg.Audio.SampleRate)
	}
	if cfg.Clock.Tick != constant.TickInterval {
		t.Errorf("Expected tick %v, got %v", constant.TickInterval, cfg.Clock.Tick)
	}

	paths := cfg.AssetPaths()
	if paths[scene.KindWaves] != constant.WavesAssetPath || paths[scene.KindSplash] != constant.SplashAssetPath {
		t.Errorf("Unexpected default asset paths: %v", paths)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)

	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Expected defaults for %q, got %v", path, err)
		}
		if cfg.Assets.Dir != constant.AssetDir {
			t.Errorf("Expected default asset dir, got %q", cfg.Assets.Dir)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
assets:
  dir: /srv/sounds
  files:
    waves: surf.wav
    splash: drop.mp3
audio:
  enabled: false
  master_volume: 0.25
  volumes:
    splash: 0.5
  sample_rate: 48000
clock:
  tick: 20ms
  frame: 40ms
  key_release: 1s
debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Assets.Dir != "/srv/sounds" {
		t.Errorf("Expected asset dir /srv/sounds, got %q", cfg.Assets.Dir)
	}
	paths := cfg.AssetPaths()
	if paths[scene.KindWaves] != "surf.wav" || paths[scene.KindSplash] != "drop.mp3" {
		t.Errorf("Unexpected asset paths: %v", paths)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("Expected master volume 0.25, got %v", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.Volumes["splash"] != 0.5 {
		t.Errorf("Expected splash volume 0.5, got %v", cfg.Audio.Volumes["splash"])
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Clock.Tick != 20*time.Millisecond || cfg.Clock.Frame != 40*time.Millisecond || cfg.Clock.KeyRelease != time.Second {
		t.Errorf("Unexpected clock: %+v", cfg.Clock)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Expected empty file to keep defaults, got %v", err)
	}
	if cfg.Audio.SampleRate != constant.AudioSampleRate {
		t.Errorf("Expected default sample rate, got %d", cfg.Audio.SampleRate)
	}
}

func TestLoadParseErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "audio: [unclosed"},
		{"unknown field", "audio:\n  loudness: 11\n"},
		{"bad duration", "clock:\n  tick: soon\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrConfigParse) {
				t.Errorf("Expected ErrConfigParse, got %v", err)
			}
		})
	}
}

func TestLoadValidationErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name string
		body string
	}{
		{"unknown asset kind", "assets:\n  files:\n    thunder: boom.wav\n"},
		{"empty asset path", "assets:\n  files:\n    splash: \"\"\n"},
		{"unknown volume kind", "audio:\n  volumes:\n    thunder: 0.5\n"},
		{"volume range", "audio:\n  volumes:\n    waves: 2\n"},
		{"master range", "audio:\n  master_volume: -0.5\n"},
		{"sample rate", "audio:\n  sample_rate: 0\n"},
		{"tick", "clock:\n  tick: 0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, ErrConfigInvalid) {
				t.Errorf("Expected ErrConfigInvalid, got %v", err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "audio:\n  enabled: true\n  master_volume: 0.9\n  sample_rate: 22050\n")

	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "40")
	t.Setenv(EnvSFXVolumes, `{"waves": 0.3, "splash": 0.7}`)
	t.Setenv(EnvSampleRate, "48000")
	t.Setenv(EnvAssetDir, "/tmp/ripple-assets")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Audio.Enabled {
		t.Error("Expected env to disable audio")
	}
	if cfg.Audio.MasterVolume != 0.4 {
		t.Errorf("Expected master volume 0.4, got %v", cfg.Audio.MasterVolume)
	}
	if cfg.Audio.Volumes["waves"] != 0.3 || cfg.Audio.Volumes["splash"] != 0.7 {
		t.Errorf("Unexpected volumes: %v", cfg.Audio.Volumes)
	}
	if cfg.Audio.SampleRate != 48000 {
		t.Errorf("Expected env sample rate 48000, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Assets.Dir != "/tmp/ripple-assets" {
		t.Errorf("Expected env asset dir, got %q", cfg.Assets.Dir)
	}
}

func TestEnvMasterVolumeClamped(t *testing.T) {
	clearEnv(t)

	t.Setenv(EnvMasterVolume, "150")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audio.MasterVolume != 1.0 {
		t.Errorf("Expected clamp to 1.0, got %v", cfg.Audio.MasterVolume)
	}

	t.Setenv(EnvMasterVolume, "-10")
	cfg, _ = Load("")
	if cfg.Audio.MasterVolume != 0 {
		t.Errorf("Expected clamp to 0, got %v", cfg.Audio.MasterVolume)
	}
}

func TestEnvMalformedIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSFXVolumes, "{not json")
	t.Setenv(EnvSampleRate, "-1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.Audio.Enabled != def.Audio.Enabled || cfg.Audio.MasterVolume != def.Audio.MasterVolume || cfg.Audio.SampleRate != def.Audio.SampleRate {
		t.Errorf("Expected defaults to survive malformed env, got %+v", cfg.Audio)
	}
	if len(cfg.Audio.Volumes) != 0 {
		t.Errorf("Expected no volumes, got %v", cfg.Audio.Volumes)
	}
}

func TestPlayerConfig(t *testing.T) {
	cfg := Default()
	cfg.Audio.Volumes["splash"] = 0.5

	pc := cfg.PlayerConfig()
	if pc.SampleRate != cfg.Audio.SampleRate || pc.MasterVolume != cfg.Audio.MasterVolume || !pc.Enabled {
		t.Errorf("Unexpected player config: %+v", pc)
	}

	// Player config owns its map
	pc.Volumes["splash"] = 1
	if cfg.Audio.Volumes["splash"] != 0.5 {
		t.Error("Expected player config volumes to be a copy")
	}
}

func TestEnvOutOfRangeVolumesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSFXVolumes, `{"splash": 2, "waves": -0.5, "thunder": 0.5}`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected out-of-range env volumes to be ignored, got %v", err)
	}
	if len(cfg.Audio.Volumes) != 0 {
		t.Errorf("Expected no volumes applied, got %v", cfg.Audio.Volumes)
	}

	t.Setenv(EnvSFXVolumes, `{"splash": 2, "waves": 0.3}`)
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := cfg.Audio.Volumes["splash"]; ok {
		t.Errorf("Expected splash volume skipped, got %v", cfg.Audio.Volumes)
	}
	if cfg.Audio.Volumes["waves"] != 0.3 {
		t.Errorf("Expected in-range waves volume kept, got %v", cfg.Audio.Volumes["waves"])
	}
}

func TestFileOutOfRangeVolumeStillFails(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "audio:\n  volumes:\n    splash: 2\n"))
	if !errors.Is(err, ErrConfigInvalid) {
		t.Errorf("Expected ErrConfigInvalid for file volume, got %v", err)
	}
}
