package constant

import "time"

// Audio Device Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines device latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Default Assets
const (
	AssetDir        = "assets"
	WavesAssetPath  = "waves.mp3"
	SplashAssetPath = "splash.wav"
)
