package constant

import "time"

// Wave Bands
// Each band is a sine crest travelling horizontally across the sea
const (
	WaveBandCount = 3

	// WaveBaseline is the vertical position of the first band as a fraction of height
	WaveBaseline = 0.35

	// WaveBandSpacing is the vertical gap between bands as a fraction of height
	WaveBandSpacing = 0.18

	// WaveAmplitude is the crest height in cells for the first band
	WaveAmplitude = 2.5

	// WaveLength is the crest-to-crest distance in cells for the first band
	WaveLength = 24.0

	// WaveSpeed is the horizontal travel in cells per second for the first band
	WaveSpeed = 6.0

	// WaveDepthScale grows amplitude, length and speed for each nearer band
	WaveDepthScale = 1.35

	// WaveFoamThickness is the crest line thickness in cells
	WaveFoamThickness = 0.9
)

// Splash Ripples
const (
	// RippleDuration is how long one ripple stays visible
	RippleDuration = 1500 * time.Millisecond

	// RippleSpeed is ring expansion in cells per second
	RippleSpeed = 18.0

	// RippleRings is the number of concentric rings per splash
	RippleRings = 3

	// RippleRingGap is the radial distance between rings in cells
	RippleRingGap = 2.5

	// RippleThickness is ring thickness in cells
	RippleThickness = 0.8

	// RippleAspect compensates for cells being roughly twice as tall as wide
	RippleAspect = 2.0

	// RippleMargin keeps ripple centers away from the border, as a fraction of size
	RippleMargin = 0.15
)

// Palette
const (
	// PaletteHueSpread is the hue range in degrees the seed may shift the sea
	PaletteHueSpread = 40.0

	// PaletteBaseHue is the sea hue before the seed shift
	PaletteBaseHue = 200.0
)
