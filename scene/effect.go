package scene

// Effect is the closed set of side-effect requests ReactTo may emit
// Effects are data; only the platform interpreter performs them
type Effect interface {
	isEffect()
}

// LoadAudio requests one asset decode, answered by AudioLoaded
type LoadAudio struct {
	Kind AudioKind
	Path string
}

// RequestSeed asks for a random seed, answered by SeedReceived
type RequestSeed struct{}

// RequestTime asks for the current time, answered by InitialTimeReceived
type RequestTime struct{}

// RequestViewport asks for the initial size, answered by WindowResized
type RequestViewport struct{}

func (LoadAudio) isEffect()       {}
func (RequestSeed) isEffect()     {}
func (RequestTime) isEffect()     {}
func (RequestViewport) isEffect() {}
