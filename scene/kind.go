package scene

// AudioKind enumerates every audio asset the scene knows about
// Arrays sized KindCount hold exactly one slot per kind
type AudioKind int

const (
	KindWaves  AudioKind = iota // Ambient loop anchored at the time origin
	KindSplash                  // One-shot per pointer release
	KindCount
)

var kindNames = [KindCount]string{
	KindWaves:  "waves",
	KindSplash: "splash",
}

func (k AudioKind) String() string {
	if k < 0 || k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every kind in enum order
func Kinds() []AudioKind {
	out := make([]AudioKind, KindCount)
	for i := range out {
		out[i] = AudioKind(i)
	}
	return out
}

// KindByName resolves a kind from its String form
func KindByName(name string) (AudioKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return AudioKind(k), true
		}
	}
	return 0, false
}
