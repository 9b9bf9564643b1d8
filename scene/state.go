package scene

import (
	"time"

	"github.com/lixenwraith/ripple/audio"
)

// Pending holds a value that arrives asynchronously after startup
// The zero value is "not yet initialized"
type Pending[T any] struct {
	value T
	ready bool
}

// Ready returns an initialized Pending holding v
func Ready[T any](v T) Pending[T] {
	return Pending[T]{value: v, ready: true}
}

// Get returns the value and whether it has arrived
func (p Pending[T]) Get() (T, bool) {
	return p.value, p.ready
}

// IsReady reports whether the value has arrived
func (p Pending[T]) IsReady() bool {
	return p.ready
}

// Size is the viewport in cells
type Size struct {
	Width, Height int
}

// Key is an abstract key identifier: a printable rune or a named key
type Key string

// AudioStatus is the load lifecycle of one audio slot
type AudioStatus int

const (
	AudioPending AudioStatus = iota
	AudioReady
	AudioFailed
)

// AudioSlot records the load outcome for one kind
type AudioSlot struct {
	Status AudioStatus
	Clip   *audio.Clip // Set when Ready
	Err    error       // Set when Failed
}

// State is the whole scene model, owned by the dispatch loop
// Slices are replaced, never mutated in place, so copies stay independent
type State struct {
	Audio    [KindCount]AudioSlot
	Window   Pending[Size]
	Triggers [KindCount][]time.Time // Most recent first
	Keys     []Key                  // Most recent first, duplicates tolerated
	Seed     Pending[int64]
	LastTick Pending[time.Time]
	Origin   Pending[time.Time]

	// Asset path per kind, fixed at Init
	Assets [KindCount]string
}

// Elapsed returns simulation time since the origin once the clock is known
func (s State) Elapsed() (time.Duration, bool) {
	origin, ok := s.Origin.Get()
	if !ok {
		return 0, false
	}
	last, ok := s.LastTick.Get()
	if !ok {
		return 0, false
	}
	return last.Sub(origin), true
}

// Pressed reports whether k is currently held
func (s State) Pressed(k Key) bool {
	for _, held := range s.Keys {
		if held == k {
			return true
		}
	}
	return false
}
