package scene

import (
	"time"

	"github.com/lixenwraith/ripple/audio"
)

// Event is the closed set of inputs to ReactTo
type Event interface {
	isEvent()
}

// AudioLoaded reports the outcome of one LoadAudio effect
// Exactly one of Clip and Err is set
type AudioLoaded struct {
	Kind AudioKind
	Clip *audio.Clip
	Err  error
}

// PointerMoved carries the pointer cell position
type PointerMoved struct {
	X, Y int
}

// PointerReleased fires when the primary button goes up
type PointerReleased struct{}

// WindowResized carries the new viewport size
type WindowResized struct {
	Size Size
}

// SeedReceived carries the startup random seed
type SeedReceived struct {
	Seed int64
}

// InitialTimeReceived carries the time origin
type InitialTimeReceived struct {
	Time time.Time
}

// Tick is the fixed-rate simulation clock
type Tick struct {
	Time time.Time
}

// KeyPressed fires on key down
type KeyPressed struct {
	Key Key
}

// KeyReleased fires on key up
type KeyReleased struct {
	Key Key
}

func (AudioLoaded) isEvent()         {}
func (PointerMoved) isEvent()        {}
func (PointerReleased) isEvent()     {}
func (WindowResized) isEvent()       {}
func (SeedReceived) isEvent()        {}
func (InitialTimeReceived) isEvent() {}
func (Tick) isEvent()                {}
func (KeyPressed) isEvent()          {}
func (KeyReleased) isEvent()         {}
