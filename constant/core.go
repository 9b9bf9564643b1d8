package constant

import "time"

// Loop Timing
const (
	// TickInterval is the simulation clock period (~30 Hz), independent of rendering
	TickInterval = time.Second / 30

	// FrameUpdateInterval is the rendering frame interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// KeyReleaseDelay is how long a held key may go without a repeat before
	// a release is synthesized; terminals report key down only
	// Must exceed the typical initial autorepeat delay
	KeyReleaseDelay = 600 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Command Workers
const (
	// AudioLoadWorkers bounds concurrent asset decodes
	AudioLoadWorkers = 2
)
