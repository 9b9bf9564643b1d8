package platform

import (
	"fmt"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple/scene"
)

// Input translates terminal events into scene events
// Terminals only report key down (plus autorepeat), so a held key is
// released once it has gone releaseDelay without a repeat
// Not safe for concurrent use; owned by the dispatch loop
type Input struct {
	releaseDelay time.Duration
	held         map[scene.Key]time.Time // Last press or repeat
	buttons      tcell.ButtonMask
}

// NewInput creates a translator with the given synthesized release delay
func NewInput(releaseDelay time.Duration) *Input {
	return &Input{
		releaseDelay: releaseDelay,
		held:         make(map[scene.Key]time.Time),
	}
}

// Translate returns the scene events for ev and whether the user asked to quit
func (in *Input) Translate(ev tcell.Event) ([]scene.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return nil, true
		}
		return in.key(KeyOf(ev), ev.When()), false

	case *tcell.EventMouse:
		return in.mouse(ev), false

	case *tcell.EventResize:
		w, h := ev.Size()
		return []scene.Event{scene.WindowResized{Size: scene.Size{Width: w, Height: h}}}, false
	}
	return nil, false
}

func (in *Input) key(k scene.Key, when time.Time) []scene.Event {
	_, repeat := in.held[k]
	in.held[k] = when
	if repeat {
		return nil
	}
	return []scene.Event{scene.KeyPressed{Key: k}}
}

func (in *Input) mouse(ev *tcell.EventMouse) []scene.Event {
	x, y := ev.Position()
	out := []scene.Event{scene.PointerMoved{X: x, Y: y}}

	buttons := ev.Buttons()
	if in.buttons&tcell.Button1 != 0 && buttons&tcell.Button1 == 0 {
		out = append(out, scene.PointerReleased{})
	}
	in.buttons = buttons
	return out
}

// Sweep synthesizes releases for keys idle longer than the release delay
// Releases are ordered by key for deterministic replay
func (in *Input) Sweep(now time.Time) []scene.Event {
	var expired []scene.Key
	for k, last := range in.held {
		if now.Sub(last) >= in.releaseDelay {
			expired = append(expired, k)
		}
	}
	if len(expired) == 0 {
		return nil
	}
	slices.Sort(expired)

	out := make([]scene.Event, len(expired))
	for i, k := range expired {
		delete(in.held, k)
		out[i] = scene.KeyReleased{Key: k}
	}
	return out
}

// KeyOf decodes a key event into an abstract key identifier
func KeyOf(ev *tcell.EventKey) scene.Key {
	if ev.Key() == tcell.KeyRune {
		return scene.Key(string(ev.Rune()))
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return scene.Key(name)
	}
	return scene.Key(fmt.Sprintf("Key[%d]", ev.Key()))
}
