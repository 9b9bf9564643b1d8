package platform

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple/scene"
)

func TestKeyOf(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want scene.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), " "},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), scene.Key(tcell.KeyNames[tcell.KeyUp])},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), scene.Key(tcell.KeyNames[tcell.KeyEnter])},
	}

	for _, tt := range tests {
		if got := KeyOf(tt.ev); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestTranslateQuitKeys(t *testing.T) {
	in := NewInput(time.Second)
	for _, k := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		events, quit := in.Translate(tcell.NewEventKey(k, 0, tcell.ModNone))
		if !quit || len(events) != 0 {
			t.Errorf("Expected key %v to quit without events, got quit=%v events=%v", k, quit, events)
		}
	}
}

func TestTranslateKeyRepeatAndRelease(t *testing.T) {
	in := NewInput(500 * time.Millisecond)
	press := func() []scene.Event {
		events, _ := in.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
		return events
	}

	first := press()
	if len(first) != 1 || first[0] != (scene.KeyPressed{Key: "x"}) {
		t.Fatalf("Expected KeyPressed{x}, got %v", first)
	}

	// Autorepeat is absorbed
	if repeat := press(); len(repeat) != 0 {
		t.Errorf("Expected repeat to emit nothing, got %v", repeat)
	}

	if early := in.Sweep(time.Now()); len(early) != 0 {
		t.Errorf("Expected no release before the delay, got %v", early)
	}

	released := in.Sweep(time.Now().Add(time.Second))
	if len(released) != 1 || released[0] != (scene.KeyReleased{Key: "x"}) {
		t.Fatalf("Expected KeyReleased{x}, got %v", released)
	}

	// A new press after release is reported again
	if again := press(); len(again) != 1 {
		t.Errorf("Expected fresh press after release, got %v", again)
	}
}

func TestSweepOrdersReleases(t *testing.T) {
	in := NewInput(100 * time.Millisecond)
	for _, r := range []rune{'c', 'a', 'b'} {
		in.Translate(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}

	released := in.Sweep(time.Now().Add(time.Second))
	want := []scene.Key{"a", "b", "c"}
	if len(released) != len(want) {
		t.Fatalf("Expected %d releases, got %v", len(want), released)
	}
	for i, ev := range released {
		if ev != (scene.KeyReleased{Key: want[i]}) {
			t.Errorf("Expected release of %q at %d, got %v", want[i], i, ev)
		}
	}
}

func TestTranslateMouse(t *testing.T) {
	in := NewInput(time.Second)

	moved, _ := in.Translate(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	if len(moved) != 1 || moved[0] != (scene.PointerMoved{X: 3, Y: 4}) {
		t.Fatalf("Expected PointerMoved{3,4}, got %v", moved)
	}

	down, _ := in.Translate(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	if len(down) != 1 {
		t.Errorf("Expected press to only move, got %v", down)
	}

	drag, _ := in.Translate(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone))
	if len(drag) != 1 {
		t.Errorf("Expected drag to only move, got %v", drag)
	}

	up, _ := in.Translate(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone))
	if len(up) != 2 || up[1] != (scene.PointerReleased{}) {
		t.Fatalf("Expected move then PointerReleased, got %v", up)
	}

	again, _ := in.Translate(tcell.NewEventMouse(7, 5, tcell.ButtonNone, tcell.ModNone))
	if len(again) != 1 {
		t.Errorf("Expected no second release, got %v", again)
	}
}

func TestTranslateResize(t *testing.T) {
	in := NewInput(time.Second)
	events, quit := in.Translate(tcell.NewEventResize(132, 43))
	if quit || len(events) != 1 || events[0] != (scene.WindowResized{Size: scene.Size{Width: 132, Height: 43}}) {
		t.Errorf("Expected WindowResized 132x43, got %v (quit=%v)", events, quit)
	}
}
