package platform

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ripple/audio"
	"github.com/lixenwraith/ripple/constant"
	"github.com/lixenwraith/ripple/core"
	"github.com/lixenwraith/ripple/reaction"
	"github.com/lixenwraith/ripple/render"
	"github.com/lixenwraith/ripple/scene"
)

// Mixer keeps audio output in step with the derived voice list
// *audio.Player satisfies it
type Mixer interface {
	Sync(voices []audio.Voice, now time.Time)
}

// Options tune the runtime; zero values take the constant defaults
type Options struct {
	TickInterval  time.Duration
	FrameInterval time.Duration
	ReleaseDelay  time.Duration
	Clock         TimeProvider
	Seed          func() int64
}

// Runtime owns the scene State and is its only mutator
// Events from every source funnel into one dispatch loop
type Runtime struct {
	screen   tcell.Screen
	loader   AssetLoader
	mixer    Mixer
	services Services
	input    *Input
	queue    *Queue[scene.Event]
	loads    chan struct{} // Audio load worker slots

	tickInterval  time.Duration
	frameInterval time.Duration

	state scene.State
}

// NewRuntime wires a runtime to its platform collaborators
// mixer may be nil when audio is unavailable
func NewRuntime(screen tcell.Screen, loader AssetLoader, mixer Mixer, opts Options) *Runtime {
	if opts.TickInterval <= 0 {
		opts.TickInterval = constant.TickInterval
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constant.FrameUpdateInterval
	}
	if opts.ReleaseDelay <= 0 {
		opts.ReleaseDelay = constant.KeyReleaseDelay
	}
	if opts.Clock == nil {
		opts.Clock = NewSystemTimeProvider()
	}

	return &Runtime{
		screen: screen,
		loader: loader,
		mixer:  mixer,
		services: Services{
			Clock:    opts.Clock,
			Viewport: screen,
			Seed:     opts.Seed,
		},
		input:         NewInput(opts.ReleaseDelay),
		queue:         NewQueue[scene.Event](),
		loads:         make(chan struct{}, constant.AudioLoadWorkers),
		tickInterval:  opts.TickInterval,
		frameInterval: opts.FrameInterval,
	}
}

// State returns the current scene state
// Only safe from the dispatch goroutine or after Run returns
func (rt *Runtime) State() scene.State {
	return rt.state
}

// Run applies start, then dispatches events until ctx ends, the user quits
// or the terminal goes away
func (rt *Runtime) Run(ctx context.Context, start scene.Reaction) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rt.apply(ctx, start)

	termEvents := make(chan tcell.Event, 256)
	// Input polling uses its own goroutine as PollEvent blocks
	core.Go(func() {
		for {
			ev := rt.screen.PollEvent()
			if ev == nil {
				close(termEvents) // Screen finalized
				return
			}
			select {
			case termEvents <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	tickTicker := time.NewTicker(rt.tickInterval)
	defer tickTicker.Stop()
	frameTicker := time.NewTicker(rt.frameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-termEvents:
			if !ok {
				return nil
			}
			events, quit := rt.input.Translate(ev)
			if quit {
				return nil
			}
			for _, sev := range events {
				rt.dispatch(ctx, sev)
			}

		case <-tickTicker.C:
			now := rt.services.Clock.Now()
			rt.dispatch(ctx, scene.Tick{Time: now})
			for _, sev := range rt.input.Sweep(now) {
				rt.dispatch(ctx, sev)
			}

		case <-rt.queue.Wait():
			for _, sev := range rt.queue.Consume() {
				rt.dispatch(ctx, sev)
			}

		case <-frameTicker.C:
			rt.present()
		}
	}
}

// dispatch runs one event through ReactTo and issues its commands
func (rt *Runtime) dispatch(ctx context.Context, ev scene.Event) {
	if loaded, ok := ev.(scene.AudioLoaded); ok {
		logLoad(loaded)
	}
	rt.apply(ctx, scene.ReactTo(ev, rt.state))
}

// apply is the single seam between the pure reaction and platform I/O
func (rt *Runtime) apply(ctx context.Context, r scene.Reaction) {
	state, cmds, audioCmds := reaction.ToTuple2(Interpret, r)
	rt.state = state

	for _, cmd := range cmds {
		core.Go(func() {
			rt.queue.Push(cmd(rt.services))
		})
	}

	for _, ac := range audioCmds {
		core.Go(func() {
			select {
			case rt.loads <- struct{}{}:
			case <-ctx.Done():
				return
			}
			ev := ac.Run(rt.loader)
			<-rt.loads
			rt.queue.Push(ev)
		})
	}
}

// present renders the view and syncs audio from the current state
func (rt *Runtime) present() {
	render.Paint(rt.screen, render.Compose(rt.state))

	if rt.mixer == nil {
		return
	}
	if now, ok := rt.state.LastTick.Get(); ok {
		rt.mixer.Sync(scene.Mix(rt.state), now)
	}
}

func logLoad(ev scene.AudioLoaded) {
	if ev.Err != nil {
		log.Printf("audio %s unavailable, continuing silent: %v", ev.Kind, ev.Err)
		return
	}
	log.Printf("audio %s loaded (%v)", ev.Kind, ev.Clip.Duration())
}
