package scene

import (
	"github.com/lixenwraith/ripple/audio"
	"github.com/lixenwraith/ripple/reaction"
)

// Reaction is the scene's (state, effects) pair
type Reaction = reaction.Reaction[State, Effect]

// Init builds the pre-initialization state and the startup requests:
// seed, time, viewport, then one LoadAudio per kind in enum order
func Init(assets [KindCount]string) Reaction {
	s := State{Assets: assets}

	loads := reaction.EffectMap(
		func(k AudioKind) Effect { return LoadAudio{Kind: k, Path: assets[k]} },
		reaction.With(s.Audio, Kinds()...),
	)
	withSlots := reaction.Map(
		func(slots [KindCount]AudioSlot) State {
			s.Audio = slots
			return s
		},
		loads,
	)

	return reaction.With[State, Effect](withSlots.State(), RequestSeed{}, RequestTime{}, RequestViewport{}).
		Add(withSlots.Effects()...)
}

// ReactTo is the single state transition function
// Total over every Event; unknown events leave the state untouched
func ReactTo(ev Event, s State) Reaction {
	switch ev := ev.(type) {
	case AudioLoaded:
		return reaction.To[State, Effect](audioLoaded(ev, s))

	case PointerMoved:
		// Reserved for hover tracking
		return reaction.To[State, Effect](s)

	case PointerReleased:
		// One trigger per release once the clock is set; earlier releases have no timestamp
		return reaction.To[State, Effect](trigger(KindSplash, s))

	case WindowResized:
		s.Window = Ready(ev.Size)
		return reaction.To[State, Effect](s)

	case SeedReceived:
		s.Seed = Ready(ev.Seed)
		return reaction.To[State, Effect](s)

	case InitialTimeReceived:
		s.Origin = Ready(ev.Time)
		s.LastTick = Ready(ev.Time)
		return reaction.To[State, Effect](s)

	case Tick:
		s.LastTick = Ready(ev.Time)
		return reaction.To[State, Effect](s)

	case KeyPressed:
		s.Keys = prepend(ev.Key, s.Keys)
		return reaction.To[State, Effect](s)

	case KeyReleased:
		s.Keys = without(ev.Key, s.Keys)
		return reaction.To[State, Effect](s)
	}

	return reaction.To[State, Effect](s)
}

func audioLoaded(ev AudioLoaded, s State) State {
	if ev.Kind < 0 || ev.Kind >= KindCount {
		return s
	}
	if ev.Err != nil || ev.Clip == nil {
		err := ev.Err
		if err == nil {
			err = audio.ErrAssetUnknown
		}
		s.Audio[ev.Kind] = AudioSlot{Status: AudioFailed, Err: err}
		return s
	}
	s.Audio[ev.Kind] = AudioSlot{Status: AudioReady, Clip: ev.Clip}
	return s
}

// trigger records the current tick for kind; no-op until the clock is known
func trigger(kind AudioKind, s State) State {
	now, ok := s.LastTick.Get()
	if !ok {
		return s
	}
	s.Triggers[kind] = prepend(now, s.Triggers[kind])
	return s
}

// prepend returns a fresh slice with v in front of list
func prepend[T any](v T, list []T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

// without returns a fresh slice with every k removed
func without(k Key, keys []Key) []Key {
	out := make([]Key, 0, len(keys))
	for _, held := range keys {
		if held != k {
			out = append(out, held)
		}
	}
	return out
}
