package scene

import (
	"github.com/lixenwraith/ripple/audio"
)

// Mix derives the voices that should be audible at the last tick
// Kinds whose clip is pending or failed contribute nothing
func Mix(s State) []audio.Voice {
	now, ok := s.LastTick.Get()
	if !ok {
		return nil
	}

	var voices []audio.Voice

	if clip, ok := loadedClip(s, KindWaves); ok {
		if origin, ok := s.Origin.Get(); ok {
			voices = append(voices, audio.Voice{
				Name:  KindWaves.String(),
				Clip:  clip,
				Start: origin,
				Loop:  true,
			})
		}
	}

	if clip, ok := loadedClip(s, KindSplash); ok {
		length := clip.Duration()
		// Triggers are most recent first; stop at the first one already over
		for _, at := range s.Triggers[KindSplash] {
			if now.Sub(at) >= length {
				break
			}
			voices = append(voices, audio.Voice{
				Name:  KindSplash.String(),
				Clip:  clip,
				Start: at,
			})
		}
	}

	return voices
}

func loadedClip(s State, k AudioKind) (*audio.Clip, bool) {
	slot := s.Audio[k]
	if slot.Status != AudioReady || slot.Clip.Len() == 0 {
		return nil, false
	}
	return slot.Clip, true
}
