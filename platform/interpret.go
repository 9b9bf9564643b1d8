package platform

import (
	"math/rand/v2"

	"github.com/lixenwraith/ripple/audio"
	"github.com/lixenwraith/ripple/scene"
)

// Viewport answers the initial size query; tcell.Screen satisfies it
type Viewport interface {
	Size() (width, height int)
}

// AssetLoader decodes one audio asset; *audio.Loader satisfies it
type AssetLoader interface {
	Load(path string) (*audio.Clip, error)
}

// Services are the platform collaborators ordinary commands query
type Services struct {
	Clock    TimeProvider
	Viewport Viewport
	Seed     func() int64 // nil uses math/rand/v2
}

// Cmd performs one one-shot platform query and reports it as an event
type Cmd func(Services) scene.Event

// AudioCmd is one asset load, answered by exactly one AudioLoaded
type AudioCmd struct {
	Kind scene.AudioKind
	Path string
}

// Run loads the asset; failure travels inside the event, never as a panic
func (c AudioCmd) Run(l AssetLoader) scene.Event {
	clip, err := l.Load(c.Path)
	if err != nil {
		return scene.AudioLoaded{Kind: c.Kind, Err: err}
	}
	return scene.AudioLoaded{Kind: c.Kind, Clip: clip}
}

// Interpret maps one abstract effect to its command batches
// Ordinary queries and audio loads are kept in separate categories
func Interpret(e scene.Effect) ([]Cmd, []AudioCmd) {
	switch e := e.(type) {
	case scene.LoadAudio:
		return nil, []AudioCmd{{Kind: e.Kind, Path: e.Path}}
	case scene.RequestSeed:
		return []Cmd{requestSeed}, nil
	case scene.RequestTime:
		return []Cmd{requestTime}, nil
	case scene.RequestViewport:
		return []Cmd{requestViewport}, nil
	}
	return nil, nil
}

func requestSeed(s Services) scene.Event {
	if s.Seed != nil {
		return scene.SeedReceived{Seed: s.Seed()}
	}
	return scene.SeedReceived{Seed: rand.Int64()}
}

func requestTime(s Services) scene.Event {
	return scene.InitialTimeReceived{Time: s.Clock.Now()}
}

func requestViewport(s Services) scene.Event {
	w, h := s.Viewport.Size()
	return scene.WindowResized{Size: scene.Size{Width: w, Height: h}}
}
