package render

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ripple/constant"
	"github.com/lixenwraith/ripple/scene"
)

// canvas accumulates colors before conversion to terminal styles
type canvas struct {
	w, h  int
	runes []rune
	fg    []colorful.Color
	bg    []colorful.Color
}

func newCanvas(w, h int) *canvas {
	return &canvas{
		w:     w,
		h:     h,
		runes: make([]rune, w*h),
		fg:    make([]colorful.Color, w*h),
		bg:    make([]colorful.Color, w*h),
	}
}

func (c *canvas) frame() Frame {
	f := newFrame(c.w, c.h)
	for i := range f.Cells {
		r := c.runes[i]
		if r == 0 {
			r = ' '
		}
		f.Cells[i] = Cell{
			Rune:  r,
			Style: tcell.StyleDefault.Foreground(toTcell(c.fg[i])).Background(toTcell(c.bg[i])),
		}
	}
	return f
}

// Compose renders the scene as a pure function of s
// Nothing is drawn until the viewport is known; animation layers wait for the clock
func Compose(s scene.State) Frame {
	size, ok := s.Window.Get()
	if !ok || size.Width <= 0 || size.Height <= 0 {
		return Frame{}
	}

	seed, seeded := s.Seed.Get()
	pal := newPalette(seed, seeded)
	c := newCanvas(size.Width, size.Height)

	// Last row is the status line
	seaHeight := size.Height - 1
	drawSea(c, pal, seaHeight)

	if elapsed, ok := s.Elapsed(); ok {
		drawWaves(c, pal, seaHeight, elapsed.Seconds())
		drawRipples(c, pal, s, seaHeight, seed)
	}

	drawStatus(c, pal, s)
	return c.frame()
}

func drawSea(c *canvas, pal palette, seaHeight int) {
	for y := 0; y < seaHeight; y++ {
		depth := float64(y) / math.Max(1, float64(seaHeight-1))
		col := pal.sea(depth)
		for x := 0; x < c.w; x++ {
			i := y*c.w + x
			c.bg[i] = col
			c.fg[i] = col
		}
	}
}

// drawWaves draws travelling sine crests; nearer bands are larger and faster
func drawWaves(c *canvas, pal palette, seaHeight int, t float64) {
	for b := 0; b < constant.WaveBandCount; b++ {
		scale := math.Pow(constant.WaveDepthScale, float64(b))
		baseline := float64(seaHeight) * (constant.WaveBaseline + float64(b)*constant.WaveBandSpacing)
		amp := constant.WaveAmplitude * scale
		length := constant.WaveLength * scale
		speed := constant.WaveSpeed * scale
		phase := float64(b) * math.Pi / 3

		for x := 0; x < c.w; x++ {
			crest := baseline + amp*math.Sin(2*math.Pi*(float64(x)-speed*t)/length+phase)
			for y := 0; y < seaHeight; y++ {
				d := float64(y) - crest
				i := y*c.w + x
				switch {
				case math.Abs(d) < constant.WaveFoamThickness/2:
					c.runes[i] = '~'
					c.fg[i] = pal.foam
				case d > 0 && d < amp:
					// Body just below the crest is lighter
					c.bg[i] = c.bg[i].BlendLab(pal.foam, 0.12*(1-d/amp))
				}
			}
		}
	}
}

// drawRipples draws expanding rings for each splash trigger still alive
// Ring centers are derived from the seed and trigger time, so they are
// stable across frames
func drawRipples(c *canvas, pal palette, s scene.State, seaHeight int, seed int64) {
	now, ok := s.LastTick.Get()
	if !ok {
		return
	}

	for _, at := range s.Triggers[scene.KindSplash] {
		age := now.Sub(at)
		if age < 0 {
			continue
		}
		if age >= constant.RippleDuration {
			break // Most recent first; the rest are older
		}
		cx, cy := rippleCenter(seed, at, c.w, seaHeight)
		fade := 1 - float64(age)/float64(constant.RippleDuration)
		radius := age.Seconds() * constant.RippleSpeed

		for ring := 0; ring < constant.RippleRings; ring++ {
			r := radius - float64(ring)*constant.RippleRingGap
			if r <= 0 {
				continue
			}
			drawRing(c, pal, cx, cy, r, fade, seaHeight)
		}
	}
}

func drawRing(c *canvas, pal palette, cx, cy, r, fade float64, seaHeight int) {
	// Bounding box in cell space; vertical radius shrinks by the cell aspect
	x0 := int(math.Floor(cx - r - 1))
	x1 := int(math.Ceil(cx + r + 1))
	y0 := int(math.Floor(cy - r/constant.RippleAspect - 1))
	y1 := int(math.Ceil(cy + r/constant.RippleAspect + 1))

	for y := max(y0, 0); y <= y1 && y < seaHeight; y++ {
		for x := max(x0, 0); x <= x1 && x < c.w; x++ {
			dx := float64(x) - cx
			dy := (float64(y) - cy) * constant.RippleAspect
			if math.Abs(math.Hypot(dx, dy)-r) >= constant.RippleThickness {
				continue
			}
			i := y*c.w + x
			c.runes[i] = 'o'
			c.fg[i] = c.bg[i].BlendLab(pal.ripple, fade)
		}
	}
}

// rippleCenter picks a deterministic point inside the margins
func rippleCenter(seed int64, at time.Time, w, h int) (float64, float64) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(at.UnixNano())))
	m := constant.RippleMargin
	x := (m + rng.Float64()*(1-2*m)) * float64(w)
	y := (m + rng.Float64()*(1-2*m)) * float64(h)
	return x, y
}

func drawStatus(c *canvas, pal palette, s scene.State) {
	y := c.h - 1
	text := []rune(statusLine(s))
	for x := 0; x < c.w; x++ {
		i := y*c.w + x
		c.bg[i] = pal.status
		c.fg[i] = pal.foam
		if x < len(text) {
			c.runes[i] = text[x]
		}
	}
}

func statusLine(s scene.State) string {
	var b strings.Builder
	b.WriteString(" ripple")

	if elapsed, ok := s.Elapsed(); ok {
		fmt.Fprintf(&b, "  t=%.1fs", elapsed.Seconds())
	} else {
		b.WriteString("  waiting for clock")
	}

	for _, k := range scene.Kinds() {
		fmt.Fprintf(&b, "  %s:%s", k, audioStatus(s.Audio[k].Status))
	}

	if len(s.Keys) > 0 {
		keys := make([]string, len(s.Keys))
		for i, k := range s.Keys {
			keys[i] = string(k)
		}
		fmt.Fprintf(&b, "  keys: %s", strings.Join(keys, " "))
	}
	return b.String()
}

func audioStatus(st scene.AudioStatus) string {
	switch st {
	case scene.AudioReady:
		return "on"
	case scene.AudioFailed:
		return "off"
	}
	return "..."
}
