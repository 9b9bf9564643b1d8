package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ripple/constant"
)

// palette is the seed-tinted color set for one frame
type palette struct {
	hue     float64
	surface colorful.Color // Sea near the top
	deep    colorful.Color // Sea at the bottom
	foam    colorful.Color
	ripple  colorful.Color
	status  colorful.Color
}

// newPalette shifts the base sea hue by up to ±PaletteHueSpread/2 from seed
func newPalette(seed int64, seeded bool) palette {
	hue := constant.PaletteBaseHue
	if seeded {
		frac := float64(uint64(seed)%1000) / 1000
		hue += (frac - 0.5) * constant.PaletteHueSpread
	}
	hue = math.Mod(hue+360, 360)

	return palette{
		hue:     hue,
		surface: colorful.Hcl(hue, 0.35, 0.45),
		deep:    colorful.Hcl(hue, 0.25, 0.12),
		foam:    colorful.Hcl(hue, 0.08, 0.92),
		ripple:  colorful.Hcl(math.Mod(hue+20, 360), 0.20, 0.85),
		status:  colorful.Hcl(hue, 0.15, 0.25),
	}
}

// sea returns the background at depth in [0,1]
func (p palette) sea(depth float64) colorful.Color {
	return p.surface.BlendLab(p.deep, clamp01(depth))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
