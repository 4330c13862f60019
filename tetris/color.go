package tetris

import (
	"image/color"
	"math"
)

// Color identifies how cells of a given shape are painted. Colors map one to
// one onto shapes; NoColor belongs to empty cells.
type Color uint8

const (
	NoColor Color = iota
	Red
	Amber
	Lime
	Green
	Cyan
	Blue
	Magenta
)

var colorHues = [...]float32{
	NoColor: 0,
	Red:     0.00,
	Amber:   0.15,
	Lime:    0.30,
	Green:   0.45,
	Cyan:    0.60,
	Blue:    0.75,
	Magenta: 0.90,
}

var colorNames = [...]string{
	NoColor: "None",
	Red:     "Red",
	Amber:   "Amber",
	Lime:    "Lime",
	Green:   "Green",
	Cyan:    "Cyan",
	Blue:    "Blue",
	Magenta: "Magenta",
}

// Hue returns the color's hue in [0, 1) for HSB based renderers.
func (c Color) Hue() float32 {
	if int(c) < len(colorHues) {
		return colorHues[c]
	}
	return 0
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "Color(?)"
}

// HSB converts the color's hue with the given saturation and brightness,
// both in [0, 1], to an opaque RGBA value.
func (c Color) HSB(saturation, brightness float32) color.RGBA {
	r, g, b := hsbToRGB(float64(c.Hue()), float64(saturation), float64(brightness))
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func hsbToRGB(hue, saturation, brightness float64) (uint8, uint8, uint8) {
	channel := func(v float64) uint8 {
		return uint8(v*255 + 0.5)
	}

	if saturation == 0 {
		v := channel(brightness)
		return v, v, v
	}

	h := (hue - math.Floor(hue)) * 6
	sector := math.Floor(h)
	f := h - sector
	p := brightness * (1 - saturation)
	q := brightness * (1 - saturation*f)
	t := brightness * (1 - saturation*(1-f))

	switch int(sector) {
	case 0:
		return channel(brightness), channel(t), channel(p)
	case 1:
		return channel(q), channel(brightness), channel(p)
	case 2:
		return channel(p), channel(brightness), channel(t)
	case 3:
		return channel(p), channel(q), channel(brightness)
	case 4:
		return channel(t), channel(p), channel(brightness)
	default:
		return channel(brightness), channel(p), channel(q)
	}
}
