package pixel

import (
	"image/color"
	"math"
)

// Models for the color types in this package.
var (
	HSVModel color.Model = color.ModelFunc(hsvModel)
	RGBModel color.Model = color.ModelFunc(rgbModel)
)

// RGB is an opaque color with three independent 8-bit channels.
type RGB struct {
	R, G, B uint8
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// HSV represents a cylindrical coordinate of points in an RGB color model.
type HSV struct {
	// H is the hue angle in degrees, [0, 360).
	H float64

	// S is the saturation, [0, 1].
	S float64

	// V is the value (brightness), [0, 1].
	V float64
}

func (c HSV) RGBA() (r, g, b, a uint32) {
	return HSVToRGB(c.H, c.S, c.V).RGBA()
}

func hsvModel(c color.Color) color.Color {
	if _, ok := c.(HSV); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	h, s, v := RGBToHSV(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	return HSV{H: h, S: s, V: v}
}

// HSVToRGB converts a hue/saturation/value triple to 8-bit RGB channels
// using the standard hue-segment decomposition. The hue is in degrees and
// must be in [0, 360); saturation and value must be in [0, 1]. Channel
// values are truncated, not rounded.
func HSVToRGB(h, s, v float64) RGB {
	var (
		chroma = v * s
		sector = h / 60
		x      = chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
		m      = v - chroma
	)

	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
	}
}

// RGBToHSV converts 8-bit RGB channels to a hue/saturation/value triple,
// with the hue in degrees, [0, 360).
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	var (
		fr  = float64(r) / 255
		fg  = float64(g) / 255
		fb  = float64(b) / 255
		max = math.Max(math.Max(fr, fg), fb)
		min = math.Min(math.Min(fr, fg), fb)
		d   = max - min
	)
	v = max
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		// Achromatic.
		return 0, s, v
	}
	switch max {
	case fr:
		h = (fg - fb) / d
		if fg < fb {
			h += 6
		}
	case fg:
		h = (fb-fr)/d + 2
	case fb:
		h = (fr-fg)/d + 4
	}
	return h * 60, s, v
}
