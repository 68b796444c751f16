package rainbow

import (
	"image"
	"image/color"
)

// Framebuffer exposes a surface and its pixel buffer as a [draw.Image], so
// rendered output can be read back or handed to Go's image encoders.
type Framebuffer struct {
	Surface

	// Pix is the raw pixel buffer described by Surface.
	Pix []byte
}

func (f *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

func (f *Framebuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(f.Bounds()) {
		return color.Transparent
	}

	var (
		p = f.Pix[f.PixOffset(x, y):]
		c = color.RGBA{A: 0xff}
	)
	if f.Order == RGB {
		c.R, c.G, c.B = p[0], p[1], p[2]
	} else {
		c.B, c.G, c.R = p[0], p[1], p[2]
	}
	if f.BytesPerPixel == 4 && f.HasAlpha {
		c.A = p[3]
	}
	return c
}

func (f *Framebuffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(f.Bounds()) {
		return
	}

	r, g, b, _ := c.RGBA()
	p := f.Pix[f.PixOffset(x, y):]
	if f.Order == RGB {
		p[0], p[1], p[2] = uint8(r>>8), uint8(g>>8), uint8(b>>8)
	} else {
		p[0], p[1], p[2] = uint8(b>>8), uint8(g>>8), uint8(r>>8)
	}
	if f.BytesPerPixel == 4 {
		p[3] = 0xff
	}
}
