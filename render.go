package rainbow

import (
	"fmt"
	"log"
	"sync"

	"github.com/BeatGlow/rainbow/pixel"
)

// Render fills pix with a horizontal rainbow gradient: the hue sweeps
// linearly from red at the left edge towards magenta at the right edge, at
// full saturation and brightness.
//
// The surface and buffer are validated before any byte is written; on error
// pix is left untouched. Bytes outside the pixel cells, such as stride
// padding, are never written.
func Render(s Surface, pix []byte) error {
	if err := check(s, pix); err != nil {
		return err
	}
	renderRows(s, pix, gradientRow(s.Width), 0, s.Height)
	return nil
}

// RenderParallel renders the same gradient as [Render] with the rows
// partitioned across workers goroutines. Every worker writes to a disjoint
// byte range of pix, so no synchronization beyond the final join is needed.
// The result is byte-identical to a sequential render.
func RenderParallel(s Surface, pix []byte, workers int) error {
	if workers <= 1 {
		return Render(s, pix)
	}
	if err := check(s, pix); err != nil {
		return err
	}
	if workers > s.Height {
		workers = s.Height
	}

	var (
		row  = gradientRow(s.Width)
		rows = (s.Height + workers - 1) / workers
		wg   sync.WaitGroup
	)
	for y := 0; y < s.Height; y += rows {
		end := y + rows
		if end > s.Height {
			end = s.Height
		}
		wg.Add(1)
		go func(y, end int) {
			defer wg.Done()
			renderRows(s, pix, row, y, end)
		}(y, end)
	}
	wg.Wait()
	return nil
}

func check(s Surface, pix []byte) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if len(pix) < s.Size() {
		return fmt.Errorf("%w: have %d, need %d bytes", ErrShortBuffer, len(pix), s.Size())
	}
	if debug {
		log.Printf("rainbow: rendering %dx%d %s, %d bytes per pixel, stride %d",
			s.Width, s.Height, s.Order, s.BytesPerPixel, s.Stride)
	}
	return nil
}

// gradientRow converts one hue per column; every row repeats the same
// colors, so the conversion is hoisted out of the row loop.
func gradientRow(width int) []pixel.RGB {
	row := make([]pixel.RGB, width)
	for x := range row {
		hue := float64(x) / float64(width) * 360
		row[x] = pixel.HSVToRGB(hue, 1, 1)
	}
	return row
}

func renderRows(s Surface, pix []byte, row []pixel.RGB, y0, y1 int) {
	for y := y0; y < y1; y++ {
		offset := y * s.Stride
		for x, c := range row {
			p := pix[offset+x*s.BytesPerPixel:]
			if s.Order == RGB {
				p[0], p[1], p[2] = c.R, c.G, c.B
			} else {
				p[0], p[1], p[2] = c.B, c.G, c.R
			}
			if s.BytesPerPixel == 4 {
				p[3] = 0xff // opaque
			}
		}
	}
}
