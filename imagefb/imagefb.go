// Package imagefb provides an in-memory display backend.
//
// The backend renders into an allocated pixel buffer instead of device
// memory, and writes the result to a BMP image file when it is closed. It
// is useful for headless testing and for previewing output on systems
// without framebuffer access.
package imagefb

import (
	"fmt"
	"os"

	"golang.org/x/image/bmp"

	"github.com/BeatGlow/rainbow"
)

type screen struct {
	path string
	fb   *rainbow.Framebuffer
}

// Open allocates a 32-bit BGRA surface of the requested size. The rendered
// pixels are written to a BMP image at path on Close.
func Open(path string, width, height int) (rainbow.Screen, error) {
	s := rainbow.Surface{
		Width:         width,
		Height:        height,
		Stride:        width * 4,
		BytesPerPixel: 4,
		Order:         rainbow.BGR,
		HasAlpha:      true,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &screen{
		path: path,
		fb: &rainbow.Framebuffer{
			Surface: s,
			Pix:     make([]byte, s.Size()),
		},
	}, nil
}

func (s *screen) Surface() rainbow.Surface {
	return s.fb.Surface
}

func (s *screen) Pix() []byte {
	return s.fb.Pix
}

// Close writes the buffer contents to the backing image file and releases
// the buffer. It is safe to call Close more than once; only the first call
// writes.
func (s *screen) Close() error {
	if s.fb == nil {
		return nil
	}
	fb := s.fb
	s.fb = nil

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("imagefb: %v", err)
	}
	if err = bmp.Encode(f, fb); err != nil {
		_ = f.Close()
		return fmt.Errorf("imagefb: encode %s: %v", s.path, err)
	}
	return f.Close()
}
