// Package rainbow renders a horizontal rainbow gradient into raw pixel
// memory.
//
// The core is [Render], which fills a caller-supplied byte buffer whose
// layout is described by a [Surface]. Acquiring that buffer is the job of a
// display backend, such as [github.com/BeatGlow/rainbow/framebuffer] for
// the Linux framebuffer device, which hands out a [Screen].
package rainbow

import (
	"errors"
	"fmt"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("RAINBOW_DEBUG") != ""
}

// Errors
var (
	ErrDeviceUnavailable = errors.New("rainbow: display device unavailable")
	ErrUnsupportedFormat = errors.New("rainbow: unsupported pixel format")
	ErrShortBuffer       = errors.New("rainbow: pixel buffer too short")
)

// ChannelOrder defines the order of the color channels within a pixel.
type ChannelOrder uint8

// Supported channel orders.
const (
	BGR ChannelOrder = iota // blue first, the common little-endian layout
	RGB                     // red first
)

func (o ChannelOrder) String() string {
	switch o {
	case RGB:
		return "RGB"
	default:
		return "BGR"
	}
}

// Surface describes the pixel layout of a rectangular buffer.
type Surface struct {
	// Width of the surface in pixels.
	Width int

	// Height of the surface in pixels.
	Height int

	// Stride is the number of bytes between vertically adjacent pixels. It
	// may exceed Width*BytesPerPixel due to alignment padding.
	Stride int

	// BytesPerPixel is the size of a single pixel in bytes; 3 and 4 byte
	// pixels are supported.
	BytesPerPixel int

	// Order of the color channels within a pixel.
	Order ChannelOrder

	// HasAlpha is set when 4-byte pixels carry an alpha channel in the
	// fourth byte.
	HasAlpha bool
}

// PixOffset returns the byte offset of the pixel at (x, y).
func (s Surface) PixOffset(x, y int) int {
	return y*s.Stride + x*s.BytesPerPixel
}

// Size returns the minimum pixel buffer length in bytes.
func (s Surface) Size() int {
	return s.Stride * s.Height
}

// Validate checks that the surface describes a renderable pixel layout.
func (s Surface) Validate() error {
	switch s.BytesPerPixel {
	case 3, 4:
	default:
		return fmt.Errorf("%w: %d bytes per pixel", ErrUnsupportedFormat, s.BytesPerPixel)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d", ErrUnsupportedFormat, s.Width, s.Height)
	}
	if min := s.Width * s.BytesPerPixel; s.Stride < min {
		return fmt.Errorf("%w: stride %d below row size %d", ErrUnsupportedFormat, s.Stride, min)
	}
	return nil
}

// Screen is a display surface acquired from a backend.
//
// The pixel buffer remains valid and exclusively writable until Close is
// called. Close is idempotent and must be called even when rendering fails,
// so the backend can release the mapped region and the device handle.
type Screen interface {
	// Surface describes the pixel layout of the screen.
	Surface() Surface

	// Pix is the pixel buffer, at least Surface().Size() bytes.
	Pix() []byte

	// Close releases the pixel buffer and the underlying device.
	Close() error
}
