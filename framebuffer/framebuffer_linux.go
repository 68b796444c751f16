package framebuffer

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/BeatGlow/rainbow"
	"github.com/BeatGlow/rainbow/internal/ioctl"
)

const (
	// From <linux/fb.h>
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type device struct {
	f       *os.File
	name    string
	surface rainbow.Surface
	pix     []byte
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (rainbow.Screen, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", rainbow.ErrDeviceUnavailable, err)
	}

	var fix fixScreenInfo
	if err = ioctl.Do(f.Fd(), fbioGetFScreenInfo, &fix); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %v", rainbow.ErrDeviceUnavailable, name, err)
	}

	// Request virtual screen info.
	var screen varScreenInfo
	if err = ioctl.Do(f.Fd(), fbioGetVScreenInfo, &screen); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %v", rainbow.ErrDeviceUnavailable, name, err)
	}

	surface, err := parseSurface(&screen, &fix)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map the pixel buffer.
	pix, err := syscall.Mmap(int(f.Fd()), 0, int(fix.SmemLen),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: mmap %s: %v", rainbow.ErrDeviceUnavailable, name, err)
	}

	return &device{
		f:       f,
		name:    name,
		surface: surface,
		pix:     pix,
	}, nil
}

func (d *device) Surface() rainbow.Surface {
	return d.surface
}

func (d *device) Pix() []byte {
	return d.pix
}

// Close unmaps the pixel buffer and closes the framebuffer device. It is
// safe to call Close more than once. An unmap failure is logged and does not
// stop the device handle from being closed.
func (d *device) Close() error {
	if d.f == nil {
		return nil
	}
	if d.pix != nil {
		if err := syscall.Munmap(d.pix); err != nil {
			log.Printf("framebuffer: munmap %s: %v", d.name, err)
		}
		d.pix = nil
	}
	err := d.f.Close()
	d.f = nil
	return err
}

// parseSurface derives the pixel layout from the fbdev screen information.
// The channel order follows the red channel's bitfield offset.
func parseSurface(screen *varScreenInfo, fix *fixScreenInfo) (rainbow.Surface, error) {
	switch screen.BitsPerPixel {
	case 24, 32:
	default:
		return rainbow.Surface{}, fmt.Errorf("%w: %d bits per pixel",
			rainbow.ErrUnsupportedFormat, screen.BitsPerPixel)
	}

	s := rainbow.Surface{
		Width:         int(screen.Xres),
		Height:        int(screen.Yres),
		Stride:        int(fix.LineLength),
		BytesPerPixel: int(screen.BitsPerPixel) / 8,
		HasAlpha:      screen.Alpha.Length > 0,
	}
	switch {
	case screen.Blue.Offset == 0 && screen.Green.Offset == 8 && screen.Red.Offset == 16:
		s.Order = rainbow.BGR
	case screen.Red.Offset == 0 && screen.Green.Offset == 8 && screen.Blue.Offset == 16:
		s.Order = rainbow.RGB
	default:
		return rainbow.Surface{}, fmt.Errorf("%w: red@%d green@%d blue@%d",
			rainbow.ErrUnsupportedFormat,
			screen.Red.Offset, screen.Green.Offset, screen.Blue.Offset)
	}
	if err := s.Validate(); err != nil {
		return rainbow.Surface{}, err
	}
	return s, nil
}

type fixScreenInfo struct {
	ID         [16]byte  // Identification string eg "TT Builtin"
	SmemStart  uintptr   // Start of frame buffer mem
	SmemLen    uint32    // Length of frame buffer mem
	Type       uint32    // FB_TYPE_
	TypeAux    uint32    // Interleave for interleaved Planes
	Visual     uint32    // FB_VISUAL_
	Xpanstep   uint16    // Zero if no hardware panning
	Ypanstep   uint16    // Zero if no hardware panning
	Ywrapstep  uint16    // Zero if no hardware ywrap
	LineLength uint32    // Length of a line in bytes
	MmioStart  uintptr   // Start of Memory Mapped I/O (physical address)
	MmioLen    uint32    // Length of Memory Mapped I/O
	Accel      uint32    // Type of acceleration available
	Reserved   [3]uint16 // Reserved for future compatibility
}

// bitField for one color channel
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}
