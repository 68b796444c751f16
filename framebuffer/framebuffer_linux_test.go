package framebuffer

import (
	"errors"
	"testing"

	"github.com/BeatGlow/rainbow"
)

func TestParseSurface(t *testing.T) {
	tests := []struct {
		name   string
		screen varScreenInfo
		fix    fixScreenInfo
		want   rainbow.Surface
	}{
		{
			name: "BGRA32",
			screen: varScreenInfo{
				Xres:         640,
				Yres:         480,
				BitsPerPixel: 32,
				Red:          bitField{Offset: 16, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 0, Length: 8},
				Alpha:        bitField{Offset: 24, Length: 8},
			},
			fix: fixScreenInfo{LineLength: 640 * 4},
			want: rainbow.Surface{
				Width:         640,
				Height:        480,
				Stride:        640 * 4,
				BytesPerPixel: 4,
				Order:         rainbow.BGR,
				HasAlpha:      true,
			},
		},
		{
			name: "XBGR32",
			screen: varScreenInfo{
				Xres:         800,
				Yres:         600,
				BitsPerPixel: 32,
				Red:          bitField{Offset: 0, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 16, Length: 8},
			},
			fix: fixScreenInfo{LineLength: 800 * 4},
			want: rainbow.Surface{
				Width:         800,
				Height:        600,
				Stride:        800 * 4,
				BytesPerPixel: 4,
				Order:         rainbow.RGB,
			},
		},
		{
			name: "RGB24 with padded stride",
			screen: varScreenInfo{
				Xres:         320,
				Yres:         240,
				BitsPerPixel: 24,
				Red:          bitField{Offset: 0, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 16, Length: 8},
			},
			fix: fixScreenInfo{LineLength: 320*3 + 32},
			want: rainbow.Surface{
				Width:         320,
				Height:        240,
				Stride:        320*3 + 32,
				BytesPerPixel: 3,
				Order:         rainbow.RGB,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := parseSurface(&test.screen, &test.fix)
			if err != nil {
				t.Fatal(err)
			}
			if s != test.want {
				t.Errorf("expected %+v, got %+v", test.want, s)
			}
		})
	}
}

func TestParseSurfaceUnsupported(t *testing.T) {
	tests := []struct {
		name   string
		screen varScreenInfo
		fix    fixScreenInfo
	}{
		{
			name: "16 bits per pixel",
			screen: varScreenInfo{
				Xres:         640,
				Yres:         480,
				BitsPerPixel: 16,
				Red:          bitField{Offset: 11, Length: 5},
				Green:        bitField{Offset: 5, Length: 6},
				Blue:         bitField{Offset: 0, Length: 5},
			},
			fix: fixScreenInfo{LineLength: 640 * 2},
		},
		{
			name: "unknown channel layout",
			screen: varScreenInfo{
				Xres:         640,
				Yres:         480,
				BitsPerPixel: 32,
				Red:          bitField{Offset: 8, Length: 8},
				Green:        bitField{Offset: 16, Length: 8},
				Blue:         bitField{Offset: 24, Length: 8},
			},
			fix: fixScreenInfo{LineLength: 640 * 4},
		},
		{
			name: "stride below row size",
			screen: varScreenInfo{
				Xres:         640,
				Yres:         480,
				BitsPerPixel: 32,
				Red:          bitField{Offset: 16, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 0, Length: 8},
			},
			fix: fixScreenInfo{LineLength: 640},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := parseSurface(&test.screen, &test.fix); !errors.Is(err, rainbow.ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}
