//go:build !linux

package framebuffer

import (
	"errors"

	"github.com/BeatGlow/rainbow"
)

var ErrNotSupported = errors.New("framebuffer: not supported")

func Open(_ string) (rainbow.Screen, error) {
	return nil, ErrNotSupported
}
