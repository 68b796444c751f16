// Command rainbow renders a horizontal rainbow gradient to a display.
//
// By default the gradient is written to the Linux framebuffer device, which
// usually requires root privileges. With -out the gradient is rendered to a
// BMP image file instead, which requires no display at all.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/rainbow"
	"github.com/BeatGlow/rainbow/framebuffer"
	"github.com/BeatGlow/rainbow/imagefb"
)

func main() {
	devFlag := flag.String("dev", "/dev/fb0", "Framebuffer device")
	outFlag := flag.String("out", "", "Render to a BMP image file instead of a device")
	widthFlag := flag.Int("width", 1280, "Image width (with -out)")
	heightFlag := flag.Int("height", 720, "Image height (with -out)")
	orderFlag := flag.String("order", "auto", "Channel order (auto, bgr or rgb)")
	workersFlag := flag.Int("workers", 1, "Number of render workers")
	blPinFlag := flag.String("bl", "", "Backlight GPIO pin (optional)")
	flag.Parse()

	if *blPinFlag != "" {
		if _, err := host.Init(); err != nil {
			fatal(err)
		}
		pin := gpioreg.ByName(*blPinFlag)
		if pin == nil {
			fatal(fmt.Errorf("invalid backlight pin %q specified", *blPinFlag))
		}
		if err := pin.Out(gpio.High); err != nil {
			fatal(err)
		}
	}

	var (
		output rainbow.Screen
		err    error
	)
	if *outFlag != "" {
		output, err = imagefb.Open(*outFlag, *widthFlag, *heightFlag)
	} else {
		output, err = framebuffer.Open(*devFlag)
	}
	if err != nil {
		fatal(err)
	}

	surface := output.Surface()
	switch *orderFlag {
	case "", "auto":
	case "bgr":
		surface.Order = rainbow.BGR
	case "rgb":
		surface.Order = rainbow.RGB
	default:
		_ = output.Close()
		fatal(fmt.Errorf("invalid channel order %q specified", *orderFlag))
	}

	fmt.Printf("surface: %dx%d, %d bytes per pixel, stride %d, %s\n",
		surface.Width, surface.Height, surface.BytesPerPixel, surface.Stride, surface.Order)

	if err = rainbow.RenderParallel(surface, output.Pix(), *workersFlag); err != nil {
		_ = output.Close()
		fatal(err)
	}

	if *outFlag == "" {
		fmt.Println("press any key to exit and restore the display...")
		waitForExit()
	}
	if err = output.Close(); err != nil {
		fatal(err)
	}
}

// waitForExit blocks until a key is pressed or the process receives an
// interrupt or termination signal, whichever comes first.
func waitForExit() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	key := make(chan struct{})
	go func() {
		defer close(key)

		fd := int(os.Stdin.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			// Not a terminal; wait for a line instead.
			var buf [1]byte
			_, _ = os.Stdin.Read(buf[:])
			return
		}
		var buf [1]byte
		_, _ = os.Stdin.Read(buf[:])
		_ = term.Restore(fd, state)
	}()

	select {
	case <-sig:
	case <-key:
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
