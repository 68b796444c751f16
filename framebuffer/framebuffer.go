// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call, which maps the device's pixel memory and
// describes its layout as a [rainbow.Surface].
//
// Only packed 24- and 32-bit truecolor layouts are supported; anything else is
// rejected when the device is opened, before any pixel is written.
package framebuffer
