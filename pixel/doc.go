// Package pixel implements the color types used by the gradient renderer.
//
// The color types are compatible with Go's native [color.Color] interface.
// [HSVToRGB] is the conversion the renderer drives for every pixel column.
package pixel
