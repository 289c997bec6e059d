// Package colorutil provides shared color utilities for panel detection and layout.
package colorutil

import "image/color"

// Common colors used throughout the application.
var (
	Black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// IsDark reports whether a pixel of an inverted image is background, i.e.
// every color channel is zero. Alpha is ignored.
func IsDark(c color.NRGBA) bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Intensity returns the sum of the color channels of c.
func Intensity(c color.NRGBA) float64 {
	return float64(c.R) + float64(c.G) + float64(c.B)
}
