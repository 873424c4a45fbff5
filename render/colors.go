// SPDX-License-Identifier: EPL-2.0

package render

import "image/color"

// Scheme holds the colors for one rendered image.
type Scheme struct {
	Background color.Color
	Positive   color.Color
	Negative   color.Color
}

var (
	black = color.RGBA{A: 0xFF}
	green = color.RGBA{G: 0xFF, A: 0xFF}
	cyan  = color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	gray  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
)

// DrawingScheme is the default palette for the envelope drawing image:
// black canvas, green for both envelope lines.
func DrawingScheme() Scheme {
	return Scheme{Background: black, Positive: green, Negative: green}
}

// SignScheme is the default palette for the sign-subdivided image:
// green above the axis, cyan below.
func SignScheme() Scheme {
	return Scheme{Background: black, Positive: green, Negative: cyan}
}

// ComparisonScheme is the default palette for the original-vs-modified
// image: green for the modified wave, red for the original.
func ComparisonScheme() Scheme {
	return Scheme{Background: black, Positive: green, Negative: red}
}
