package color

import (
	stdcolor "image/color"
	"math"
)

// RGB is a color with 8-bit red, green and blue channels.
// The zero value is black.
type RGB struct {
	R, G, B uint8
}

// Black is RGB{0, 0, 0}.
var Black = RGB{}

// FromColor converts any image/color.Color to RGB, dropping alpha.
// Premultiplied channels are un-premultiplied first.
func FromColor(c stdcolor.Color) RGB {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// RGBA implements image/color.Color. The color is fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// HSV converts c to HSV.
func (c RGB) HSV() HSV { return rgbToHSV(c) }

// Temp estimates the color temperature of c.
func (c RGB) Temp() Temp { return rgbToTemp(c) }

// Luminance returns the relative luminance of c (Rec. 709 weights)
// on a 0-255 scale.
func (c RGB) Luminance() uint8 {
	l := 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
	return clamp(math.Round(l))
}

// RGBFromHSV converts h to RGB.
func RGBFromHSV(h HSV) RGB { return h.RGB() }

// RGBFromTemp converts t to RGB.
func RGBFromTemp(t Temp) RGB { return t.RGB() }

// clamp converts float to uint8, truncating toward zero.
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 || math.IsNaN(v) {
		return 0
	}
	return uint8(v)
}
