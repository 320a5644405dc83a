package color

import "math"

// Fixed-point formats used by the RGB <-> HSV conversions. Fractions are
// rounded half up by inspecting the bits below the binary point.
const (
	frac16 = 16
	mask16 = 1<<frac16 - 1
	half16 = 1 << (frac16 - 1)

	frac24 = 24
	mask24 = 1<<frac24 - 1
	half24 = 1 << (frac24 - 1)
)

// Curve fit of the black-body locus (Tanner Helland), t = kelvin / 100.
const (
	redScale   = 329.698727446
	redExp     = -0.1332047592
	greenLogA  = 99.4708025861
	greenLogB  = 161.1195681661
	greenScale = 288.1221695283
	greenExp   = -0.0755148492
	blueLogA   = 138.5177312231
	blueLogB   = 305.0447927307
)

// hsvToRGB follows the sector table of the HSV hexcone with chroma and the
// secondary component computed in 16.16 fixed point.
// See https://en.wikipedia.org/wiki/HSL_and_HSV#HSV_to_RGB
func hsvToRGB(h HSV) RGB {
	c := uint32(h.val) * uint32(h.sat) * 255 / 10000 // [0, 255]
	m := uint32(h.val)*255/100 - c                   // [0, 255]

	// x = c * (1 - |(hue/60) mod 2 - 1|)
	t := int32(h.hue) << frac16 / 60
	t %= 2 << frac16
	t -= mask16
	if t < 0 {
		t = -t
	}
	t = mask16 - t
	t *= int32(c)
	x := uint32(uint8(t >> frac16)) // [0, 255]

	switch h.hue / 60 {
	case 1:
		return rgb(x+m, c+m, m)
	case 2:
		return rgb(m, c+m, x+m)
	case 3:
		return rgb(m, x+m, c+m)
	case 4:
		return rgb(x+m, m, c+m)
	case 5:
		return rgb(c+m, m, x+m)
	default: // 0, or 6 for hue == 360
		return rgb(c+m, x+m, m)
	}
}

func rgb(r, g, b uint32) RGB {
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// rgbToHSV computes value and saturation in 8.24 fixed point and hue in
// 16.16 fixed point, each rounded half up.
// See https://en.wikipedia.org/wiki/HSL_and_HSV#From_RGB
func rgbToHSV(c RGB) HSV {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	chroma := hi - lo

	value := percent(hi, 255)
	if chroma == 0 || hi == 0 {
		return NewHSV(0, 0, value)
	}
	return NewHSV(hue(c, hi, chroma), percent(chroma, hi), value)
}

// percent returns round(n * 100 / d).
func percent(n, d uint8) uint8 {
	q := uint32(n) << frac24
	q /= uint32(d)
	q *= 100
	p := uint8(q >> frac24)
	if q&mask24 >= half24 {
		p++
	}
	return p
}

// hue returns the hue in degrees of c, whose largest channel is hi and
// whose chroma is nonzero.
func hue(c RGB, hi, chroma uint8) uint16 {
	var q int32
	switch hi {
	case c.R:
		q = (int32(c.G) - int32(c.B)) << frac16 / int32(chroma)
		if q < 0 {
			// Negative sector wraps from 360 downwards.
			q = -q * 60
			h := 360 - uint16(q>>frac16)
			if q&mask16 >= half16 {
				h--
			}
			return h
		}
	case c.G:
		q = (int32(c.B)-int32(c.R))<<frac16/int32(chroma) + 2<<frac16
	default:
		q = (int32(c.R)-int32(c.G))<<frac16/int32(chroma) + 4<<frac16
	}

	q *= 60
	h := uint16(q >> frac16)
	if q&mask16 >= half16 {
		h++
	}
	return h
}

// tempToRGB evaluates the black-body curve fit at kelvin.
// See https://tannerhelland.com/2012/09/18/convert-temperature-rgb-algorithm-code.html
func tempToRGB(kelvin uint16) RGB {
	t := float64(kelvin) / 100

	var r, g, b float64
	if t <= 66 {
		r = 255
		g = greenLogA*math.Log(t) - greenLogB
		if t <= 19 {
			b = 0
		} else {
			b = blueLogA*math.Log(t-10) - blueLogB
		}
	} else {
		r = redScale * math.Pow(t-60, redExp)
		g = greenScale * math.Pow(t-60, greenExp)
		b = 255
	}

	return RGB{R: clamp(r), G: clamp(g), B: clamp(b)}
}

// rgbToTemp inverts the curve fit. A saturated red channel means the warm
// half of the curve (at most 6600 K), solved from green and snapped to
// 25 K. Otherwise the cool half is solved from red and green separately
// and the midpoint is snapped to 50 K.
func rgbToTemp(c RGB) Temp {
	if c.R == 255 {
		t := math.Exp((float64(c.G) + greenLogB) / greenLogA)
		return kelvinOf(t, 25)
	}

	tr := math.Pow(float64(c.R)/redScale, 1/redExp) + 60
	tg := math.Pow(float64(c.G)/greenScale, 1/greenExp) + 60
	t := math.Min(tr, tg) + math.Abs(tr-tg)/2
	return kelvinOf(t, 50)
}
