package color

// Limits of the HSV components.
const (
	MaxHue        = 360
	MaxSaturation = 100
	MaxValue      = 100
)

// HSV is a color as hue, saturation and value.
//
// Hue is in degrees [0, 360]; saturation and value are percentages
// [0, 100]. At most 361*101*101 colors are representable.
type HSV struct {
	hue uint16
	sat uint8
	val uint8
}

// NewHSV returns an HSV color, clamping each component to its range.
func NewHSV(hue uint16, saturation, value uint8) HSV {
	var h HSV
	h.SetHue(hue)
	h.SetSaturation(saturation)
	h.SetValue(value)
	return h
}

// HSVFromRGB converts c to HSV.
func HSVFromRGB(c RGB) HSV { return c.HSV() }

// HSVFromTemp converts t to HSV through RGB.
func HSVFromTemp(t Temp) HSV { return t.HSV() }

// Hue returns the hue in degrees.
func (h HSV) Hue() uint16 { return h.hue }

// Saturation returns the saturation percentage.
func (h HSV) Saturation() uint8 { return h.sat }

// Value returns the value (brightness) percentage.
func (h HSV) Value() uint8 { return h.val }

// SetHue sets the hue, clamped to [0, 360].
func (h *HSV) SetHue(hue uint16) { h.hue = min(hue, MaxHue) }

// SetSaturation sets the saturation, clamped to [0, 100].
func (h *HSV) SetSaturation(s uint8) { h.sat = min(s, MaxSaturation) }

// SetValue sets the value, clamped to [0, 100].
func (h *HSV) SetValue(v uint8) { h.val = min(v, MaxValue) }

// RGB converts h to RGB.
func (h HSV) RGB() RGB { return hsvToRGB(h) }

// Temp estimates the color temperature of h through RGB.
func (h HSV) Temp() Temp { return h.RGB().Temp() }
