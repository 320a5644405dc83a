package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrSyntax reports text that does not encode a color.
var ErrSyntax = errors.New("color: invalid syntax")

// Named returns the SVG 1.1 / CSS color with the given name. Matching
// ignores case and spaces, so "Dark Orange" finds darkorange.
func Named(name string) (RGB, bool) {
	// A Caser is stateful, so each call gets its own.
	key := strings.ReplaceAll(cases.Fold().String(strings.TrimSpace(name)), " ", "")
	c, ok := colornames.Map[key]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}

// String returns c as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts "#rrggbb",
// "#rgb" and color names known to Named.
func (c *RGB) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		named, ok := Named(s)
		if !ok {
			return fmt.Errorf("%w: unknown color %q", ErrSyntax, s)
		}
		*c = named
		return nil
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("%w: rgb %q", ErrSyntax, s)
	}
	switch len(hex) {
	case 3:
		*c = RGB{R: uint8(v>>8&0xf) * 17, G: uint8(v>>4&0xf) * 17, B: uint8(v&0xf) * 17}
	case 6:
		*c = RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	default:
		return fmt.Errorf("%w: rgb %q needs 3 or 6 hex digits", ErrSyntax, s)
	}
	return nil
}

// String returns h as "hsv(h,s,v)".
func (h HSV) String() string {
	return fmt.Sprintf("hsv(%d,%d,%d)", h.hue, h.sat, h.val)
}

// MarshalText implements encoding.TextMarshaler.
func (h HSV) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for "hsv(h,s,v)".
// Components out of range are clamped.
func (h *HSV) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	body, ok := strings.CutPrefix(strings.ToLower(s), "hsv(")
	if ok {
		body, ok = strings.CutSuffix(body, ")")
	}
	if !ok {
		return fmt.Errorf("%w: hsv %q", ErrSyntax, s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return fmt.Errorf("%w: hsv %q needs three components", ErrSyntax, s)
	}
	var n [3]uint64
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: hsv %q: %v", ErrSyntax, s, err)
		}
		n[i] = v
	}
	*h = NewHSV(uint16(min(n[0], MaxHue)), uint8(min(n[1], MaxSaturation)), uint8(min(n[2], MaxValue)))
	return nil
}

// String returns t as "2700K".
func (t Temp) String() string {
	return strconv.Itoa(int(t.Kelvin())) + "K"
}

// MarshalText implements encoding.TextMarshaler.
func (t Temp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts a number
// of Kelvin with one optional "K" or "k" suffix; the value is clamped.
func (t *Temp) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	num := strings.TrimSpace(strings.TrimSuffix(strings.ToUpper(s), "K"))
	v, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: temperature %q", ErrSyntax, s)
	}
	*t = NewTemp(uint16(min(v, MaxKelvin)))
	return nil
}
