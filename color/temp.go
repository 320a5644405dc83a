package color

import (
	"log/slog"
	"math"

	"github.com/gogpu/tinykit/internal/logx"
)

// Kelvin limits of Temp.
const (
	MinKelvin     = 1500
	MaxKelvin     = 15000
	DefaultKelvin = 2700
)

// Temp is a color expressed as a black-body temperature in Kelvin.
//
// The zero value is DefaultKelvin (2700 K, a warm white).
type Temp struct {
	// offset from DefaultKelvin, so the zero value and == agree.
	offset int16
}

// Common light sources.
var (
	Candle       = NewTemp(1850)
	Incandescent = NewTemp(2400)
	Fluorescent  = NewTemp(3000)
	Daylight     = NewTemp(5000)
	White        = NewTemp(6500)
	CoolWhite    = NewTemp(7000)
)

// NewTemp returns a temperature, clamping kelvin to [1500, 15000].
func NewTemp(kelvin uint16) Temp {
	var t Temp
	t.SetKelvin(kelvin)
	return t
}

// TempFromRGB estimates the color temperature of c.
func TempFromRGB(c RGB) Temp { return c.Temp() }

// TempFromHSV estimates the color temperature of h.
func TempFromHSV(h HSV) Temp { return h.Temp() }

// Kelvin returns the temperature in Kelvin.
func (t Temp) Kelvin() uint16 {
	return uint16(DefaultKelvin + int32(t.offset))
}

// SetKelvin sets the temperature, clamped to [1500, 15000].
func (t *Temp) SetKelvin(kelvin uint16) {
	kelvin = max(MinKelvin, min(kelvin, MaxKelvin))
	t.offset = int16(int32(kelvin) - DefaultKelvin)
}

// RGB converts t to RGB.
func (t Temp) RGB() RGB { return tempToRGB(t.Kelvin()) }

// HSV converts t to HSV through RGB.
func (t Temp) HSV() HSV { return t.RGB().HSV() }

func logKelvinClamp(estimate float64) {
	if logx.Enabled(slog.LevelDebug) {
		logx.Logger().Debug("color: kelvin estimate out of range, clamped",
			"estimate", estimate, "max", MaxKelvin)
	}
}

// kelvinOf returns the Kelvin value for a raw estimate, snapped to a
// multiple of step.
func kelvinOf(estimate float64, step uint16) Temp {
	k := estimate * 100
	if math.IsNaN(k) || k > MaxKelvin {
		logKelvinClamp(k)
		return NewTemp(MaxKelvin)
	}
	if k < MinKelvin {
		return NewTemp(MinKelvin)
	}
	kelvin := uint16(k)
	if kelvin%step != 0 {
		kelvin += step / 2
		kelvin -= kelvin % step
	}
	return NewTemp(kelvin)
}
