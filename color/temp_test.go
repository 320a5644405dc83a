package color

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/tinykit/internal/logx"
)

func TestTempDefault(t *testing.T) {
	var z Temp
	if z.Kelvin() != DefaultKelvin {
		t.Errorf("zero Temp = %dK, want %dK", z.Kelvin(), DefaultKelvin)
	}
	if z != NewTemp(2700) {
		t.Error("zero Temp != NewTemp(2700)")
	}
}

func TestTempClamps(t *testing.T) {
	tests := []struct {
		in, want uint16
	}{
		{0, 1500},
		{999, 1500},
		{1500, 1500},
		{4321, 4321},
		{15000, 15000},
		{20000, 15000},
		{65535, 15000},
	}
	for _, tt := range tests {
		if got := NewTemp(tt.in).Kelvin(); got != tt.want {
			t.Errorf("NewTemp(%d) = %dK, want %dK", tt.in, got, tt.want)
		}
		var s Temp
		s.SetKelvin(tt.in)
		if got := s.Kelvin(); got != tt.want {
			t.Errorf("SetKelvin(%d) = %dK, want %dK", tt.in, got, tt.want)
		}
	}
}

func TestNamedTemperatures(t *testing.T) {
	tests := []struct {
		name string
		t    Temp
		want uint16
	}{
		{"Candle", Candle, 1850},
		{"Incandescent", Incandescent, 2400},
		{"Fluorescent", Fluorescent, 3000},
		{"Daylight", Daylight, 5000},
		{"White", White, 6500},
		{"CoolWhite", CoolWhite, 7000},
	}
	for _, tt := range tests {
		if got := tt.t.Kelvin(); got != tt.want {
			t.Errorf("%s = %dK, want %dK", tt.name, got, tt.want)
		}
	}
}

func TestTempToRGB(t *testing.T) {
	tests := []struct {
		kelvin uint16
		want   RGB
	}{
		{1500, RGB{255, 108, 0}},
		{1850, RGB{255, 129, 0}},
		{2700, RGB{255, 166, 87}},
		{5000, RGB{255, 228, 205}},
		{6500, RGB{255, 254, 250}},
		{7000, RGB{242, 242, 255}},
		{10000, RGB{201, 218, 255}},
		{15000, RGB{181, 205, 255}},
	}
	for _, tt := range tests {
		got := NewTemp(tt.kelvin).RGB()
		if got != tt.want {
			t.Errorf("NewTemp(%d).RGB() = %v, want %v", tt.kelvin, got, tt.want)
		}
		if got := RGBFromTemp(NewTemp(tt.kelvin)); got != tt.want {
			t.Errorf("RGBFromTemp(%d) = %v, want %v", tt.kelvin, got, tt.want)
		}
	}
}

func TestTempToRGBShape(t *testing.T) {
	w := White.RGB()
	if w.R < 240 || w.G < 240 || w.B < 240 {
		t.Errorf("White.RGB() = %v, want all channels high", w)
	}

	c := Candle.RGB()
	if c.R != 255 || c.R < c.G || c.G < c.B || c.B > 30 {
		t.Errorf("Candle.RGB() = %v, want R=255 >= G >= B with B small", c)
	}
}

func TestRGBToTemp(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint16
	}{
		{"white 6500K", RGB{255, 254, 250}, 6500},
		{"candle", RGB{255, 129, 0}, 1850},
		{"cool white", RGB{242, 242, 255}, 7000},
		{"sky", RGB{181, 205, 255}, 15000},
		{"warm white snaps to 25K", RGB{255, 166, 87}, 2675},
		{"pure red clamps low", RGB{255, 0, 0}, 1500},
		{"pure white", RGB{255, 255, 255}, 6550},
		{"pale blue", RGB{200, 200, 255}, 14400},
		{"black clamps high", Black, 15000},
		{"no red clamps high", RGB{0, 100, 255}, 15000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Temp().Kelvin(); got != tt.want {
				t.Errorf("%v.Temp() = %dK, want %dK", tt.in, got, tt.want)
			}
		})
	}
}

func TestTempRoundTrip(t *testing.T) {
	for _, k := range []Temp{Candle, Incandescent, Fluorescent, Daylight, White, CoolWhite} {
		if got := k.RGB().Temp(); got != k {
			t.Errorf("%v -> %v -> %v", k, k.RGB(), got)
		}
	}
}

func TestTempViaHSV(t *testing.T) {
	h := White.HSV()
	if h != HSVFromTemp(White) {
		t.Errorf("HSVFromTemp(White) = %v, want %v", HSVFromTemp(White), h)
	}
	if h.Saturation() > 5 || h.Value() != 100 {
		t.Errorf("White.HSV() = %v, want a near-white", h)
	}
}

func TestKelvinClampLogged(t *testing.T) {
	orig := logx.Logger()
	t.Cleanup(func() { logx.SetLogger(orig) })

	var buf bytes.Buffer
	logx.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_ = Black.Temp()
	if !strings.Contains(buf.String(), "kelvin estimate out of range") {
		t.Errorf("log output = %q", buf.String())
	}
}
