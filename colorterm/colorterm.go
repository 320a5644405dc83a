// Package colorterm adapts color.RGB to terminal UI color types.
package colorterm

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/tinykit/color"
)

// TCell returns c as a true-color tcell color.
func TCell(c color.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTCell converts tc to RGB. Palette colors resolve to their nominal
// RGB value; ok is false for the default color and other colors without
// an RGB value.
func FromTCell(tc tcell.Color) (c color.RGB, ok bool) {
	if !tc.Valid() {
		return color.RGB{}, false
	}
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return color.RGB{}, false
	}
	return color.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// Style returns the default tcell style with fg and bg applied.
func Style(fg, bg color.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(TCell(fg)).Background(TCell(bg))
}

// Lipgloss returns c as a lipgloss hex color.
func Lipgloss(c color.RGB) lipgloss.Color {
	return lipgloss.Color(c.String())
}
