// Command tinydemo renders the tinykit color conversions as a PNG swatch
// sheet and prints a short terminal preview.
package main

import (
	"flag"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/tinykit"
	"github.com/gogpu/tinykit/color"
	"github.com/gogpu/tinykit/colorterm"
	"github.com/gogpu/tinykit/ring"
	"github.com/gogpu/tinykit/set"
)

// sextant is one of the six hue sectors of the HSV wheel.
type sextant uint8

type sextants struct{}

func (sextants) Bounds() (lo, hi sextant) { return 0, 5 }

// history is the number of swatches kept for the terminal preview.
const history = 8

func main() {
	var (
		width   = flag.Int("width", 720, "image width")
		rows    = flag.Int("rows", 60, "height of each swatch row")
		output  = flag.String("output", "swatches.png", "output file")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()
	if *width < 2 || *rows < 1 {
		log.Fatal("width must be at least 2, rows at least 1")
	}

	if *verbose {
		tinykit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	img := image.NewNRGBA(image.Rect(0, 0, *width, *rows*3))
	var recent ring.Buffer[color.RGB, [history]color.RGB]
	var seen set.Set[sextant, sextants, set.Bits64]

	for x := 0; x < *width; x++ {
		t := float64(x) / float64(*width-1)

		k := color.NewTemp(uint16(float64(color.MinKelvin) + t*float64(color.MaxKelvin-color.MinKelvin)))
		fill(img, x, 0, *rows, k.RGB())

		h := color.NewHSV(uint16(t*float64(color.MaxHue)), color.MaxSaturation, color.MaxValue)
		fill(img, x, *rows, *rows, h.RGB())
		seen.Insert(sextant(min(h.Hue()/60, 5)))

		// Round trip through Kelvin to show the estimate drift.
		fill(img, x, 2*(*rows), *rows, h.RGB().Temp().RGB())

		if x%(*width/history+1) == 0 {
			recent.PushForce(h.RGB())
		}
	}

	if err := save(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Swatches saved to %s (%dx%d), hue sectors %v\n",
		*output, *width, *rows*3, seen.String())

	for c := range recent.All() {
		block := lipgloss.NewStyle().Background(colorterm.Lipgloss(*c)).Render("    ")
		fmt.Printf("%s %s %s %s\n", block, c, c.HSV(), c.Temp())
	}
}

func fill(img *image.NRGBA, x, y, h int, c color.RGB) {
	nc := stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	for j := y; j < y+h; j++ {
		img.SetNRGBA(x, j, nc)
	}
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
