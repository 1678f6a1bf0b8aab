package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"procnoise/internal/field"
)

// Image converts a grid to an RGBA image, one pixel per sample, auto-ranged
// through ramp.
func Image(g *field.Grid, ramp Ramp) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	st := g.Stats()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := ramp.At(st.Normalize(g.At(x, y)))
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// WritePNG encodes the grid as a PNG to w.
func WritePNG(w io.Writer, g *field.Grid, ramp Ramp) error {
	if err := png.Encode(w, Image(g, ramp)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
