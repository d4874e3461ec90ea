// Package color turns accumulated per-pixel CIE XYZ into a displayable
// image: tonemap, gamma-correct, quantize, encode. Grounded in the
// teacher's saveImageToFile (main.go), which writes a *image.RGBA
// through image/png — the quantization and gamma step themselves are
// new, since the teacher accumulates RGB directly and never carries a
// CIE XYZ stage.
package color

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// tonemap applies spec.md §4.1's reduction from unbounded linear
// radiance into [0, 1): v / (1 + |v|).
func tonemap(v float64) float64 {
	return v / (1 + math.Abs(v))
}

// ToRGBA converts one pixel's mean XYZ into a gamma-corrected, 8-bit,
// fully opaque color: XYZ -> linear sRGB (spectrum.XYZ.ToSRGB) ->
// tonemap -> sRGB transfer function -> quantize. The sRGB transfer
// function and 8-bit packing are go-colorful's job, not hand-rolled,
// the same division of labor the rest of this module uses for CIE
// tables and matrices versus display-referred color math.
func ToRGBA(xyz spectrum.XYZ) stdcolor.RGBA {
	r, g, b := xyz.ToSRGB()
	r, g, b = tonemap(r), tonemap(g), tonemap(b)
	c := colorful.LinearRgb(r, g, b).Clamped()
	R, G, B := c.RGB255()
	return stdcolor.RGBA{R: R, G: G, B: B, A: 255}
}

// Image rasterizes a width x height grid of mean XYZ pixel values into
// an *image.RGBA ready for png.Encode.
func Image(width, height int, means []spectrum.XYZ) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, ToRGBA(means[y*width+x]))
		}
	}
	return img
}

// WritePNG encodes img as a PNG to w, the same encoder the teacher's
// saveImageToFile uses.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
