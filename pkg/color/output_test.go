package color

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/mrubio/hwsspath/pkg/spectrum"
)

func TestToRGBABlackIsOpaqueBlack(t *testing.T) {
	c := ToRGBA(spectrum.XYZ{})
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("zero XYZ should rasterize to black, got %+v", c)
	}
	if c.A != 255 {
		t.Errorf("alpha = %d, want 255 (fully opaque)", c.A)
	}
}

func TestToRGBABrightWhiteDoesNotWrapToBlack(t *testing.T) {
	// D65-ish white point scaled way past 1.0 in linear sRGB; tonemap
	// should pull it back under the ceiling rather than wrap or panic.
	c := ToRGBA(spectrum.XYZ{X: 95.0, Y: 100.0, Z: 108.9})
	if c.R == 0 && c.G == 0 && c.B == 0 {
		t.Error("bright input rasterized to black")
	}
}

func TestImageProducesCorrectDimensions(t *testing.T) {
	means := make([]spectrum.XYZ, 4*3)
	img := Image(4, 3, means)
	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 3 {
		t.Errorf("image size = %dx%d, want 4x3", bounds.Dx(), bounds.Dy())
	}
}

func TestWritePNGRoundTrips(t *testing.T) {
	means := []spectrum.XYZ{{X: 0.2, Y: 0.2, Z: 0.2}, {}, {}, {}}
	img := Image(2, 2, means)

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 2 || decoded.Bounds().Dy() != 2 {
		t.Errorf("decoded size = %v, want 2x2", decoded.Bounds())
	}
}
