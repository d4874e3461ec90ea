package spectrum

import "math"

// Spectrum is a material-owned reflectance or emission curve. A
// Spectrum is evaluated either at a single wavelength (for debugging
// and the upsample table's own fit residual) or at a whole wavelength
// Set, which is the hot path every BSDF and light actually uses.
type Spectrum interface {
	EvaluateAt(lambda float64) float64
	Evaluate(set Set) Sample
}

// Constant is a flat spectrum: the same value at every wavelength.
// Used for perfectly achromatic reflectances (mirrors, glass) where
// upsampling an RGB triple would be needless work.
type Constant struct {
	Value float64
}

func NewConstant(value float64) Constant { return Constant{Value: value} }

func (c Constant) EvaluateAt(float64) float64 { return c.Value }

func (c Constant) Evaluate(Set) Sample { return SplatSample(c.Value) }

// Upsampled is an RGB color lifted into spectral space via the
// Jakob-Hanika three-coefficient sigmoidal fit: s(lambda) = 1/2 +
// (c0*lambda^2 + c1*lambda + c2) / (2*sqrt(1 + (c0*lambda^2 + c1*lambda
// + c2)^2)). The coefficients come from a precomputed table keyed on
// the source RGB triple (see upsample.go); this type just evaluates
// the fit, it does not know where its coefficients came from.
type Upsampled struct {
	C0, C1, C2 float64
}

func NewUpsampled(c0, c1, c2 float64) Upsampled {
	return Upsampled{C0: c0, C1: c1, C2: c2}
}

func (u Upsampled) EvaluateAt(lambda float64) float64 {
	x := u.C0*lambda*lambda + u.C1*lambda + u.C2
	return 0.5 + x/(2*math.Sqrt(1+x*x))
}

func (u Upsampled) Evaluate(set Set) Sample {
	return Sample{
		H: u.EvaluateAt(set.Lambda[0]),
		A: u.EvaluateAt(set.Lambda[1]),
		B: u.EvaluateAt(set.Lambda[2]),
		C: u.EvaluateAt(set.Lambda[3]),
	}
}

// FromRGB upsamples a linear RGB triple into a spectrum via table,
// the convenience scene-authoring entry point for "I have a color,
// give me something Evaluate-able."
func FromRGB(table *Table, r, g, b float64) Upsampled {
	c0, c1, c2 := table.Coeffs([3]float64{r, g, b})
	return NewUpsampled(c0, c1, c2)
}
