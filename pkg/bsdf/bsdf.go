// Package bsdf implements the three concrete surface-scattering
// variants (Lambertian, perfect specular, smooth dielectric) behind a
// single polymorphic contract, plus the HWSS Dirac-folding convention
// that lets specular and non-specular BSDFs share one integrator loop.
package bsdf

import (
	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// BSDF is the polymorphic surface-reflectance contract every material
// implements. Directions are in the shading frame, where Z is the
// geometric normal.
type BSDF interface {
	// Evaluate returns f_s(wi, wo) at each of the set's four
	// wavelengths. Zero for specular BSDFs: a delta function has no
	// well-defined value off the single direction it scatters into.
	Evaluate(wi, wo core.Vec3[core.Shading], set spectrum.Set) spectrum.Sample

	// PDF returns the density of Sample producing wi given wo. Zero
	// for specular BSDFs.
	PDF(wi, wo core.Vec3[core.Shading], set spectrum.Set) spectrum.PdfSet

	// Sample draws an incoming direction wi given outgoing wo. The
	// returned Sample is f_s, and the returned PdfSet is its
	// sampling density per wavelength; for specular BSDFs the Dirac
	// factor is folded in so that bsdf*cosTheta/pdf.Hero() equals the
	// specular reflectance or transmittance exactly.
	Sample(wo core.Vec3[core.Shading], set spectrum.Set, sampler core.Sampler) (wi core.Vec3[core.Shading], f spectrum.Sample, pdf spectrum.PdfSet, ok bool)

	IsSpecular() bool
}
