package bsdf

import (
	"math"

	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// Specular is a perfect mirror: reflectance Reflectance(lambda),
// scattering only into the mirror direction of wo.
type Specular struct {
	Reflectance spectrum.Spectrum
}

func NewSpecular(reflectance spectrum.Spectrum) Specular {
	return Specular{Reflectance: reflectance}
}

func mirrorDirection(wo core.Vec3[core.Shading]) core.Vec3[core.Shading] {
	return core.NewVec3[core.Shading](-wo.X, -wo.Y, wo.Z)
}

// Evaluate and PDF are zero everywhere: a delta function carries no
// density off the single direction it scatters into, and the
// integrator never calls Evaluate/PDF on the exact mirror direction
// because it reaches that direction only through Sample.
func (s Specular) Evaluate(wi, wo core.Vec3[core.Shading], set spectrum.Set) spectrum.Sample {
	return spectrum.Sample{}
}

func (s Specular) PDF(wi, wo core.Vec3[core.Shading], set spectrum.Set) spectrum.PdfSet {
	return spectrum.PdfSet{}
}

// Sample folds the Dirac factor into the returned bsdf value: f =
// reflectance(lambda) / |cosTheta_i|, pdf = 1 at every lane, so that
// f*cosTheta/pdf.Hero() == reflectance(lambda) exactly.
func (s Specular) Sample(wo core.Vec3[core.Shading], set spectrum.Set, sampler core.Sampler) (core.Vec3[core.Shading], spectrum.Sample, spectrum.PdfSet, bool) {
	wi := mirrorDirection(wo)
	cosTheta := math.Abs(wi.CosTheta())
	if cosTheta == 0 {
		return wi, spectrum.Sample{}, spectrum.PdfSet{}, false
	}
	f := s.Reflectance.Evaluate(set).Scale(1 / cosTheta)
	return wi, f, spectrum.SplatPdf(1), true
}

func (s Specular) IsSpecular() bool { return true }

var _ BSDF = Specular{}
