package bsdf

import (
	"math"

	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// Lambertian is a perfectly diffuse surface: f_s = rho(lambda)/pi at
// every direction pair, cosine-weighted hemisphere sampling.
type Lambertian struct {
	Reflectance spectrum.Spectrum
}

func NewLambertian(reflectance spectrum.Spectrum) Lambertian {
	return Lambertian{Reflectance: reflectance}
}

func (l Lambertian) Evaluate(wi, wo core.Vec3[core.Shading], set spectrum.Set) spectrum.Sample {
	if wi.CosTheta() <= 0 {
		return spectrum.Sample{}
	}
	return l.Reflectance.Evaluate(set).Scale(1 / math.Pi)
}

func (l Lambertian) PDF(wi, wo core.Vec3[core.Shading], set spectrum.Set) spectrum.PdfSet {
	cosTheta := wi.CosTheta()
	if cosTheta <= 0 {
		return spectrum.PdfSet{}
	}
	return spectrum.SplatPdf(cosTheta / math.Pi)
}

// Sample draws wi by cosine-weighted hemisphere sampling: with
// (u1, u2) uniform in [0,1)^2, r = sqrt(u1), phi = 2*pi*u2, wi =
// (r*cos(phi), r*sin(phi), sqrt(1-u1)).
func (l Lambertian) Sample(wo core.Vec3[core.Shading], set spectrum.Set, sampler core.Sampler) (core.Vec3[core.Shading], spectrum.Sample, spectrum.PdfSet, bool) {
	u1 := sampler.NextUniform()
	u2 := sampler.NextUniform()

	r := math.Sqrt(u1)
	phi := 2 * math.Pi * u2
	wi := core.NewVec3[core.Shading](r*math.Cos(phi), r*math.Sin(phi), math.Sqrt(math.Max(0, 1-u1)))

	cosTheta := wi.CosTheta()
	if cosTheta <= 0 {
		return wi, spectrum.Sample{}, spectrum.PdfSet{}, false
	}

	f := l.Reflectance.Evaluate(set).Scale(1 / math.Pi)
	pdf := spectrum.SplatPdf(cosTheta / math.Pi)
	return wi, f, pdf, true
}

func (l Lambertian) IsSpecular() bool { return false }

var _ BSDF = Lambertian{}
