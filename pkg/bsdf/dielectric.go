package bsdf

import (
	"math"

	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// dispersionDivergence bounds how far a non-hero lane's own refracted
// direction may diverge from the hero direction actually traced
// before that lane is zeroed out (spec.md §4.2's "diverge beyond a
// small angular threshold"). Expressed as a cosine so the check is one
// dot product; 0.9999 is roughly 0.8 degrees, tight enough that a
// glass prism's visible dispersion still separates lanes but two
// wavelengths a few nanometers apart through a mild dispersion
// coefficient are not needlessly thrown away.
const dispersionDivergence = 0.9999

// Dielectric is a smooth, wavelength-dispersive glass-like interface.
// ReflectTint and TransmitTint color the two branches independently so
// a colored-glass material is expressible without two BSDFs. Dispersion
// follows a Cauchy-like linear model: ior(lambda) = IOR +
// Dispersion*(LambdaRef-lambda)/(LambdaMax-LambdaMin).
type Dielectric struct {
	ReflectTint  spectrum.Spectrum
	TransmitTint spectrum.Spectrum
	IOR          float64
	Dispersion   float64
	LambdaRef    float64
}

func NewDielectric(reflectTint, transmitTint spectrum.Spectrum, ior, dispersion, lambdaRef float64) Dielectric {
	return Dielectric{
		ReflectTint:  reflectTint,
		TransmitTint: transmitTint,
		IOR:          ior,
		Dispersion:   dispersion,
		LambdaRef:    lambdaRef,
	}
}

func (d Dielectric) iorAt(lambda float64) float64 {
	delta := spectrum.LambdaMax - spectrum.LambdaMin
	return d.IOR + d.Dispersion*(d.LambdaRef-lambda)/delta
}

func schlickFresnel(cosTheta, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 *= r0
	x := 1 - cosTheta
	return r0 + (1-r0)*x*x*x*x*x
}

// Evaluate and PDF are zero everywhere: the dielectric only scatters
// into the reflect and refract directions it picks in Sample, so like
// Specular it carries no density anywhere else.
func (d Dielectric) Evaluate(wi, wo core.Vec3[core.Shading], set spectrum.Set) spectrum.Sample {
	return spectrum.Sample{}
}

func (d Dielectric) PDF(wi, wo core.Vec3[core.Shading], set spectrum.Set) spectrum.PdfSet {
	return spectrum.PdfSet{}
}

func (d Dielectric) IsSpecular() bool { return true }

func (d Dielectric) Sample(wo core.Vec3[core.Shading], set spectrum.Set, sampler core.Sampler) (core.Vec3[core.Shading], spectrum.Sample, spectrum.PdfSet, bool) {
	entering := wo.Z > 0
	absCosO := math.Abs(wo.Z)
	sin2ThetaO := math.Max(0, 1-absCosO*absCosO)

	var etaRatio, fresnel [4]float64
	for i, lambda := range set.Lambda {
		eta := d.iorAt(lambda)
		ratio := eta
		if entering {
			ratio = 1 / eta
		}
		etaRatio[i] = ratio
		fresnel[i] = schlickFresnel(absCosO, ratio)
	}

	heroSin2ThetaT := etaRatio[0] * etaRatio[0] * sin2ThetaO
	heroTIR := heroSin2ThetaT >= 1

	u := sampler.NextUniform()
	if heroTIR || u < fresnel[0] {
		return d.sampleReflect(wo, set, fresnel)
	}
	return d.sampleRefract(wo, set, entering, absCosO, sin2ThetaO, etaRatio, fresnel)
}

func (d Dielectric) sampleReflect(wo core.Vec3[core.Shading], set spectrum.Set, fresnel [4]float64) (core.Vec3[core.Shading], spectrum.Sample, spectrum.PdfSet, bool) {
	wi := mirrorDirection(wo)
	cosI := math.Abs(wi.Z)
	if cosI == 0 {
		return wi, spectrum.Sample{}, spectrum.PdfSet{}, false
	}
	tint := d.ReflectTint.Evaluate(set)
	f := spectrum.Sample{
		H: fresnel[0] * tint.H / cosI,
		A: fresnel[1] * tint.A / cosI,
		B: fresnel[2] * tint.B / cosI,
		C: fresnel[3] * tint.C / cosI,
	}
	pdf := spectrum.PdfSet{H: fresnel[0], A: fresnel[1], B: fresnel[2], C: fresnel[3]}
	return wi, f, pdf, true
}

func (d Dielectric) sampleRefract(
	wo core.Vec3[core.Shading], set spectrum.Set,
	entering bool, absCosO, sin2ThetaO float64,
	etaRatio, fresnel [4]float64,
) (core.Vec3[core.Shading], spectrum.Sample, spectrum.PdfSet, bool) {
	sign := 1.0
	if !entering {
		sign = -1.0
	}

	heroSin2ThetaT := etaRatio[0] * etaRatio[0] * sin2ThetaO
	heroCosThetaT := math.Sqrt(math.Max(0, 1-heroSin2ThetaT))
	heroDir := core.NewVec3[core.Shading](
		-etaRatio[0]*wo.X,
		-etaRatio[0]*wo.Y,
		-sign*heroCosThetaT,
	)
	if heroCosThetaT == 0 {
		return heroDir, spectrum.Sample{}, spectrum.PdfSet{}, false
	}

	tint := d.TransmitTint.Evaluate(set)
	var f spectrum.Sample
	var pdf spectrum.PdfSet

	lanesF := [4]*float64{&f.H, &f.A, &f.B, &f.C}
	lanesPdf := [4]*float64{&pdf.H, &pdf.A, &pdf.B, &pdf.C}
	lanesTint := [4]float64{tint.H, tint.A, tint.B, tint.C}

	for i := 0; i < 4; i++ {
		sin2ThetaT := etaRatio[i] * etaRatio[i] * sin2ThetaO
		if sin2ThetaT >= 1 {
			continue // this wavelength totally internally reflects; zero it
		}
		cosThetaT := math.Sqrt(math.Max(0, 1-sin2ThetaT))

		if i != 0 {
			laneDir := core.NewVec3[core.Shading](
				-etaRatio[i]*wo.X,
				-etaRatio[i]*wo.Y,
				-sign*cosThetaT,
			)
			if laneDir.Normalize().Dot(heroDir.Normalize()) < dispersionDivergence {
				continue // diverges too far from the traced hero direction
			}
		}

		if cosThetaT == 0 {
			continue
		}
		*lanesF[i] = (1 - fresnel[i]) * lanesTint[i] / cosThetaT
		*lanesPdf[i] = 1 - fresnel[i]
	}

	return heroDir, f, pdf, true
}

var _ BSDF = Dielectric{}
