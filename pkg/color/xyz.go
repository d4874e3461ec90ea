package color

import "github.com/mrubio/hwsspath/pkg/spectrum"

// SampleToXYZ turns one pixel sample's 4-lane radiance estimate into a
// single CIE XYZ contribution, per spec.md §4.1: each lane is weighted
// by its wavelength's CIE response and divided by the (uniform, shared)
// wavelength sampling PDF. radiance already carries each lane's MIS
// weight (spectrum.PdfSet.MISWeights, lanes summing to 1), so this sum
// is already the complete single-sample estimator — no further
// averaging across lanes belongs here: with HWSS off only one lane is
// nonzero, and that lane alone must reproduce a single-wavelength
// reference estimator exactly.
func SampleToXYZ(radiance spectrum.Sample, set spectrum.Set) spectrum.XYZ {
	invPdf := 1 / set.PDF()

	sum := spectrum.XYZFromWavelength(set.Lambda[0], radiance.H).
		Add(spectrum.XYZFromWavelength(set.Lambda[1], radiance.A)).
		Add(spectrum.XYZFromWavelength(set.Lambda[2], radiance.B)).
		Add(spectrum.XYZFromWavelength(set.Lambda[3], radiance.C))

	return sum.Scale(invPdf)
}
