// Package spectrum implements the Hero Wavelength Spectral Sampling
// (HWSS) machinery: wavelength sets, four-lane spectral samples and
// PDF sets, CIE reconstruction, and RGB-to-spectrum upsampling.
package spectrum

// LambdaMin and LambdaMax bound the visible wavelength domain this
// renderer samples over, per spec.md §3.
const (
	LambdaMin   = 380.0
	LambdaMax   = 720.0
	lambdaRange = LambdaMax - LambdaMin
)

// Set is a hero wavelength plus its three rotated partners, drawn
// uniformly over [LambdaMin, LambdaMax). All four wavelengths share the
// same (uniform) PDF, which is why it cancels out of HWSS MIS.
type Set struct {
	Lambda [4]float64
}

// SampleSet draws a wavelength set from a single uniform random number
// u in [0, 1), per spec.md §4.1: the hero wavelength is u mapped
// linearly into the domain, and the three partners are rotated copies
// spaced a quarter of the domain apart, wrapping around.
func SampleSet(u float64) Set {
	hero := LambdaMin + u*lambdaRange
	var s Set
	s.Lambda[0] = hero
	for i := 1; i < 4; i++ {
		offset := float64(i) * lambdaRange / 4
		s.Lambda[i] = LambdaMin + mod(hero-LambdaMin+offset, lambdaRange)
	}
	return s
}

func mod(a, m float64) float64 {
	r := a - m*float64(int(a/m))
	if r < 0 {
		r += m
	}
	return r
}

// Hero returns the primary (first) wavelength of the set.
func (s Set) Hero() float64 { return s.Lambda[0] }

// PDF returns the sampling density of this wavelength set. All four
// lanes share the same uniform density because they are a deterministic
// rotation of the same draw.
func (s Set) PDF() float64 { return 1 / lambdaRange }
