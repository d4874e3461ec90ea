package spectrum

import (
	"encoding/binary"
	"io"
	"math"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// resolution is the number of samples per axis in the upsample cube:
// the table is indexed by (which channel is largest, the other two
// channels' value, and the largest channel's value), the standard
// Jakob-Hanika layout.
const resolution = 64

// coeffSet is the three sigmoid coefficients fit to reproduce one RGB
// triple's spectrum, per spec.md §3's Upsampled(coeffs) contract.
type coeffSet [3]float64

// Table holds the precomputed RGB-to-spectrum coefficient cube
// described by spec.md §7 ("Upsample table file"). It is loaded once
// at scene build and shared read-only across every worker goroutine —
// spec.md §8's "held behind a shared immutable handle" memory
// discipline.
type Table struct {
	coeffs [3][resolution][resolution][resolution]coeffSet

	mu    sync.Mutex
	cache map[[3]float64]coeffSet
}

// LoadTable reads a binary upsample table from path. The expected
// layout is three resolution^3 arrays of float64 coefficient triples,
// one array per "largest channel" case (R, G, or B largest), written
// in the same nesting order they are indexed: outer dimension is the
// other two channels' bucket, middle is the largest channel's bucket,
// inner is the 3-float64 coefficient triple.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening upsample table %q", path)
	}
	defer f.Close()

	t := &Table{cache: make(map[[3]float64]coeffSet)}
	for largest := 0; largest < 3; largest++ {
		for i := 0; i < resolution; i++ {
			for j := 0; j < resolution; j++ {
				for k := 0; k < resolution; k++ {
					var raw [3]float64
					if err := binary.Read(f, binary.LittleEndian, &raw); err != nil {
						if err == io.EOF {
							return nil, errors.Wrapf(err, "upsample table %q truncated", path)
						}
						return nil, errors.Wrapf(err, "reading upsample table %q", path)
					}
					t.coeffs[largest][i][j][k] = coeffSet(raw)
				}
			}
		}
	}
	return t, nil
}

// NewAnalyticTable builds a Table with no precomputed cube; every
// lookup falls through to an on-the-fly Gauss-Newton fit (fitRGB).
// This is the fallback described in SPEC_FULL.md when no binary table
// file is configured: slower per-lookup but exact to the same
// objective the offline table was built against, and results are
// memoized so a material referencing the same RGB repeatedly pays the
// fit cost once.
func NewAnalyticTable() *Table {
	return &Table{cache: make(map[[3]float64]coeffSet)}
}

// Coeffs returns the fit coefficients for an in-gamut linear RGB
// triple (each component in [0, 1]), from the precomputed cube if one
// was loaded, or from an analytic fit, memoized either way.
func (t *Table) Coeffs(rgb [3]float64) (c0, c1, c2 float64) {
	t.mu.Lock()
	if cached, ok := t.cache[rgb]; ok {
		t.mu.Unlock()
		return cached[0], cached[1], cached[2]
	}
	t.mu.Unlock()

	var result coeffSet
	if t.hasCube() {
		result = t.lookupCube(rgb)
	} else {
		result = fitRGB(rgb)
	}

	t.mu.Lock()
	t.cache[rgb] = result
	t.mu.Unlock()
	return result[0], result[1], result[2]
}

func (t *Table) hasCube() bool {
	// An analytic-only table has a coeffs array whose every element
	// is the zero value; a loaded table always overwrites the
	// red-largest white corner bucket [0][res-1][res-1][res-1] with a
	// nonzero fit. Checking that corner is enough to distinguish the two without carrying an
	// extra bool.
	return t.coeffs[0][resolution-1][resolution-1][resolution-1] != coeffSet{}
}

func (t *Table) lookupCube(rgb [3]float64) coeffSet {
	largest := 0
	if rgb[1] >= rgb[0] && rgb[1] >= rgb[2] {
		largest = 1
	} else if rgb[2] >= rgb[0] && rgb[2] >= rgb[1] {
		largest = 2
	}
	a, b := otherTwo(rgb, largest)
	i := bucket(a)
	j := bucket(b)
	k := bucket(rgb[largest])
	return t.coeffs[largest][i][j][k]
}

func otherTwo(rgb [3]float64, largest int) (float64, float64) {
	switch largest {
	case 0:
		return rgb[1], rgb[2]
	case 1:
		return rgb[0], rgb[2]
	default:
		return rgb[0], rgb[1]
	}
}

func bucket(v float64) int {
	idx := int(v * float64(resolution-1))
	if idx < 0 {
		return 0
	}
	if idx >= resolution {
		return resolution - 1
	}
	return idx
}

// fitRGB finds sigmoid coefficients whose spectrum, integrated against
// the CIE matching functions and converted back to linear sRGB,
// reproduces rgb — spec.md §10's target, ΔE < 1 for in-gamut colors.
// Newton's method on the 3x3 system (one equation per channel) with a
// numerically differenced Jacobian, seeded from a flat spectrum at the
// target luminance. This stands in for the offline-precomputed table
// when none is configured; slower, but convergent for well-conditioned
// in-gamut colors within a handful of iterations.
func fitRGB(rgb [3]float64) coeffSet {
	target := rgb
	c := coeffSet{0, 0, luminanceSeed(rgb)}

	const iterations = 15
	// per-coefficient difference steps, scaled to the lambda^2, lambda
	// and constant terms of the sigmoid's polynomial
	steps := [3]float64{1e-9, 1e-6, 1e-3}
	for iter := 0; iter < iterations; iter++ {
		residual := residualRGB(c, target)
		if normSq(residual) < 1e-10 {
			break
		}

		var jac [3][3]float64
		for p := 0; p < 3; p++ {
			perturbed := c
			perturbed[p] += steps[p]
			rp := residualRGB(perturbed, target)
			for q := 0; q < 3; q++ {
				jac[q][p] = (rp[q] - residual[q]) / steps[p]
			}
		}

		delta, ok := solve3x3(jac, residual)
		if !ok {
			break
		}
		c[0] -= delta[0]
		c[1] -= delta[1]
		c[2] -= delta[2]
	}
	return c
}

func luminanceSeed(rgb [3]float64) float64 {
	lum := 0.2126*rgb[0] + 0.7152*rgb[1] + 0.0722*rgb[2]
	// logit of the target luminance, the coefficient that makes a flat
	// (c0=c1=0) sigmoid equal lum at every wavelength.
	lum = math.Max(1e-4, math.Min(1-1e-4, lum))
	return (2*lum - 1) / (2 * math.Sqrt(lum*(1-lum)))
}

// residualRGB evaluates the candidate spectrum on a coarse wavelength
// grid, reconstructs XYZ, converts to linear sRGB, and returns the
// difference from target.
func residualRGB(c coeffSet, target [3]float64) [3]float64 {
	spec := Upsampled{C0: c[0], C1: c[1], C2: c[2]}
	var xyz XYZ
	const step = 5.0
	ySum := 0.0
	for lambda := cieLambdaMin; lambda < LambdaMax; lambda += step {
		xyz = xyz.Add(XYZFromWavelength(lambda, spec.EvaluateAt(lambda)))
		ySum += XYZFromWavelength(lambda, 1).Y
	}
	xyz = xyz.Scale(1 / ySum)
	r, g, b := xyz.ToSRGB()
	return [3]float64{r - target[0], g - target[1], b - target[2]}
}

func normSq(v [3]float64) float64 { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

// solve3x3 solves jac*x = rhs via Cramer's rule; ok is false when jac
// is (numerically) singular, in which case the caller should stop
// iterating rather than divide by ~zero.
func solve3x3(jac [3][3]float64, rhs [3]float64) (x [3]float64, ok bool) {
	det := det3(jac)
	if math.Abs(det) < 1e-12 {
		return x, false
	}
	for col := 0; col < 3; col++ {
		m := jac
		for row := 0; row < 3; row++ {
			m[row][col] = rhs[row]
		}
		x[col] = det3(m) / det
	}
	return x, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
