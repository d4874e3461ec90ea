package spectrum

import (
	"math"
	"testing"
)

func TestSampleWavelengthSet(t *testing.T) {
	set := SampleSet(0.0)
	if set.Hero() != LambdaMin {
		t.Errorf("hero at u=0 should be LambdaMin, got %v", set.Hero())
	}
	for _, lambda := range set.Lambda {
		if lambda < LambdaMin || lambda >= LambdaMax {
			t.Errorf("wavelength %v out of domain [%v, %v)", lambda, LambdaMin, LambdaMax)
		}
	}
}

func TestWavelengthSetPDFUniform(t *testing.T) {
	set := SampleSet(0.37)
	want := 1 / (LambdaMax - LambdaMin)
	if math.Abs(set.PDF()-want) > 1e-12 {
		t.Errorf("PDF() = %v, want %v", set.PDF(), want)
	}
}

func TestPdfSetMISWeightsBalanceHeuristic(t *testing.T) {
	p := PdfSet{H: 1, A: 1, B: 2, C: 0}
	w := p.MISWeights()
	sum := w.Sum()
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("MIS weights should sum to 1, got %v", sum)
	}
	if w.B != 0.5 {
		t.Errorf("lane B weight = %v, want 0.5", w.B)
	}
}

func TestPdfSetZeroNonHeroDegradesToSWSS(t *testing.T) {
	p := PdfSet{H: 2, A: 3, B: 4, C: 5}.ZeroNonHero()
	w := p.MISWeights()
	if w != (Sample{H: 1}) {
		t.Errorf("expected SWSS degenerate weights (1,0,0,0), got %v", w)
	}
}

func TestConstantSpectrumEvaluate(t *testing.T) {
	c := NewConstant(0.5)
	set := SampleSet(0.2)
	got := c.Evaluate(set)
	want := SplatSample(0.5)
	if got != want {
		t.Errorf("Constant.Evaluate = %v, want %v", got, want)
	}
}

func TestXYZFromWavelengthOutsideDomainIsZero(t *testing.T) {
	if got := XYZFromWavelength(379, 1); got != (XYZ{}) {
		t.Errorf("expected zero XYZ below table domain, got %v", got)
	}
	if got := XYZFromWavelength(800, 1); got != (XYZ{}) {
		t.Errorf("expected zero XYZ at/beyond table domain, got %v", got)
	}
}

func TestXYZFromWavelengthAtTableEdges(t *testing.T) {
	at380 := XYZFromWavelength(380, 1)
	if at380.X <= 0 {
		t.Errorf("expected nonzero x-bar at 380nm, got %v", at380.X)
	}
	// z-bar has decayed to exactly zero by 700nm in the source table.
	at700 := XYZFromWavelength(700, 1)
	if at700.Z != 0 {
		t.Errorf("expected z-bar(700nm) == 0, got %v", at700.Z)
	}
}

func TestUpsampledRoundTripsGrayscale(t *testing.T) {
	table := NewAnalyticTable()
	c0, c1, c2 := table.Coeffs([3]float64{0.5, 0.5, 0.5})
	spec := NewUpsampled(c0, c1, c2)
	v := spec.EvaluateAt(550)
	if v < 0.3 || v > 0.7 {
		t.Errorf("gray 0.5 should reconstruct near 0.5 reflectance at 550nm, got %v", v)
	}
}
