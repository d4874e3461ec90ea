package color

import (
	"math"
	"testing"

	"github.com/mrubio/hwsspath/pkg/spectrum"
)

func TestSampleToXYZZeroRadianceIsZero(t *testing.T) {
	set := spectrum.SampleSet(0.5)
	xyz := SampleToXYZ(spectrum.Sample{}, set)
	if xyz.X != 0 || xyz.Y != 0 || xyz.Z != 0 {
		t.Errorf("zero radiance should give zero XYZ, got %+v", xyz)
	}
}

func TestSampleToXYZSWSSUsesOnlyHeroLane(t *testing.T) {
	set := spectrum.SampleSet(0.3)
	// After HWSS is disabled only the hero lane carries radiance; the
	// other three are exactly zero, per the integrator's contract.
	radiance := spectrum.Sample{H: 10}
	xyz := SampleToXYZ(radiance, set)

	heroOnly := spectrum.XYZFromWavelength(set.Lambda[0], 10).Scale(1 / set.PDF())
	if math.Abs(xyz.X-heroOnly.X) > 1e-9 || math.Abs(xyz.Y-heroOnly.Y) > 1e-9 {
		t.Errorf("SWSS XYZ = %+v, want %+v", xyz, heroOnly)
	}
}

// TestSampleToXYZHWSSAndSWSSAgreeOnMagnitude guards against a lane-count
// scaling regression: a fully-converged HWSS estimate (MIS weights
// summing to 1 across all four lanes) and the matching hero-only SWSS
// estimate of the same radiance must land on the same order of
// magnitude, not differ by the lane count.
func TestSampleToXYZHWSSAndSWSSAgreeOnMagnitude(t *testing.T) {
	set := spectrum.SampleSet(0.7)

	// Four lanes, each carrying 1/4 of a MIS-weighted total radiance of 10.
	hwss := SampleToXYZ(spectrum.Sample{H: 2.5, A: 2.5, B: 2.5, C: 2.5}, set)
	// The hero-only equivalent of the same total radiance.
	swss := SampleToXYZ(spectrum.Sample{H: 10}, set)

	if hwss.Y <= 0 || swss.Y <= 0 {
		t.Fatalf("expected positive Y for both estimators, got hwss=%v swss=%v", hwss.Y, swss.Y)
	}
	ratio := hwss.Y / swss.Y
	if ratio < 0.05 || ratio > 20 {
		t.Errorf("HWSS and SWSS estimates of the same total radiance differ by %vx, want same order of magnitude (no stray /lane-count factor)", ratio)
	}
}

func TestSampleToXYZScalesWithRadiance(t *testing.T) {
	set := spectrum.SampleSet(0.1)
	single := SampleToXYZ(spectrum.Sample{H: 1, A: 1, B: 1, C: 1}, set)
	doubled := SampleToXYZ(spectrum.Sample{H: 2, A: 2, B: 2, C: 2}, set)
	if math.Abs(doubled.Y-2*single.Y) > 1e-9 {
		t.Errorf("doubling radiance should double Y: single=%v doubled=%v", single.Y, doubled.Y)
	}
}
