package render

import (
	"testing"

	"github.com/mrubio/hwsspath/pkg/spectrum"
)

func TestFramebufferAccumulateAndMeans(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	batchSum := []spectrum.XYZ{{X: 1, Y: 2, Z: 3}, {X: 3, Y: 4, Z: 5}}
	batchCount := []int{1, 1}
	fb.Accumulate(1, 1, 3, 2, batchSum, batchCount) // a 2x1 strip at (1,1),(2,1)

	means := fb.Means()
	idx := 1*fb.Width() + 1
	if means[idx].X != 1 || means[idx].Y != 2 || means[idx].Z != 3 {
		t.Errorf("mean at (1,1) = %+v, want {1 2 3}", means[idx])
	}
	idx2 := 1*fb.Width() + 2
	if means[idx2].X != 3 {
		t.Errorf("mean at (2,1) = %+v, want X=3", means[idx2])
	}
}

func TestFramebufferAccumulateIsARunningMean(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	fb.Accumulate(0, 0, 1, 1, []spectrum.XYZ{{X: 2}}, []int{1})
	fb.Accumulate(0, 0, 1, 1, []spectrum.XYZ{{X: 6}}, []int{1})

	means := fb.Means()
	if means[0].X != 4 {
		t.Errorf("running mean of 2 and 6 = %v, want 4", means[0].X)
	}
}

func TestFramebufferUnwrittenPixelIsZero(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	means := fb.Means()
	for i, m := range means {
		if m.X != 0 || m.Y != 0 || m.Z != 0 {
			t.Errorf("pixel %d never accumulated should be zero, got %+v", i, m)
		}
	}
}
