package shape

import (
	"math"
	"testing"

	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/sampler"
)

func TestSphereIntersectHitsCenter(t *testing.T) {
	s := NewSphere(core.NewPoint3[core.World](0, 0, 5), 1)
	ray := core.NewRay(core.NewPoint3[core.World](0, 0, 0), core.NewVec3[core.World](0, 0, 1))
	hit, ok := s.Intersect(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("T = %v, want 4", hit.T)
	}
}

func TestSphereTangentRayMisses(t *testing.T) {
	s := NewSphere(core.NewPoint3[core.World](0, 0, 5), 1)
	ray := core.NewRay(core.NewPoint3[core.World](0, 1, 0), core.NewVec3[core.World](0, 0, 1))
	if _, ok := s.Intersect(ray, 0, math.Inf(1)); ok {
		t.Error("expected tangent ray (discriminant ~0) to miss")
	}
}

func TestSphereSamplePDFConsistency(t *testing.T) {
	s := NewSphere(core.NewPoint3[core.World](0, 0, 5), 1)
	from := core.NewPoint3[core.World](0, 0, 0)
	smp := sampler.New(3, 3, 0)

	ls, ok := s.Sample(from, smp)
	if !ok {
		t.Fatal("expected a valid sample")
	}
	dir := ls.Point.Diff(from)
	pdf := s.PDF(from, dir)
	if math.Abs(pdf-ls.PDF) > 1e-4 {
		t.Errorf("PDF(sampled direction) = %v, want %v", pdf, ls.PDF)
	}
}

func TestTriangleParallelRayMisses(t *testing.T) {
	tri := NewTriangle(
		core.NewPoint3[core.World](-1, -1, 5),
		core.NewPoint3[core.World](1, -1, 5),
		core.NewPoint3[core.World](0, 1, 5),
	)
	ray := core.NewRay(core.NewPoint3[core.World](0, 0, 0), core.NewVec3[core.World](1, 0, 0))
	if _, ok := tri.Intersect(ray, 0, math.Inf(1)); ok {
		t.Error("expected a ray parallel to the triangle's plane to miss")
	}
}

func TestTriangleIntersectInsideBounds(t *testing.T) {
	tri := NewTriangle(
		core.NewPoint3[core.World](-1, -1, 5),
		core.NewPoint3[core.World](1, -1, 5),
		core.NewPoint3[core.World](0, 1, 5),
	)
	ray := core.NewRay(core.NewPoint3[core.World](0, -0.3, 0), core.NewVec3[core.World](0, 0, 1))
	hit, ok := tri.Intersect(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected hit inside triangle bounds")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("T = %v, want 5", hit.T)
	}
}

func TestTriangleSamplePDFFloored(t *testing.T) {
	tri := NewTriangle(
		core.NewPoint3[core.World](-1, -1, 5),
		core.NewPoint3[core.World](1, -1, 5),
		core.NewPoint3[core.World](0, 1, 5),
	)
	from := core.NewPoint3[core.World](0, 0, 1000) // far away, facing the triangle head-on
	smp := sampler.New(1, 1, 0)
	ls, ok := tri.Sample(from, smp)
	if ok && ls.PDF < minSolidAnglePDF-1e-12 {
		t.Errorf("PDF %v should never go below the firefly floor %v", ls.PDF, minSolidAnglePDF)
	}
}
