package camera

import (
	"math"
	"testing"

	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/sampler"
)

func straightCamera() *Camera {
	return New(Config{
		Center:      core.NewPoint3[core.World](0, 0, 0),
		LookAt:      core.NewPoint3[core.World](0, 0, -1),
		Up:          core.NewVec3[core.World](0, 1, 0),
		Width:       400,
		Height:      400,
		VFovDegrees: 45,
	})
}

func TestGenerateRayCenterPixelPointsForward(t *testing.T) {
	c := straightCamera()
	smp := centeredSampler{}
	ray := c.GenerateRay(200, 200, smp)

	forward := core.NewVec3[core.World](0, 0, -1)
	if dot := ray.D.Dot(forward); dot < 0.999 {
		t.Errorf("center-pixel ray direction dot forward = %v, want close to 1", dot)
	}
}

func TestGenerateRayIsNormalized(t *testing.T) {
	c := straightCamera()
	smp := sampler.New(7, 7, 0)
	ray := c.GenerateRay(10, 300, smp)
	if l := ray.D.Length(); math.Abs(l-1) > 1e-9 {
		t.Errorf("ray direction length = %v, want 1", l)
	}
}

func TestGenerateRayJitterStaysWithinPixel(t *testing.T) {
	c := straightCamera()
	a := c.GenerateRay(100, 100, fixedSampler{u: 0})
	b := c.GenerateRay(100, 100, fixedSampler{u: 0.999})
	if a.D == b.D {
		t.Error("jitter at opposite corners of the same pixel should produce different directions")
	}
}

// centeredSampler always returns 0.5, placing the sample at the pixel
// center.
type centeredSampler struct{}

func (centeredSampler) NextUniform() float64  { return 0.5 }
func (centeredSampler) NextIndex(n int) int   { return 0 }

// fixedSampler always returns a fixed jitter value u.
type fixedSampler struct{ u float64 }

func (f fixedSampler) NextUniform() float64 { return f.u }
func (f fixedSampler) NextIndex(n int) int  { return 0 }
