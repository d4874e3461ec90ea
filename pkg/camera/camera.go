// Package camera implements the pinhole camera spec.md §4.3 assigns a
// 3% budget share: NDC ray generation with per-sample pixel jitter for
// antialiasing. No aperture or focus distance — depth of field is one
// of spec.md §1's explicit Non-goals.
package camera

import (
	"math"

	"github.com/mrubio/hwsspath/pkg/core"
)

// Config describes a look-at pinhole camera, grounded in the
// teacher's CameraConfig (center/lookAt/up/width/aspectRatio/vfov)
// minus the aperture and focus-distance fields depth of field would
// need.
type Config struct {
	Center core.WorldPoint
	LookAt core.WorldPoint
	Up     core.WorldVec

	Width, Height int
	VFovDegrees   float64
}

// Camera holds the precomputed viewport basis a pinhole ray
// generation needs: the teacher's lowerLeftCorner/horizontal/vertical
// construction (pkg/renderer/camera.go), generalized from an
// axis-aligned viewport to an arbitrary look-at orientation the way
// the teacher's CameraConfig-driven camera does (pkg/renderer/camera_test.go).
type Camera struct {
	origin          core.WorldPoint
	lowerLeftCorner core.WorldPoint
	horizontal      core.WorldVec
	vertical        core.WorldVec
	width, height   int
}

func New(cfg Config) *Camera {
	theta := cfg.VFovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	aspect := float64(cfg.Width) / float64(cfg.Height)
	viewportHeight := 2 * halfHeight
	viewportWidth := aspect * viewportHeight

	forward := cfg.LookAt.Diff(cfg.Center).Normalize()
	right := forward.Cross(cfg.Up).Normalize()
	up := right.Cross(forward)

	horizontal := right.Scale(viewportWidth)
	vertical := up.Scale(viewportHeight)
	lowerLeftCorner := cfg.Center.
		Add(forward).
		Sub(horizontal.Scale(0.5)).
		Sub(vertical.Scale(0.5))

	return &Camera{
		origin:          cfg.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		width:           cfg.Width,
		height:          cfg.Height,
	}
}

// GenerateRay returns a ray through pixel (px, py), jittered within
// the pixel by the sampler's next two uniforms — spec.md §4.3's
// "pinhole ray generation from NDC + jitter". Pixel row 0 is the top
// of the image.
func (c *Camera) GenerateRay(px, py int, sampler core.Sampler) core.Ray[core.World] {
	u := (float64(px) + sampler.NextUniform()) / float64(c.width)
	v := 1 - (float64(py)+sampler.NextUniform())/float64(c.height)

	target := c.lowerLeftCorner.
		Add(c.horizontal.Scale(u)).
		Add(c.vertical.Scale(v))
	direction := target.Diff(c.origin).Normalize()
	return core.NewRay(c.origin, direction)
}
