package shape

import (
	"math"

	"github.com/mrubio/hwsspath/pkg/core"
)

// minSolidAnglePDF floors a triangle light's solid-angle PDF so a
// sample very close to the shading point (PDF approaching zero as the
// squared distance shrinks) cannot blow up a NEE contribution's 1/pdf
// term into a firefly.
const minSolidAnglePDF = 1e-3

// Triangle is a flat triangle with vertices in world space. Its
// geometric normal and area are derived from the edge vectors; the
// shading frame is built from the normal and the first edge by
// Gram-Schmidt, which suffices since none of this renderer's BSDFs are
// anisotropic.
type Triangle struct {
	V0, V1, V2 core.WorldPoint
	normal     core.WorldVec
	area       float64
}

func NewTriangle(v0, v1, v2 core.WorldPoint) Triangle {
	edge1 := v1.Diff(v0)
	edge2 := v2.Diff(v0)
	cross := edge1.Cross(edge2)
	return Triangle{
		V0: v0, V1: v1, V2: v2,
		normal: cross.Normalize(),
		area:   0.5 * cross.Length(),
	}
}

func (tr Triangle) Intersect(ray core.Ray[core.World], tMin, tMax float64) (Hit, bool) {
	const epsilon = 1e-8
	edge1 := tr.V1.Diff(tr.V0)
	edge2 := tr.V2.Diff(tr.V0)

	h := ray.D.Cross(edge2)
	det := edge1.Dot(h)
	if det > -epsilon && det < epsilon {
		return Hit{}, false // ray parallel to the triangle's plane
	}
	invDet := 1 / det

	s := ray.O.Diff(tr.V0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	q := s.Cross(edge1)
	v := invDet * ray.D.Dot(q)
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	t := invDet * edge2.Dot(q)
	lo := math.Max(tMin, core.RayEpsilon)
	if t < lo || t > tMax {
		return Hit{}, false
	}

	point := ray.At(t)
	backFace := ray.D.Dot(tr.normal) > 0
	normal := tr.normal
	if backFace {
		normal = normal.Negate()
	}

	frame := core.NewFrame(normal, edge1)
	return Hit{T: t, Point: point, Frame: frame, BackFace: backFace}, true
}

// Sample draws a uniform point on the triangle via the square-root
// warp of two uniforms (Shirley & Chiu): b0 = 1-sqrt(u1), b1 =
// u2*sqrt(u1), b2 = 1-b0-b1, point = b0*V0 + b1*V1 + b2*V2. The
// returned PDF is in solid-angle measure, floored at
// minSolidAnglePDF.
func (tr Triangle) Sample(from core.WorldPoint, sampler core.Sampler) (LightSample, bool) {
	u1 := sampler.NextUniform()
	u2 := sampler.NextUniform()

	su0 := math.Sqrt(u1)
	b0 := 1 - su0
	b1 := u2 * su0
	b2 := 1 - b0 - b1

	point := core.NewPoint3[core.World](
		b0*tr.V0.X+b1*tr.V1.X+b2*tr.V2.X,
		b0*tr.V0.Y+b1*tr.V1.Y+b2*tr.V2.Y,
		b0*tr.V0.Z+b1*tr.V1.Z+b2*tr.V2.Z,
	)

	toLight := point.Diff(from)
	distSq := toLight.LengthSquared()
	if distSq < 1e-10 {
		return LightSample{}, false
	}
	dist := math.Sqrt(distSq)
	dir := toLight.Scale(1 / dist)

	cosThetaLight := tr.normal.AbsDot(dir)
	if cosThetaLight < 1e-8 || tr.area == 0 {
		return LightSample{}, false
	}

	pdf := distSq / (cosThetaLight * tr.area)
	if pdf < minSolidAnglePDF {
		pdf = minSolidAnglePDF
	}

	// Face the returned normal toward from, the same way Intersect
	// face-forwards its hit normal toward the incoming ray: a triangle
	// light is two-sided (PDF already treats it that way via AbsDot
	// above), so the sampled normal must agree with whichever side is
	// doing the sampling.
	normal := tr.normal
	if normal.Dot(dir) > 0 {
		normal = normal.Negate()
	}

	return LightSample{Point: point, Normal: normal, PDF: pdf}, true
}

func (tr Triangle) PDF(from core.WorldPoint, wi core.WorldVec) float64 {
	ray := core.NewRay(from, wi.Normalize())
	hit, ok := tr.Intersect(ray, core.RayEpsilon, math.Inf(1))
	if !ok {
		return 0
	}

	distSq := hit.Point.DistanceSquared(from)
	cosThetaLight := tr.normal.AbsDot(wi.Normalize())
	if cosThetaLight < 1e-8 || tr.area == 0 {
		return 0
	}

	pdf := distSq / (cosThetaLight * tr.area)
	if pdf < minSolidAnglePDF {
		pdf = minSolidAnglePDF
	}
	return pdf
}

var _ Shape = Triangle{}
