package shape

import (
	"math"

	"github.com/mrubio/hwsspath/pkg/core"
)

// Sphere is an analytic sphere: ray intersection by the quadratic
// formula, light sampling by the cone-of-directions construction
// (uniform over the solid angle the sphere subtends from the shading
// point), with the PDF reported in solid-angle measure.
type Sphere struct {
	Center core.WorldPoint
	Radius float64
}

func NewSphere(center core.WorldPoint, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

func (s Sphere) Intersect(ray core.Ray[core.World], tMin, tMax float64) (Hit, bool) {
	oc := ray.O.Diff(s.Center)
	a := ray.D.Dot(ray.D)
	halfB := oc.Dot(ray.D)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	lo := math.Max(tMin, core.RayEpsilon)
	root := (-halfB - sqrtD) / a
	if root < lo || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < lo || root > tMax {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	outward := point.Diff(s.Center).Scale(1 / s.Radius)
	backFace := ray.D.Dot(outward) > 0
	normal := outward
	if backFace {
		normal = outward.Negate()
	}

	frame := core.NewFrame(normal, core.NewVec3[core.World](0, 1, 0))
	return Hit{T: root, Point: point, Frame: frame, BackFace: backFace}, true
}

func (s Sphere) Sample(from core.WorldPoint, sampler core.Sampler) (LightSample, bool) {
	toCenter := s.Center.Diff(from)
	distance := toCenter.Length()
	if distance <= s.Radius {
		return s.sampleUniform(sampler)
	}

	w := toCenter.Normalize()
	frame := core.NewFrame(w, core.NewVec3[core.World](0, 1, 0))

	sinThetaMax := s.Radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMax*sinThetaMax))

	u1 := sampler.NextUniform()
	u2 := sampler.NextUniform()
	cosTheta := 1 - u1*(1-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u2

	local := core.NewVec3[core.Shading](sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	dir := frame.ToWorld(local).Normalize()

	ray := core.NewRay(from, dir)
	hit, ok := s.Intersect(ray, core.RayEpsilon, math.Inf(1))
	if !ok {
		return s.sampleUniform(sampler)
	}

	pdf := 1 / (2 * math.Pi * (1 - cosThetaMax))
	return LightSample{Point: hit.Point, Normal: hit.Frame.Normal, PDF: pdf}, true
}

func (s Sphere) sampleUniform(sampler core.Sampler) (LightSample, bool) {
	u1 := sampler.NextUniform()
	u2 := sampler.NextUniform()
	z := 1 - 2*u1
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u2
	local := core.NewVec3[core.World](r*math.Cos(phi), r*math.Sin(phi), z)
	point := s.Center.Add(local.Scale(s.Radius))
	pdf := 1 / (4 * math.Pi * s.Radius * s.Radius)
	return LightSample{Point: point, Normal: local, PDF: pdf}, true
}

func (s Sphere) PDF(from core.WorldPoint, wi core.WorldVec) float64 {
	ray := core.NewRay(from, wi.Normalize())
	if _, ok := s.Intersect(ray, core.RayEpsilon, math.Inf(1)); !ok {
		return 0
	}

	toCenter := s.Center.Diff(from)
	distance := toCenter.Length()
	if distance <= s.Radius {
		return 1 / (4 * math.Pi * s.Radius * s.Radius)
	}

	sinThetaMax := s.Radius / distance
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMax*sinThetaMax))
	return 1 / (2 * math.Pi * (1 - cosThetaMax))
}

var _ Shape = Sphere{}
