// Package scene owns the primitive/material/light arena and answers
// the closest-hit, shadow, and light-picking queries the integrator
// needs. It is built once and shared read-only across every worker
// goroutine.
package scene

import (
	"math"

	"github.com/mrubio/hwsspath/pkg/bsdf"
	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/shape"
	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// noIndex marks a Primitive field as unset — no material, or no
// associated light.
const noIndex = -1

// Primitive is a shape plus indices into the scene's materials and
// lights arrays, per spec.md §3/§9's arena-plus-index pattern: exactly
// one of {pure emitter, material only, material+emitter} holds, and
// the primitive never holds a pointer to either array directly so the
// whole scene stays a flat, cache-friendly, cycle-free data block.
type Primitive struct {
	Shape         shape.Shape
	MaterialIndex int // noIndex if this primitive has no BSDF
	LightIndex    int // noIndex if this primitive is not emissive
}

func NewPrimitive(s shape.Shape, materialIndex int) Primitive {
	return Primitive{Shape: s, MaterialIndex: materialIndex, LightIndex: noIndex}
}

func NewLightPrimitive(s shape.Shape, materialIndex, lightIndex int) Primitive {
	return Primitive{Shape: s, MaterialIndex: materialIndex, LightIndex: lightIndex}
}

func (p Primitive) IsEmissive() bool { return p.LightIndex != noIndex }
func (p Primitive) HasMaterial() bool { return p.MaterialIndex != noIndex }

// Light is an emitter: the index of the primitive it lives on (so its
// shape can be sampled) and its emission spectrum.
type Light struct {
	PrimitiveIndex int
	Emission       spectrum.Spectrum
}

// Scene owns primitives, materials, and lights. Immutable after
// construction; every field is read-only from the perspective of a
// render worker.
type Scene struct {
	Primitives []Primitive
	Materials  []bsdf.BSDF
	Lights     []Light
}

// Intersection is the scene-level hit record: the geometric Hit plus
// which primitive it belongs to, so the integrator can look up its
// material and light index.
type Intersection struct {
	shape.Hit
	PrimitiveIndex int
}

func (s *Scene) Material(idx int) bsdf.BSDF {
	return s.Materials[idx]
}

func (s *Scene) Primitive(idx int) Primitive {
	return s.Primitives[idx]
}

// Intersect scans all primitives linearly, keeping the closest t with
// t > epsilon, per spec.md §4.4.
func (s *Scene) Intersect(ray core.Ray[core.World], tMin, tMax float64) (Intersection, bool) {
	closestT := tMax
	var best Intersection
	found := false

	for i, prim := range s.Primitives {
		hit, ok := prim.Shape.Intersect(ray, tMin, closestT)
		if !ok {
			continue
		}
		closestT = hit.T
		best = Intersection{Hit: hit, PrimitiveIndex: i}
		found = true
	}
	return best, found
}

// RayHitsPoint is the shadow-ray visibility test: true iff the
// nearest intersection along ray is at or beyond the distance to p,
// within RayEpsilon slack, per spec.md §4.4.
func (s *Scene) RayHitsPoint(ray core.Ray[core.World], p core.WorldPoint) bool {
	targetDist := ray.O.Distance(p) / ray.D.Length()
	hit, ok := s.Intersect(ray, core.RayEpsilon, math.Inf(1))
	if !ok {
		return false
	}
	return hit.T >= targetDist-core.RayEpsilon
}

// PickOneLight uniformly selects one of the scene's lights and
// returns the reciprocal of its selection probability N, such that
// multiplying a contribution computed with this light by N gives an
// unbiased estimator over the whole light set, per spec.md §4.4.
func (s *Scene) PickOneLight(sampler core.Sampler) (Light, float64, bool) {
	if len(s.Lights) == 0 {
		return Light{}, 0, false
	}
	idx := sampler.NextIndex(len(s.Lights))
	return s.Lights[idx], float64(len(s.Lights)), true
}

// SampleLight draws a point on light's shape as seen from `from`,
// returning the shape-level LightSample (point, normal, solid-angle
// PDF).
func (s *Scene) SampleLight(light Light, from core.WorldPoint, sampler core.Sampler) (shape.LightSample, bool) {
	prim := s.Primitives[light.PrimitiveIndex]
	return prim.Shape.Sample(from, sampler)
}
