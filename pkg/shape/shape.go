// Package shape implements the two geometric primitives the scene
// cross-references by index: analytic spheres and flat triangles.
// Both sides of the Shape contract — intersection and light-sampling
// — are geometry concerns only; materials and emission are attached
// by the scene, one layer up.
package shape

import "github.com/mrubio/hwsspath/pkg/core"

// Hit is what Intersect returns: enough to build a shading frame and
// continue the path, but nothing about what material or light owns
// the primitive — that cross-reference lives in the scene.
type Hit struct {
	T        float64
	Point    core.WorldPoint
	Frame    core.Frame // Normal is geometric (front-facing, same side as BackFace says)
	BackFace bool
}

// LightSample is a point drawn on a shape's surface for next-event
// estimation, along with the solid-angle PDF of having drawn it as
// seen from the point Sample was called with.
type LightSample struct {
	Point  core.WorldPoint
	Normal core.WorldVec
	PDF    float64 // solid angle measure, 0 if the sample is invalid
}

// Shape is the geometric contract every primitive implements:
// ray intersection, and solid-angle sampling/density for use as a
// next-event-estimation target.
type Shape interface {
	// Intersect finds the closest hit along ray in (tMin, tMax).
	Intersect(ray core.Ray[core.World], tMin, tMax float64) (Hit, bool)

	// Sample draws a point on the shape's surface as seen from a
	// shading point `from`, returning a solid-angle PDF.
	Sample(from core.WorldPoint, sampler core.Sampler) (LightSample, bool)

	// PDF returns the solid-angle density of Sample having produced a
	// sample in direction wi from point `from`, or 0 if wi misses the
	// shape entirely.
	PDF(from core.WorldPoint, wi core.WorldVec) float64
}
