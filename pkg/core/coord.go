// Package core provides the math primitives shared by every other
// package: coordinate-space-tagged vectors, rays, and the sampler
// contract the integrator depends on.
package core

// World tags a Vec3/Point3 as living in world space.
type World struct{}

// Local tags a Vec3/Point3 as living in an object's local space
// (e.g. a triangle's barycentric-adjacent frame before it is placed
// back into world space).
type Local struct{}

// Shading tags a Vec3 as living in the shading frame of a surface
// interaction, where Z is the geometric normal. BSDFs only ever see
// Shading-space directions.
type Shading struct{}
