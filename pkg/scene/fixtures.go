package scene

import (
	"github.com/mrubio/hwsspath/pkg/bsdf"
	"github.com/mrubio/hwsspath/pkg/core"
	"github.com/mrubio/hwsspath/pkg/shape"
	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// These are the five end-to-end scenarios spec.md §8 describes, wired
// up as concrete scenes rather than left to an external
// scene-construction layer. They exist to give the path tracer's
// invariants something real to render, not as general-purpose scene
// authoring tooling.

// quadFromCorner builds two triangles covering the rectangle spanned
// by u and v from corner, matching the winding the teacher's
// geometry.NewQuad helper produces (so the two halves' shared normal
// comes out front-facing the same way a single quad's would).
func quadFromCorner(corner core.WorldPoint, u, v core.WorldVec) (shape.Triangle, shape.Triangle) {
	p00 := corner
	p10 := corner.Add(u)
	p11 := corner.Add(u).Add(v)
	p01 := corner.Add(v)
	return shape.NewTriangle(p00, p10, p11), shape.NewTriangle(p00, p11, p01)
}

func addQuad(s *Scene, corner core.WorldPoint, u, v core.WorldVec, materialIndex int) {
	t0, t1 := quadFromCorner(corner, u, v)
	s.Primitives = append(s.Primitives,
		NewPrimitive(t0, materialIndex),
		NewPrimitive(t1, materialIndex),
	)
}

func gray(table *spectrum.Table, v float64) spectrum.Spectrum {
	return spectrum.FromRGB(table, v, v, v)
}

// NewFloorScene is spec.md §8 scenario 1: a single uniform gray
// Lambertian floor and no emitters. Every ray either escapes to the
// background or terminates on the floor with no light source to
// connect to, so the rendered image is black everywhere — the
// baseline "no light in, no light out" sanity check.
func NewFloorScene(table *spectrum.Table) *Scene {
	s := &Scene{}
	floor := s.addMaterial(bsdf.NewLambertian(gray(table, 0.5)))
	s.Primitives = append(s.Primitives, NewPrimitive(
		shape.NewSphere(core.NewPoint3[core.World](0, -1001, 0), 1000),
		floor,
	))
	return s
}

// NewSingleEmitterScene is spec.md §8 scenario 2: the floor plus a
// small constant-emission sphere at (0,2,0). A bright, small, isolated
// emitter centered over the image makes the "center brighter than
// corner" and "left-right symmetric" properties easy to check.
func NewSingleEmitterScene(table *spectrum.Table) *Scene {
	s := NewFloorScene(table)

	lightIndex := len(s.Lights)
	matIndex := s.addMaterial(bsdf.NewLambertian(gray(table, 0.8)))
	primIndex := len(s.Primitives)
	s.Primitives = append(s.Primitives, NewLightPrimitive(
		shape.NewSphere(core.NewPoint3[core.World](0, 2, 0), 0.1),
		matIndex,
		lightIndex,
	))
	s.Lights = append(s.Lights, Light{PrimitiveIndex: primIndex, Emission: spectrum.NewConstant(100)})
	return s
}

// NewCornellScene is spec.md §8 scenario 3: a standard Cornell box
// (orange left wall, blue right wall, gray floor/ceiling/back wall)
// with a ceiling-mounted emissive sphere, grounded in the teacher's
// NewCornellScene (cornell.go) but built from triangle-pair quads
// instead of the teacher's dedicated Quad shape, since this renderer's
// shape set is sphere and triangle only.
func NewCornellScene(table *spectrum.Table) *Scene {
	s := &Scene{}

	white := s.addMaterial(bsdf.NewLambertian(gray(table, 0.73)))
	orange := s.addMaterial(bsdf.NewLambertian(spectrum.FromRGB(table, 0.75, 0.35, 0.05)))
	blue := s.addMaterial(bsdf.NewLambertian(spectrum.FromRGB(table, 0.10, 0.25, 0.70)))

	const box = 2.0 // box spans [-1, 1] on x and z, [0, 2] on y

	// floor
	addQuad(s, core.NewPoint3[core.World](-1, 0, -1), core.NewVec3[core.World](box, 0, 0), core.NewVec3[core.World](0, 0, box), white)
	// ceiling
	addQuad(s, core.NewPoint3[core.World](-1, box, -1), core.NewVec3[core.World](box, 0, 0), core.NewVec3[core.World](0, 0, box), white)
	// back wall
	addQuad(s, core.NewPoint3[core.World](-1, 0, 1), core.NewVec3[core.World](box, 0, 0), core.NewVec3[core.World](0, box, 0), white)
	// left wall (orange)
	addQuad(s, core.NewPoint3[core.World](-1, 0, -1), core.NewVec3[core.World](0, 0, box), core.NewVec3[core.World](0, box, 0), orange)
	// right wall (blue)
	addQuad(s, core.NewPoint3[core.World](1, 0, -1), core.NewVec3[core.World](0, box, 0), core.NewVec3[core.World](0, 0, box), blue)

	// center sphere, diffuse light gray, to show color bleeding
	centerMat := s.addMaterial(bsdf.NewLambertian(gray(table, 0.7)))
	s.Primitives = append(s.Primitives, NewPrimitive(
		shape.NewSphere(core.NewPoint3[core.World](0, 0.4, 0.2), 0.4),
		centerMat,
	))

	// ceiling emitter sphere
	emitterMat := s.addMaterial(bsdf.NewLambertian(gray(table, 0.8)))
	lightIndex := len(s.Lights)
	primIndex := len(s.Primitives)
	s.Primitives = append(s.Primitives, NewLightPrimitive(
		shape.NewSphere(core.NewPoint3[core.World](0, 0.85, 1.0), 0.12),
		emitterMat,
		lightIndex,
	))
	s.Lights = append(s.Lights, Light{PrimitiveIndex: primIndex, Emission: spectrum.NewConstant(70)})

	return s
}

// NewDispersionScene is spec.md §8 scenario 4: a gray floor, a small
// pinhole emitter behind a narrow slit wall, and a dielectric
// (IOR 1.55, dispersion 0.1) in the beam's path in front of a back
// wall. Grounded in the teacher's caustic_glass.go (same "small bright
// source through refractive geometry onto a receiving surface" shape),
// minus its PLY mesh loading and BDPT-only light tracing. The glass is
// a single flat triangle added twice with opposite winding; it has no
// thickness, so it is a refracting sheet, not a closed prism.
func NewDispersionScene(table *spectrum.Table) *Scene {
	s := &Scene{}

	floorMat := s.addMaterial(bsdf.NewLambertian(gray(table, 0.6)))
	s.Primitives = append(s.Primitives, NewPrimitive(
		shape.NewSphere(core.NewPoint3[core.World](0, -1001, 0), 1000),
		floorMat,
	))

	backWallMat := s.addMaterial(bsdf.NewLambertian(gray(table, 0.7)))
	addQuad(s, core.NewPoint3[core.World](-3, 0, 5), core.NewVec3[core.World](6, 0, 0), core.NewVec3[core.World](0, 4, 0), backWallMat)

	// slit wall: two tall quads leaving a narrow gap at x in [-0.05, 0.05]
	slitMat := s.addMaterial(bsdf.NewLambertian(gray(table, 0.05)))
	addQuad(s, core.NewPoint3[core.World](-3, 0, 2), core.NewVec3[core.World](2.95, 0, 0), core.NewVec3[core.World](0, 4, 0), slitMat)
	addQuad(s, core.NewPoint3[core.World](0.05, 0, 2), core.NewVec3[core.World](2.95, 0, 0), core.NewVec3[core.World](0, 4, 0), slitMat)

	// flat glass triangle, apex up, added with both windings
	prismMat := s.addMaterial(bsdf.NewDielectric(
		spectrum.NewConstant(1), spectrum.NewConstant(1),
		1.55, 0.1, 589.3,
	))
	apex := core.NewPoint3[core.World](0, 0.6, 0.8)
	baseLeft := core.NewPoint3[core.World](-0.3, 0.2, 1.1)
	baseRight := core.NewPoint3[core.World](0.3, 0.2, 1.1)
	s.Primitives = append(s.Primitives,
		NewPrimitive(shape.NewTriangle(apex, baseLeft, baseRight), prismMat),
		NewPrimitive(shape.NewTriangle(apex, baseRight, baseLeft), prismMat),
	)

	// small pinhole emitter, the beam's source
	emitterMat := s.addMaterial(bsdf.NewLambertian(gray(table, 0.8)))
	lightIndex := len(s.Lights)
	primIndex := len(s.Primitives)
	s.Primitives = append(s.Primitives, NewLightPrimitive(
		shape.NewSphere(core.NewPoint3[core.World](0, 0.6, 0), 0.02),
		emitterMat,
		lightIndex,
	))
	s.Lights = append(s.Lights, Light{PrimitiveIndex: primIndex, Emission: spectrum.NewConstant(400)})

	return s
}

// NewMirrorScene is spec.md §8 scenario 5: NewFloorScene with the
// floor BSDF replaced by a perfect-specular mirror, plus a red
// emissive sphere above it, so the floor's reflection can be checked
// against the mirror's own reflectance within tolerance.
func NewMirrorScene(table *spectrum.Table) *Scene {
	s := &Scene{}

	mirrorMat := s.addMaterial(bsdf.NewSpecular(gray(table, 0.9)))
	s.Primitives = append(s.Primitives, NewPrimitive(
		shape.NewSphere(core.NewPoint3[core.World](0, -1001, 0), 1000),
		mirrorMat,
	))

	emitterMat := s.addMaterial(bsdf.NewLambertian(spectrum.FromRGB(table, 0.9, 0.1, 0.1)))
	lightIndex := len(s.Lights)
	primIndex := len(s.Primitives)
	s.Primitives = append(s.Primitives, NewLightPrimitive(
		shape.NewSphere(core.NewPoint3[core.World](0, 2, 0), 0.3),
		emitterMat,
		lightIndex,
	))
	s.Lights = append(s.Lights, Light{PrimitiveIndex: primIndex, Emission: spectrum.FromRGB(table, 5, 0.5, 0.5)})

	return s
}

// addMaterial appends a material and returns its index, the one bit
// of bookkeeping every fixture above repeats.
func (s *Scene) addMaterial(m bsdf.BSDF) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}
