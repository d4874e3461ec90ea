// Package sampler provides a concrete core.Sampler, standing in for
// the low-discrepancy sequence the renderer's specification treats as
// an external collaborator. It seeds one PCG stream per (pixel,
// sample index), giving every pixel's every sample an independent,
// reproducible stream of dimensions.
package sampler

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/mrubio/hwsspath/pkg/core"
)

// Stateful implements core.Sampler over math/rand/v2's PCG source,
// seeded once from (pixel X, pixel Y, sample index) and advanced one
// dimension at a time. Mirrors the teacher's tile-renderer idiom of
// seeding a fresh *rand.Rand per unit of work (pkg/renderer/tile_renderer.go's
// rand.New(rand.NewSource(id+42))) but keyed on pixel identity instead
// of tile identity, since HWSS needs per-pixel reproducibility for
// progressive refinement across passes.
type Stateful struct {
	rng       *rand.Rand
	dimension uint64
}

// New builds a Stateful sampler for one (pixel, sampleIndex) draw,
// seeded from those three integers so the same pixel/sample always
// replays the same path — required for progressive accumulation,
// where a pixel's existing mean must not be disturbed by re-deriving
// past samples differently on a later pass. Successive NextUniform /
// NextIndex calls advance the PCG stream itself rather than reseeding
// per dimension.
func New(px, py, sampleIndex int) *Stateful {
	seed := seedFor(px, py, sampleIndex)
	return &Stateful{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func seedFor(px, py, sampleIndex int) uint64 {
	h := fnv.New64a()
	var buf [24]byte
	putUint64(buf[0:8], uint64(px))
	putUint64(buf[8:16], uint64(py))
	putUint64(buf[16:24], uint64(sampleIndex))
	h.Write(buf[:])
	return h.Sum64()
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func (s *Stateful) NextUniform() float64 {
	s.dimension++
	return s.rng.Float64()
}

func (s *Stateful) NextIndex(n int) int {
	s.dimension++
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}

var _ core.Sampler = (*Stateful)(nil)
