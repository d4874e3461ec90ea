package render

import (
	"sync"

	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// Framebuffer is the pixel accumulator spec.md §3 specifies: a width x
// height grid of running-mean XYZ triples, updated under a write lock
// for the duration of one tile's flush, readable under a reader lock
// for display or output at any time. Generalizes the teacher's
// PixelStats (RGB ColorAccum) to XYZ, since this renderer's integrator
// produces spectral radiance rather than RGB.
type Framebuffer struct {
	mu            sync.RWMutex
	width, height int
	sum           []spectrum.XYZ
	count         []int
}

// NewFramebuffer allocates a zeroed width x height accumulator.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		sum:    make([]spectrum.XYZ, width*height),
		count:  make([]int, width*height),
	}
}

// Accumulate adds one batch's per-pixel XYZ sums and sample counts for
// every pixel in [x0,x1)x[y0,y1), under the write lock. batchSum and
// batchCount are laid out row-major over the tile's own bounds, not
// the full image.
func (f *Framebuffer) Accumulate(x0, y0, x1, y1 int, batchSum []spectrum.XYZ, batchCount []int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w := x1 - x0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			idx := y*f.width + x
			bidx := (y-y0)*w + (x - x0)
			f.sum[idx] = f.sum[idx].Add(batchSum[bidx])
			f.count[idx] += batchCount[bidx]
		}
	}
}

// Means returns the current running-mean XYZ for every pixel. Reader
// lock only, safe to call concurrently with in-progress rendering for
// a progressive flush.
func (f *Framebuffer) Means() []spectrum.XYZ {
	f.mu.RLock()
	defer f.mu.RUnlock()
	means := make([]spectrum.XYZ, len(f.sum))
	for i, s := range f.sum {
		if f.count[i] == 0 {
			continue
		}
		means[i] = s.Scale(1 / float64(f.count[i]))
	}
	return means
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }
