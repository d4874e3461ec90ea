package render

import (
	"runtime"
	"sync"

	"github.com/mrubio/hwsspath/pkg/camera"
	"github.com/mrubio/hwsspath/pkg/color"
	"github.com/mrubio/hwsspath/pkg/integrator"
	"github.com/mrubio/hwsspath/pkg/sampler"
	"github.com/mrubio/hwsspath/pkg/scene"
	"github.com/mrubio/hwsspath/pkg/spectrum"
)

// BatchSize caps how many samples a worker draws per pixel before
// returning a tile to the scheduler — spec.md §4.6's "SPP-batch".
const BatchSize = 4

// RenderBatch draws up to BatchSize further samples for every pixel in
// t, accumulating the result into fb. Per spec.md §2's control flow:
// for each pixel sample the camera generates a ray and the sampler
// draws a hero wavelength set, the integrator returns a 4-lane
// spectral estimate, and the tile converts each lane to XYZ before
// accumulating.
func RenderBatch(t *Tile, cam *camera.Camera, sc *scene.Scene, pt *integrator.PathTracer, fb *Framebuffer) {
	take := min(BatchSize, t.Remaining())
	if take <= 0 {
		return
	}

	w := t.X1 - t.X0
	h := t.Y1 - t.Y0
	sums := make([]spectrum.XYZ, w*h)
	counts := make([]int, w*h)

	for py := t.Y0; py < t.Y1; py++ {
		for px := t.X0; px < t.X1; px++ {
			idx := (py-t.Y0)*w + (px - t.X0)
			for s := 0; s < take; s++ {
				smp := sampler.New(px, py, t.SamplesTaken+s)
				ray := cam.GenerateRay(px, py, smp)
				set := spectrum.SampleSet(smp.NextUniform())
				radiance := pt.Li(ray, sc, set, smp)
				sums[idx] = sums[idx].Add(color.SampleToXYZ(radiance, set))
				counts[idx]++
			}
		}
	}

	fb.Accumulate(t.X0, t.Y0, t.X1, t.Y1, sums, counts)
	t.SamplesTaken += take
}

// Run drives numWorkers goroutines that each repeatedly pop a tile
// from sched, render one SPP batch into it, and push it back if
// samples remain — spec.md §4.6's worker loop, ending when every tile
// has reached its sample target. numWorkers <= 0 defaults to
// runtime.NumCPU(), per spec.md §5's "one [thread] per hardware
// context by default".
func Run(sched *Scheduler, cam *camera.Camera, sc *scene.Scene, pt *integrator.PathTracer, fb *Framebuffer, progress *Progress, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				t, ok := sched.Pop()
				if !ok {
					return
				}
				before := t.SamplesTaken
				RenderBatch(t, cam, sc, pt, fb)
				if progress != nil {
					w := t.X1 - t.X0
					h := t.Y1 - t.Y0
					progress.Add(int64((t.SamplesTaken - before) * w * h))
				}
				if !t.Done() {
					sched.Requeue(t)
				}
			}
		}()
	}
	wg.Wait()
}
