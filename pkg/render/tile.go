// Package render implements the tile-based parallel scheduler and
// progressive pixel accumulator: a priority queue of image tiles, a
// fixed worker pool, and a running-mean XYZ framebuffer. Grounded in
// the teacher's pkg/renderer (Tile, WorkerPool, PixelStats), reworked
// from a pass-barrier design (every tile advances together, one pass
// at a time) into spec.md §4.6's per-tile requeue design (a tile goes
// straight back into the heap the moment it finishes a batch, so
// fast-converging tiles don't wait on slow ones).
package render

// Tile is a rectangular pixel window plus how many samples it still
// needs — the scheduler's unit of work, per spec.md §3's Tile record.
type Tile struct {
	X0, Y0, X1, Y1 int
	SamplesTaken   int
	SamplesTarget  int

	centerDist float64 // squared distance to image center, the heap tiebreak
	heapIndex  int
}

// Remaining is the tile's scheduling priority: tiles with more
// remaining samples are least converged and pop first.
func (t *Tile) Remaining() int { return t.SamplesTarget - t.SamplesTaken }

// Done reports whether the tile has reached its sample target.
func (t *Tile) Done() bool { return t.Remaining() <= 0 }

// NewTiles partitions a width x height image into fixed tileSize
// windows (the last row/column may be smaller), each targeting
// samplesTarget samples per pixel and carrying its squared distance to
// the image center for the scheduler's tiebreak.
func NewTiles(width, height, tileSize, samplesTarget int) []*Tile {
	cx, cy := float64(width)/2, float64(height)/2
	var tiles []*Tile
	for y0 := 0; y0 < height; y0 += tileSize {
		for x0 := 0; x0 < width; x0 += tileSize {
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)
			mx, my := float64(x0+x1)/2, float64(y0+y1)/2
			dx, dy := mx-cx, my-cy
			tiles = append(tiles, &Tile{
				X0: x0, Y0: y0, X1: x1, Y1: y1,
				SamplesTarget: samplesTarget,
				centerDist:    dx*dx + dy*dy,
			})
		}
	}
	return tiles
}
