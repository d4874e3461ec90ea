package render

import "testing"

func TestNewTilesCoversFullImage(t *testing.T) {
	tiles := NewTiles(100, 64, 32, 4)

	covered := make([][]bool, 64)
	for i := range covered {
		covered[i] = make([]bool, 100)
	}
	for _, tile := range tiles {
		for y := tile.Y0; y < tile.Y1; y++ {
			for x := tile.X0; x < tile.X1; x++ {
				covered[y][x] = true
			}
		}
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 100; x++ {
			if !covered[y][x] {
				t.Fatalf("pixel (%d,%d) not covered by any tile", x, y)
			}
		}
	}
}

func TestTileRemainingAndDone(t *testing.T) {
	tile := &Tile{SamplesTarget: 8, SamplesTaken: 3}
	if tile.Remaining() != 5 {
		t.Errorf("Remaining() = %d, want 5", tile.Remaining())
	}
	if tile.Done() {
		t.Error("tile with samples remaining reported Done")
	}
	tile.SamplesTaken = 8
	if !tile.Done() {
		t.Error("tile at its sample target should report Done")
	}
}
