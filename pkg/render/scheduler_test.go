package render

import "testing"

func TestSchedulerPopsMostRemainingFirst(t *testing.T) {
	a := &Tile{SamplesTarget: 10, SamplesTaken: 8} // 2 remaining
	b := &Tile{SamplesTarget: 10, SamplesTaken: 0} // 10 remaining
	c := &Tile{SamplesTarget: 10, SamplesTaken: 5} // 5 remaining

	sched := NewScheduler([]*Tile{a, b, c})

	first, ok := sched.Pop()
	if !ok || first != b {
		t.Fatalf("expected tile b (most remaining) to pop first, got %+v", first)
	}
	second, ok := sched.Pop()
	if !ok || second != c {
		t.Fatalf("expected tile c to pop second, got %+v", second)
	}
	third, ok := sched.Pop()
	if !ok || third != a {
		t.Fatalf("expected tile a to pop third, got %+v", third)
	}
	if _, ok := sched.Pop(); ok {
		t.Error("expected empty scheduler after popping every tile")
	}
}

func TestSchedulerTiebreaksOnCenterDistance(t *testing.T) {
	near := &Tile{SamplesTarget: 10, centerDist: 1}
	far := &Tile{SamplesTarget: 10, centerDist: 100}

	sched := NewScheduler([]*Tile{far, near})
	first, _ := sched.Pop()
	if first != near {
		t.Errorf("expected the image-center-nearer tile to pop first on a tie")
	}
}

func TestSchedulerRequeueMakesTileAvailableAgain(t *testing.T) {
	tile := &Tile{SamplesTarget: 10, SamplesTaken: 10}
	sched := NewScheduler(nil)
	sched.Requeue(tile)

	got, ok := sched.Pop()
	if !ok || got != tile {
		t.Fatalf("requeued tile should be poppable, got %+v ok=%v", got, ok)
	}
}
