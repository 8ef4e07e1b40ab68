package snake

import (
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func newTestEngine(cols, rows, length int, rng core.Rand) *Engine {
	if rng == nil {
		rng = core.NewRand(1)
	}
	return NewEngine(Options{Cols: cols, Rows: rows, InitialLength: length}, rng)
}

func TestWrapAround(t *testing.T) {
	tests := []struct {
		name     string
		head     Point
		dir      Direction
		expected Point
	}{
		{"right edge wraps to left", Point{X: 9, Y: 3}, DirRight, Point{X: 0, Y: 3}},
		{"left edge wraps to right", Point{X: 0, Y: 3}, DirLeft, Point{X: 9, Y: 3}},
		{"bottom edge wraps to top", Point{X: 4, Y: 7}, DirDown, Point{X: 4, Y: 0}},
		{"top edge wraps to bottom", Point{X: 4, Y: 0}, DirUp, Point{X: 4, Y: 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(10, 8, 1, nil)
			e.body = []Point{tc.head}
			e.dir = tc.dir
			e.hasFood = false // Avoid accidental growth

			e.Step()

			snap := e.Snapshot()
			if snap.Head() != tc.expected {
				t.Errorf("head = %v, expected %v", snap.Head(), tc.expected)
			}
			if snap.GameOver {
				t.Error("wrapping off an edge must not end the game")
			}
		})
	}
}

func TestWrapAllGridSizes(t *testing.T) {
	// Edge moves on several grid sizes always land on the opposite edge.
	sizes := []struct{ cols, rows int }{{4, 4}, {5, 9}, {32, 20}}
	for _, sz := range sizes {
		e := newTestEngine(sz.cols, sz.rows, 1, nil)
		e.body = []Point{{X: sz.cols - 1, Y: 0}}
		e.dir = DirRight
		e.hasFood = false

		e.Step()

		if got := e.Snapshot().Head(); got.X != 0 || got.Y != 0 {
			t.Errorf("grid %dx%d: head = %v, expected (0,0)", sz.cols, sz.rows, got)
		}
	}
}

func TestSelfCollision(t *testing.T) {
	e := newTestEngine(10, 10, 1, nil)

	// A hook shape: moving right puts the head onto an occupied cell.
	e.body = []Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	e.dir = DirRight
	e.hasFood = false
	lenBefore := len(e.body)
	headBefore := e.body[0]

	e.Step()

	snap := e.Snapshot()
	if !snap.GameOver {
		t.Fatal("expected game over on self collision")
	}
	if len(snap.Body) != lenBefore {
		t.Errorf("body length changed on fatal move: %d -> %d", lenBefore, len(snap.Body))
	}
	if snap.Head() != headBefore {
		t.Errorf("head moved on fatal move: %v -> %v", headBefore, snap.Head())
	}
}

func TestTailIsStillACollision(t *testing.T) {
	// The departing tail counts as a body segment for the collision test:
	// a head chasing the tail in a tight loop dies.
	e := newTestEngine(10, 10, 1, nil)
	e.body = []Point{
		{X: 5, Y: 5}, // Head
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6}, // Tail, directly below the head
	}
	e.dir = DirDown
	e.hasFood = false

	e.Step()

	if !e.Snapshot().GameOver {
		t.Error("moving onto the pre-move tail cell should end the game")
	}
}

func TestStepAfterGameOverIsNoOp(t *testing.T) {
	e := newTestEngine(10, 10, 1, nil)
	e.gameOver = true
	before := e.Snapshot()

	e.Step()
	e.Step()

	after := e.Snapshot()
	if after.Ticks != before.Ticks {
		t.Errorf("ticks advanced after game over: %d -> %d", before.Ticks, after.Ticks)
	}
	if after.Head() != before.Head() || len(after.Body) != len(before.Body) {
		t.Error("body mutated after game over")
	}
}

func TestGrowth(t *testing.T) {
	e := newTestEngine(10, 10, 3, nil)
	snap := e.Snapshot()
	lenBefore := len(snap.Body)

	// Place food directly in front of the head.
	head := snap.Head()
	v := snap.Dir.Vector()
	e.food = e.wrap(Point{X: head.X + v.X, Y: head.Y + v.Y})
	e.hasFood = true

	e.Step()

	snap = e.Snapshot()
	if len(snap.Body) != lenBefore+1 {
		t.Errorf("length = %d, expected %d", len(snap.Body), lenBefore+1)
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	if snap.HasFood {
		for _, seg := range snap.Body {
			if seg == snap.Food {
				t.Errorf("new food at %v overlaps the snake", snap.Food)
			}
		}
	}
}

func TestNoGrowthWithoutFood(t *testing.T) {
	e := newTestEngine(10, 10, 3, nil)
	e.hasFood = false
	lenBefore := len(e.body)

	e.Step()

	if len(e.body) != lenBefore {
		t.Errorf("length changed without food: %d -> %d", lenBefore, len(e.body))
	}
}

func TestReversalRejected(t *testing.T) {
	e := newTestEngine(10, 10, 3, nil)
	if e.dir != DirRight {
		t.Fatalf("expected initial direction right, got %v", e.dir)
	}

	e.ChangeDirection(DirLeft)
	if e.hasPending {
		t.Error("exact reversal should not be buffered")
	}

	e.ChangeDirection(DirDown)
	if !e.hasPending || e.pending != DirDown {
		t.Errorf("valid turn not buffered: pending=%v has=%v", e.pending, e.hasPending)
	}
}

func TestReversalRejectedAtApplyTime(t *testing.T) {
	// Buffer a valid turn, then overwrite the buffer with what becomes a
	// reversal; the stale buffer must not be applied.
	e := newTestEngine(12, 12, 3, nil)
	e.hasFood = false

	e.ChangeDirection(DirDown)
	e.Step()
	if e.dir != DirDown {
		t.Fatalf("dir = %v, expected down", e.dir)
	}

	// Up is now the exact reverse.
	e.ChangeDirection(DirUp)
	e.Step()
	if e.dir != DirDown {
		t.Errorf("reversal applied: dir = %v", e.dir)
	}
}

func TestUnrecognizedDirectionIgnored(t *testing.T) {
	e := newTestEngine(10, 10, 3, nil)
	e.ChangeDirection(Direction(42))
	if e.hasPending {
		t.Error("unrecognized direction should be ignored")
	}
}

func TestFoodPlacementDeterministic(t *testing.T) {
	// A scripted random source lands food exactly where the script says.
	rng := &core.SequenceRand{Seq: []int{7, 2}}
	e := newTestEngine(10, 10, 1, rng)

	snap := e.Snapshot()
	if !snap.HasFood {
		t.Fatal("expected food placed at reset")
	}
	if snap.Food != (Point{X: 7, Y: 2}) {
		t.Errorf("food = %v, expected (7,2)", snap.Food)
	}
}

func TestFoodRetryAbandoned(t *testing.T) {
	// Script the source to always land on the snake; placement gives up
	// after the retry limit instead of looping forever.
	e := newTestEngine(4, 4, 1, nil)
	e.body = []Point{{X: 1, Y: 1}}
	e.rng = &core.SequenceRand{Seq: []int{1}} // Always samples (1,1)

	e.placeFood()

	if e.hasFood {
		t.Error("expected placement abandoned when every sample is occupied")
	}
}

func TestSpawnContiguousNoOverlap(t *testing.T) {
	// Long initial lengths wrap behind the head without overlapping.
	e := newTestEngine(8, 6, 8, nil)

	seen := make(map[Point]bool)
	snap := e.Snapshot()
	for _, seg := range snap.Body {
		if seen[seg] {
			t.Fatalf("spawn overlap at %v", seg)
		}
		seen[seg] = true
	}

	for i := 1; i < len(snap.Body); i++ {
		a, b := snap.Body[i-1], snap.Body[i]
		dx := (a.X - b.X + snap.Cols) % snap.Cols
		dy := (a.Y - b.Y + snap.Rows) % snap.Rows
		if !(dx == 1 && dy == 0) {
			t.Errorf("segments %d and %d not contiguous: %v %v", i-1, i, a, b)
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := newTestEngine(16, 12, 3, core.NewRand(12345))
		for i := 0; i < 200; i++ {
			if i == 20 {
				e.ChangeDirection(DirDown)
			}
			if i == 40 {
				e.ChangeDirection(DirLeft)
			}
			e.Step()
		}
		return e.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Ticks != s2.Ticks || s1.Score != s2.Score || s1.Head() != s2.Head() ||
		s1.Food != s2.Food || s1.Dir != s2.Dir || len(s1.Body) != len(s2.Body) {
		t.Errorf("same seed diverged: %+v vs %+v", s1, s2)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(10, 10, 3, nil)
	snap := e.Snapshot()
	snap.Body[0] = Point{X: 99, Y: 99}

	if e.body[0] == (Point{X: 99, Y: 99}) {
		t.Error("mutating a snapshot must not affect engine state")
	}
}
