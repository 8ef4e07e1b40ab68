package snake

// Snapshot is an immutable copy of the engine state, used by the renderer
// and by determinism tests. Mutating a snapshot never affects the engine.
type Snapshot struct {
	Cols     int
	Rows     int
	Body     []Point // Head at index 0
	Dir      Direction
	Food     Point
	HasFood  bool
	Score    int
	Ticks    uint64
	GameOver bool
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	body := make([]Point, len(e.body))
	copy(body, e.body)

	return Snapshot{
		Cols:     e.cols,
		Rows:     e.rows,
		Body:     body,
		Dir:      e.dir,
		Food:     e.food,
		HasFood:  e.hasFood,
		Score:    e.score,
		Ticks:    e.ticks,
		GameOver: e.gameOver,
	}
}

// Head returns the head cell, the first body segment.
func (s Snapshot) Head() Point {
	return s.Body[0]
}
