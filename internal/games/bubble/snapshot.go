package bubble

// Snapshot is an immutable copy of the engine state for rendering
// and inspection. The grid is copied; mutating it does not touch the
// engine.
type Snapshot struct {
	Cols, Rows int
	Cells      []int8 // row-major, emptyCell for unoccupied

	AimAngle float64
	Loaded   int8
	Next     int8

	Projectile    Projectile
	HasProjectile bool

	ShiftElapsedMs float64
	Score          int
	GameOver       bool
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	cells := make([]int8, len(e.grid.cells))
	copy(cells, e.grid.cells)
	snap := Snapshot{
		Cols:           e.opts.Cols,
		Rows:           e.opts.Rows,
		Cells:          cells,
		AimAngle:       e.aimAngle,
		Loaded:         e.loaded,
		Next:           e.next,
		ShiftElapsedMs: e.shiftElapsedMs,
		Score:          e.score,
		GameOver:       e.gameOver,
	}
	if e.projectile != nil {
		snap.Projectile = *e.projectile
		snap.HasProjectile = true
	}
	return snap
}

// CellAt returns the color at (col, row), or -1 when empty or out of
// bounds.
func (s Snapshot) CellAt(col, row int) int8 {
	if col < 0 || col >= s.Cols || row < 0 || row >= s.Rows {
		return emptyCell
	}
	return s.Cells[row*s.Cols+col]
}
