package racer

import "github.com/vovakirdan/canvas-arcade/internal/core"

// Snapshot is an immutable copy of the engine state, used by the renderer
// and by determinism tests.
type Snapshot struct {
	Pos          core.Vec2
	Vel          core.Vec2
	Angle        float64
	Laps         int
	LastCrossing CrossingDir
	ElapsedMs    float64
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Pos:          e.pos,
		Vel:          e.vel,
		Angle:        e.angle,
		Laps:         e.laps,
		LastCrossing: e.lastCrossing,
		ElapsedMs:    e.elapsedMs,
	}
}

// Speed returns the current velocity magnitude in cells per ms.
func (s Snapshot) Speed() float64 {
	return s.Vel.Len()
}
