// Package racer implements the continuous 2D racing simulation: throttle and
// brake acceleration along the heading, speed clamping, friction, inelastic
// track-boundary contact and finish-line lap counting. The engine is
// renderer-agnostic; the platform adapter in game.go owns pacing and drawing.
package racer

import (
	"math"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// InputFlags are the four independent control flags, overwritten each frame
// by the consumer.
type InputFlags struct {
	Accelerate bool
	Brake      bool
	TurnLeft   bool
	TurnRight  bool
}

// CrossingDir records the direction of the most recent finish-line crossing.
type CrossingDir int

const (
	CrossingNone    CrossingDir = iota
	CrossingForward             // Crossed in the preferred direction
	CrossingReverse             // Crossed against the preferred direction
)

// String returns a human-readable name for the crossing direction.
func (c CrossingDir) String() string {
	switch c {
	case CrossingForward:
		return "forward"
	case CrossingReverse:
		return "reverse"
	default:
		return "none"
	}
}

// Options configures the track and start pose.
type Options struct {
	Width  float64
	Height float64

	StartX     float64
	StartY     float64
	StartAngle float64 // Radians; 0 points up, positive turns clockwise

	// Finish segment: a horizontal line at FinishY spanning [FinishX1, FinishX2].
	FinishY  float64
	FinishX1 float64
	FinishX2 float64
	// FinishUp selects the preferred crossing direction: true counts laps on
	// upward (decreasing Y) crossings, false on downward crossings.
	FinishUp bool
}

// Tuning holds the kinematic constants. All rates are per millisecond of
// simulated time so Step integrates correctly for variable deltas.
type Tuning struct {
	Accel      float64 // Cells per ms^2 under throttle
	BrakeAccel float64 // Cells per ms^2 under brake
	MaxSpeed   float64 // Cells per ms
	Friction   float64 // Fractional velocity decay per ms
	TurnRate   float64 // Radians per ms
}

// Engine is the racer simulation state machine. All mutation goes through
// SetInput, Step and Reset; external reads go through Snapshot. Calls must
// not run concurrently; the owning platform layer serializes them.
type Engine struct {
	opts   Options
	tuning Tuning

	pos   core.Vec2
	vel   core.Vec2
	angle float64

	input InputFlags

	laps         int
	lastCrossing CrossingDir
	elapsedMs    float64
}

// NewEngine creates a racer engine with the given track and tuning.
func NewEngine(opts Options, tuning Tuning) *Engine {
	e := &Engine{opts: opts, tuning: tuning}
	e.Reset()
	return e
}

// Reset restores the start pose, zero velocity, laps and elapsed time.
func (e *Engine) Reset() {
	e.pos = core.V(e.opts.StartX, e.opts.StartY)
	e.vel = core.Vec2{}
	e.angle = e.opts.StartAngle
	e.input = InputFlags{}
	e.laps = 0
	e.lastCrossing = CrossingNone
	e.elapsedMs = 0
}

// SetInput overwrites the control flags. Pure state mutation, applied on
// the next Step.
func (e *Engine) SetInput(flags InputFlags) {
	e.input = flags
}

// Step advances the simulation by dtMs milliseconds of simulated time.
func (e *Engine) Step(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	e.elapsedMs += dtMs

	// Angular update from the turn flags.
	if e.input.TurnLeft {
		e.angle -= e.tuning.TurnRate * dtMs
	}
	if e.input.TurnRight {
		e.angle += e.tuning.TurnRate * dtMs
	}

	// Forward unit vector; angle 0 points up the screen.
	forward := core.V(math.Sin(e.angle), -math.Cos(e.angle))

	// Linear acceleration from throttle and brake.
	if e.input.Accelerate {
		e.vel = e.vel.Add(forward.Scale(e.tuning.Accel * dtMs))
	}
	if e.input.Brake {
		e.vel = e.vel.Sub(forward.Scale(e.tuning.BrakeAccel * dtMs))
	}

	// Clamp speed preserving direction.
	if speed := e.vel.Len(); speed > e.tuning.MaxSpeed {
		e.vel = e.vel.Scale(e.tuning.MaxSpeed / speed)
	}

	// Multiplicative frictional decay scaled by dt.
	decay := 1.0 - e.tuning.Friction*dtMs
	if decay < 0 {
		decay = 0
	}
	e.vel = e.vel.Scale(decay)

	// Integrate position, keeping the pre-step Y for crossing detection.
	prevY := e.pos.Y
	e.pos = e.pos.Add(e.vel.Scale(dtMs))

	// Inelastic wall contact: clamp to bounds, zero the violated axis.
	if e.pos.X < 0 {
		e.pos.X = 0
		e.vel.X = 0
	} else if e.pos.X > e.opts.Width {
		e.pos.X = e.opts.Width
		e.vel.X = 0
	}
	if e.pos.Y < 0 {
		e.pos.Y = 0
		e.vel.Y = 0
	} else if e.pos.Y > e.opts.Height {
		e.pos.Y = e.opts.Height
		e.vel.Y = 0
	}

	e.detectCrossing(prevY)
}

// detectCrossing checks whether this step crossed the finish segment.
// Only the post-step X is tested against the segment extent, so at a large
// dt a crossing that leaves the segment sideways within one sample can be
// missed.
func (e *Engine) detectCrossing(prevY float64) {
	curY := e.pos.Y
	if prevY == curY {
		return
	}
	if e.pos.X < e.opts.FinishX1 || e.pos.X > e.opts.FinishX2 {
		return
	}

	fy := e.opts.FinishY
	crossedUp := prevY > fy && curY <= fy
	crossedDown := prevY < fy && curY >= fy

	switch {
	case crossedUp && e.opts.FinishUp, crossedDown && !e.opts.FinishUp:
		e.laps++
		e.lastCrossing = CrossingForward
	case crossedUp || crossedDown:
		e.lastCrossing = CrossingReverse
	}
}
