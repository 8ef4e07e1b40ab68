// Package snake implements the grid Snake simulation: discrete toroidal
// movement, growth on food and self-collision detection. The engine is
// renderer-agnostic; the platform adapter in game.go owns pacing and drawing.
package snake

import (
	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// foodRetryLimit bounds rejection sampling for food placement. Exhausting it
// abandons placement for the tick; this only happens on a nearly full board.
const foodRetryLimit = 64

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Vector returns the unit cell offset for this direction.
func (d Direction) Vector() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

// isOpposite reports whether two directions are exact reverses.
func isOpposite(a, b Direction) bool {
	va, vb := a.Vector(), b.Vector()
	return va.X == -vb.X && va.Y == -vb.Y
}

// valid reports whether d is one of the four recognized directions.
func (d Direction) valid() bool {
	return d >= DirRight && d <= DirUp
}

// Point represents a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// Options configures an Engine at construction.
type Options struct {
	Cols          int
	Rows          int
	InitialLength int
}

// Engine is the Snake simulation state machine. All mutation goes through
// ChangeDirection, Step and Reset; external reads go through Snapshot.
// Calls must not run concurrently; the owning platform layer serializes them.
type Engine struct {
	cols       int
	rows       int
	initialLen int
	rng        core.Rand

	body       []Point // Head at index 0
	dir        Direction
	pending    Direction
	hasPending bool

	food    Point
	hasFood bool

	score    int
	ticks    uint64
	gameOver bool
}

// NewEngine creates a Snake engine on a cols x rows toroidal grid.
// The initial length is clamped so the spawned body cannot overlap itself
// when it wraps around the grid.
func NewEngine(opts Options, rng core.Rand) *Engine {
	cols := opts.Cols
	if cols < 4 {
		cols = 4
	}
	rows := opts.Rows
	if rows < 4 {
		rows = 4
	}
	length := opts.InitialLength
	if length < 1 {
		length = 1
	}
	if length > cols {
		length = cols
	}

	e := &Engine{
		cols:       cols,
		rows:       rows,
		initialLen: length,
		rng:        rng,
	}
	e.Reset()
	return e
}

// Reset restores the engine to its spawn state: the snake centered on the
// grid trailing behind the starting direction, score and ticks cleared,
// and fresh food placed.
func (e *Engine) Reset() {
	e.dir = DirRight
	e.hasPending = false
	e.score = 0
	e.ticks = 0
	e.gameOver = false

	// Build the body trailing backward along the start direction. The
	// trailing coordinates wrap, so a long requested length still spawns
	// contiguous and overlap-free.
	head := Point{X: e.cols / 2, Y: e.rows / 2}
	back := e.dir.Vector()
	e.body = make([]Point, e.initialLen)
	for i := range e.body {
		e.body[i] = e.wrap(Point{X: head.X - i*back.X, Y: head.Y - i*back.Y})
	}

	e.hasFood = false
	e.placeFood()
}

// ChangeDirection buffers a direction change to apply at the start of the
// next Step. The input is ignored if it is unrecognized or the exact
// reverse of the current direction.
func (e *Engine) ChangeDirection(d Direction) {
	if !d.valid() || isOpposite(d, e.dir) {
		return
	}
	e.pending = d
	e.hasPending = true
}

// Step advances the simulation by one tick. A no-op once the game is over.
func (e *Engine) Step() {
	if e.gameOver {
		return
	}

	// Apply the buffered direction; re-check reversal at apply time since
	// the current direction may have changed since the input was buffered.
	if e.hasPending {
		if !isOpposite(e.pending, e.dir) {
			e.dir = e.pending
		}
		e.hasPending = false
	}

	v := e.dir.Vector()
	newHead := e.wrap(Point{X: e.body[0].X + v.X, Y: e.body[0].Y + v.Y})

	// Collision against the pre-move body, head excluded. The departing
	// tail still counts: it has not moved yet when the head arrives.
	for _, seg := range e.body[1:] {
		if seg == newHead {
			e.gameOver = true
			return
		}
	}

	e.body = append([]Point{newHead}, e.body...)

	if e.hasFood && newHead == e.food {
		e.score++
		e.hasFood = false
		e.placeFood()
	} else if len(e.body) > 1 {
		e.body = e.body[:len(e.body)-1]
	}

	// Retry an abandoned placement once the board has had a chance to open up.
	if !e.hasFood {
		e.placeFood()
	}

	e.ticks++
}

// wrap maps a point onto the torus.
func (e *Engine) wrap(p Point) Point {
	p.X %= e.cols
	if p.X < 0 {
		p.X += e.cols
	}
	p.Y %= e.rows
	if p.Y < 0 {
		p.Y += e.rows
	}
	return p
}

// placeFood samples an unoccupied cell uniformly at random, giving up after
// foodRetryLimit failed samples.
func (e *Engine) placeFood() {
	for i := 0; i < foodRetryLimit; i++ {
		p := Point{X: e.rng.Intn(e.cols), Y: e.rng.Intn(e.rows)}
		if !e.isSnakeAt(p) {
			e.food = p
			e.hasFood = true
			return
		}
	}
	e.hasFood = false
}

// isSnakeAt checks if the snake occupies the given point.
func (e *Engine) isSnakeAt(p Point) bool {
	for _, seg := range e.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.cols }

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.rows }
