package bubble

import (
	"math"
	"sort"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

const (
	// contactRadius is the projectile-to-cell proximity, in cell
	// units, at which a projectile sticks.
	contactRadius   = 0.9
	contactRadiusSq = contactRadius * contactRadius

	// maxSubstepMs bounds a single integration slice so a large or
	// irregular dt cannot tunnel a projectile through a bubble.
	maxSubstepMs = 8.0

	clusterMinSize = 3
	clusterScore   = 10
	floatingScore  = 20
)

// Options configures a board, the shooter, and the pacing timers.
// Rates are per millisecond of simulated time.
type Options struct {
	Cols, Rows int
	SeedRows   int     // rows filled at reset, adjacent to the ceiling
	Colors     int     // number of distinct bubble colors
	ShotSpeed  float64 // projectile speed, cells/ms
	ArcLimit   float64 // max aim deviation from straight up, radians
	AimSpeed   float64 // aim smoothing rate, radians/ms
	RowShiftMs float64 // interval between downward row shifts
}

// Projectile is the single in-flight bubble. Positions are in cell
// units with the cell at column c, row r centered on (c+0.5, r+0.5).
type Projectile struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Color int8
}

// Engine owns one bubble board. All methods must be called from a
// single goroutine.
type Engine struct {
	opts Options
	grid *Grid

	aimAngle    float64 // current angle, 0 points straight up, positive leans right
	targetAngle float64
	loaded      int8
	next        int8
	projectile  *Projectile

	shiftElapsedMs float64
	score          int
	gameOver       bool
	rng            core.Rand
}

// NewEngine creates an engine and seeds the opening board. Dimensions
// below a playable minimum are raised to it.
func NewEngine(opts Options, rng core.Rand) *Engine {
	if opts.Cols < 4 {
		opts.Cols = 4
	}
	if opts.Rows < 6 {
		opts.Rows = 6
	}
	if opts.Colors < 2 {
		opts.Colors = 2
	}
	if opts.Colors > 8 {
		opts.Colors = 8
	}
	if opts.SeedRows < 1 {
		opts.SeedRows = 1
	}
	if opts.SeedRows > opts.Rows-2 {
		opts.SeedRows = opts.Rows - 2
	}
	if opts.ShotSpeed <= 0 {
		opts.ShotSpeed = 0.030
	}
	if opts.ArcLimit <= 0 || opts.ArcLimit > math.Pi/2 {
		opts.ArcLimit = 1.25
	}
	if opts.AimSpeed <= 0 {
		opts.AimSpeed = 0.004
	}
	if opts.RowShiftMs <= 0 {
		opts.RowShiftMs = 15000
	}

	e := &Engine{
		opts: opts,
		grid: NewGrid(opts.Cols, opts.Rows),
		rng:  rng,
	}
	e.Reset()
	return e
}

// Reset reseeds the top rows, re-arms the shooter and the shift
// timer, and clears score and terminal state.
func (e *Engine) Reset() {
	e.grid.ClearAll()
	for row := 0; row < e.opts.SeedRows; row++ {
		e.seedRow(row)
	}
	e.aimAngle = 0
	e.targetAngle = 0
	e.loaded = int8(e.rng.Intn(e.opts.Colors))
	e.next = int8(e.rng.Intn(e.opts.Colors))
	e.projectile = nil
	e.shiftElapsedMs = 0
	e.score = 0
	e.gameOver = false
}

// seedRow fills a row partially at random, leaving occasional gaps.
func (e *Engine) seedRow(row int) {
	for col := 0; col < e.opts.Cols; col++ {
		if e.rng.Intn(5) == 0 {
			continue
		}
		e.grid.Set(Point{Col: col, Row: row}, int8(e.rng.Intn(e.opts.Colors)))
	}
}

// shooterPos returns the launch point, centered below the board.
func (e *Engine) shooterPos() core.Vec2 {
	return core.V(float64(e.opts.Cols)/2, float64(e.opts.Rows)+0.5)
}

func (e *Engine) clampArc(angle float64) float64 {
	if angle < -e.opts.ArcLimit {
		return -e.opts.ArcLimit
	}
	if angle > e.opts.ArcLimit {
		return e.opts.ArcLimit
	}
	return angle
}

// AimAt steers the shooter toward a target point given in cell units.
// The resulting angle is clamped to the forward arc.
func (e *Engine) AimAt(x, y float64) {
	s := e.shooterPos()
	e.targetAngle = e.clampArc(math.Atan2(x-s.X, s.Y-y))
}

// Rotate nudges the aim target by delta radians, clamped to the arc.
func (e *Engine) Rotate(delta float64) {
	e.targetAngle = e.clampArc(e.targetAngle + delta)
}

// Shoot launches the loaded bubble at the current aim angle and
// promotes the queued color. It is a no-op while a projectile is in
// flight or after game over.
func (e *Engine) Shoot() {
	if e.gameOver || e.projectile != nil {
		return
	}
	vel := core.V(math.Sin(e.aimAngle), -math.Cos(e.aimAngle)).Scale(e.opts.ShotSpeed)
	e.projectile = &Projectile{
		Pos:   e.shooterPos(),
		Vel:   vel,
		Color: e.loaded,
	}
	e.loaded = e.next
	e.next = int8(e.rng.Intn(e.opts.Colors))
}

// SetRowShiftInterval overrides the delay between row shifts.
// Non-positive values are ignored.
func (e *Engine) SetRowShiftInterval(ms float64) {
	if ms > 0 {
		e.opts.RowShiftMs = ms
	}
}

// Step advances the simulation by dtMs milliseconds: the row-shift
// timer, aim smoothing, then projectile flight and attachment. After
// game over it is a no-op.
func (e *Engine) Step(dtMs float64) {
	if e.gameOver || dtMs <= 0 {
		return
	}

	e.shiftElapsedMs += dtMs
	for e.shiftElapsedMs >= e.opts.RowShiftMs {
		e.shiftElapsedMs -= e.opts.RowShiftMs
		if e.grid.BottomRowOccupied() {
			e.gameOver = true
			return
		}
		e.grid.ShiftDown()
		e.seedRow(0)
	}

	e.advanceAim(dtMs)

	for remaining := dtMs; remaining > 0 && e.projectile != nil; remaining -= maxSubstepMs {
		slice := remaining
		if slice > maxSubstepMs {
			slice = maxSubstepMs
		}
		e.flyProjectile(slice)
	}
}

// advanceAim moves the current angle toward the target at the
// configured smoothing rate.
func (e *Engine) advanceAim(dtMs float64) {
	maxDelta := e.opts.AimSpeed * dtMs
	diff := e.targetAngle - e.aimAngle
	if diff > maxDelta {
		diff = maxDelta
	}
	if diff < -maxDelta {
		diff = -maxDelta
	}
	e.aimAngle += diff
}

// flyProjectile integrates one slice of projectile motion, reflecting
// off the side walls and resolving contact with the ceiling or an
// occupied cell.
func (e *Engine) flyProjectile(dtMs float64) {
	p := e.projectile
	p.Pos = p.Pos.Add(p.Vel.Scale(dtMs))

	left := 0.5
	right := float64(e.opts.Cols) - 0.5
	if p.Pos.X < left {
		p.Pos.X = 2*left - p.Pos.X
		p.Vel.X = -p.Vel.X
	} else if p.Pos.X > right {
		p.Pos.X = 2*right - p.Pos.X
		p.Vel.X = -p.Vel.X
	}

	if p.Pos.Y <= 0.5 {
		e.resolveContact(p)
		return
	}
	for row := 0; row < e.opts.Rows; row++ {
		for col := 0; col < e.opts.Cols; col++ {
			cell := Point{Col: col, Row: row}
			if !e.grid.Occupied(cell) {
				continue
			}
			if p.Pos.DistSq(cellCenter(cell)) <= contactRadiusSq {
				e.resolveContact(p)
				return
			}
		}
	}
}

// resolveContact attaches the projectile to the nearest empty cell
// and runs cluster clearing. An exhausted attachment search discards
// the projectile without mutating the board.
func (e *Engine) resolveContact(p *Projectile) {
	e.projectile = nil
	cell, ok := e.attachmentCell(p.Pos)
	if !ok {
		return
	}
	e.grid.Set(cell, p.Color)

	cluster := sameColorCluster(e.grid, cell)
	if len(cluster) < clusterMinSize {
		return
	}
	for _, c := range cluster {
		e.grid.ClearCell(c)
	}
	e.score += len(cluster) * clusterScore
	e.score += dropFloating(e.grid) * floatingScore
}

// attachmentCell finds the empty cell nearest the contact point. It
// tries the cell under the contact first, then that cell's neighbors
// ranked by distance, then rings of increasing radius.
func (e *Engine) attachmentCell(contact core.Vec2) (Point, bool) {
	direct := Point{
		Col: clampInt(int(math.Floor(contact.X)), 0, e.opts.Cols-1),
		Row: clampInt(int(math.Floor(contact.Y)), 0, e.opts.Rows-1),
	}
	if !e.grid.Occupied(direct) {
		return direct, true
	}

	if cell, ok := e.nearestEmptyInRing(contact, direct, 1); ok {
		return cell, ok
	}
	maxRadius := e.opts.Cols + e.opts.Rows
	for radius := 2; radius <= maxRadius; radius++ {
		if cell, ok := e.nearestEmptyInRing(contact, direct, radius); ok {
			return cell, ok
		}
	}
	return Point{}, false
}

// nearestEmptyInRing scans the cells at Chebyshev distance radius
// from center and returns the empty one closest to the contact point.
func (e *Engine) nearestEmptyInRing(contact core.Vec2, center Point, radius int) (Point, bool) {
	var candidates []Point
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if maxAbs(dc, dr) != radius {
				continue
			}
			p := Point{Col: center.Col + dc, Row: center.Row + dr}
			if e.grid.InBounds(p) && !e.grid.Occupied(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return Point{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return contact.DistSq(cellCenter(candidates[i])) < contact.DistSq(cellCenter(candidates[j]))
	})
	return candidates[0], true
}

func cellCenter(p Point) core.Vec2 {
	return core.V(float64(p.Col)+0.5, float64(p.Row)+0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
