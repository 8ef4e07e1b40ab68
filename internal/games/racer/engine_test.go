package racer

import (
	"math"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// V2 shortens vector literals in test setup.
func V2(x, y float64) core.Vec2 {
	return core.V(x, y)
}

func testOptions() Options {
	return Options{
		Width:    76,
		Height:   22,
		StartX:   10,
		StartY:   11,
		FinishY:  11,
		FinishX1: 0,
		FinishX2: 20,
		FinishUp: true,
	}
}

func testTuning() Tuning {
	return Tuning{
		Accel:      0.0003,
		BrakeAccel: 0.00045,
		MaxSpeed:   0.035,
		Friction:   0.0012,
		TurnRate:   0.0032,
	}
}

func TestSpeedClamp(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())
	e.SetInput(InputFlags{Accelerate: true})

	// Hold throttle long enough to saturate, at an irregular dt.
	for i := 0; i < 2000; i++ {
		e.Step(16.7)
		if speed := e.Snapshot().Speed(); speed > e.tuning.MaxSpeed+1e-12 {
			t.Fatalf("tick %d: speed %g exceeds max %g", i, speed, e.tuning.MaxSpeed)
		}
	}
}

func TestFrictionDecaysToRest(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())
	e.vel.Y = -0.02

	e.SetInput(InputFlags{})
	for i := 0; i < 5000; i++ {
		e.Step(16.7)
	}

	if speed := e.Snapshot().Speed(); speed > 1e-6 {
		t.Errorf("coasting car should come to rest, speed = %g", speed)
	}
}

func TestElapsedTimeAccumulates(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())
	e.Step(16.7)
	e.Step(33.4)
	e.Step(10.0)

	if got := e.Snapshot().ElapsedMs; math.Abs(got-60.1) > 1e-9 {
		t.Errorf("elapsed = %g, expected 60.1", got)
	}

	// Non-positive deltas are ignored.
	e.Step(0)
	e.Step(-5)
	if got := e.Snapshot().ElapsedMs; math.Abs(got-60.1) > 1e-9 {
		t.Errorf("elapsed changed on non-positive dt: %g", got)
	}
}

func TestTurningChangesHeading(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())

	e.SetInput(InputFlags{TurnRight: true})
	e.Step(100)
	if e.Snapshot().Angle <= 0 {
		t.Error("turn right should increase the angle")
	}

	e.Reset()
	e.SetInput(InputFlags{TurnLeft: true})
	e.Step(100)
	if e.Snapshot().Angle >= 0 {
		t.Error("turn left should decrease the angle")
	}
}

func TestBoundaryClampZeroesVelocity(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())

	// Drive straight up into the top wall.
	e.pos = V2(10, 0.5)
	e.vel = V2(0, -0.03)
	e.Step(100)

	snap := e.Snapshot()
	if snap.Pos.Y != 0 {
		t.Errorf("position not clamped to top wall: y = %g", snap.Pos.Y)
	}
	if snap.Vel.Y != 0 {
		t.Errorf("violated velocity axis not zeroed: vy = %g", snap.Vel.Y)
	}
}

func TestBoundaryClampKeepsTangentVelocity(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())

	// Slide diagonally into the left wall; only X velocity is zeroed.
	e.pos = V2(0.5, 11)
	e.vel = V2(-0.02, 0.01)
	e.Step(100)

	snap := e.Snapshot()
	if snap.Vel.X != 0 {
		t.Errorf("vx = %g, expected 0 on wall contact", snap.Vel.X)
	}
	if snap.Vel.Y == 0 {
		t.Error("vy should keep its decayed value on X-wall contact")
	}
}

func TestLapCountingPreferredDirection(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())

	// Cross the finish line upward, inside its X extent.
	e.pos = V2(10, 11.5)
	e.vel = V2(0, -0.02)
	e.Step(100) // Moves 2 cells up across y=11

	snap := e.Snapshot()
	if snap.Laps != 1 {
		t.Fatalf("laps = %d, expected 1", snap.Laps)
	}
	if snap.LastCrossing != CrossingForward {
		t.Errorf("last crossing = %v, expected forward", snap.LastCrossing)
	}

	// Crossing again without recrossing back still counts each pass once.
	e.pos = V2(10, 11.5)
	e.vel = V2(0, -0.02)
	e.Step(100)
	if got := e.Snapshot().Laps; got != 2 {
		t.Errorf("laps = %d, expected 2", got)
	}
}

func TestLapCountingReverseDirection(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())

	// Cross downward: no lap, but the crossing direction is recorded.
	e.pos = V2(10, 10.5)
	e.vel = V2(0, 0.02)
	e.Step(100)

	snap := e.Snapshot()
	if snap.Laps != 0 {
		t.Errorf("laps = %d, reverse crossing must not count", snap.Laps)
	}
	if snap.LastCrossing != CrossingReverse {
		t.Errorf("last crossing = %v, expected reverse", snap.LastCrossing)
	}
}

func TestLapIgnoredOutsideSegmentExtent(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())

	// Upward crossing right of the segment's X range.
	e.pos = V2(40, 11.5)
	e.vel = V2(0, -0.02)
	e.Step(100)

	snap := e.Snapshot()
	if snap.Laps != 0 || snap.LastCrossing != CrossingNone {
		t.Errorf("crossing outside X extent counted: laps=%d last=%v", snap.Laps, snap.LastCrossing)
	}
}

func TestWallContactDoesNotFakeCrossing(t *testing.T) {
	opts := testOptions()
	opts.FinishY = 1

	// Already past the line, driving up into the top wall. The clamp must
	// not manufacture a previous position back across the line.
	e := NewEngine(opts, testTuning())
	e.pos = V2(10, 0.5)
	e.vel = V2(0, -0.02)
	e.Step(100)

	snap := e.Snapshot()
	if snap.Pos.Y != 0 {
		t.Fatalf("position not clamped to top wall: y = %g", snap.Pos.Y)
	}
	if snap.Laps != 0 || snap.LastCrossing != CrossingNone {
		t.Errorf("clamped tick counted a phantom lap: laps=%d last=%v", snap.Laps, snap.LastCrossing)
	}
}

func TestWallContactStillCountsRealCrossing(t *testing.T) {
	opts := testOptions()
	opts.FinishY = 1

	// Crosses y=1 and then hits the wall in the same tick; the genuine
	// crossing is still counted once.
	e := NewEngine(opts, testTuning())
	e.pos = V2(10, 1.5)
	e.vel = V2(0, -0.02)
	e.Step(100)

	snap := e.Snapshot()
	if snap.Laps != 1 || snap.LastCrossing != CrossingForward {
		t.Errorf("crossing into the wall not counted: laps=%d last=%v", snap.Laps, snap.LastCrossing)
	}
}

func TestAccelerationFollowsHeading(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())

	// Heading π/2 points along +X.
	e.angle = math.Pi / 2
	e.SetInput(InputFlags{Accelerate: true})
	e.Step(50)

	snap := e.Snapshot()
	if snap.Vel.X <= 0 {
		t.Errorf("vx = %g, expected positive when heading +X", snap.Vel.X)
	}
	if math.Abs(snap.Vel.Y) > 1e-9 {
		t.Errorf("vy = %g, expected ~0 when heading +X", snap.Vel.Y)
	}
}

func TestBrakeReverses(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())
	e.angle = math.Pi / 2
	e.vel = V2(0.02, 0)

	e.SetInput(InputFlags{Brake: true})
	e.Step(16.7)

	if got := e.Snapshot().Vel.X; got >= 0.02 {
		t.Errorf("brake should reduce forward velocity, vx = %g", got)
	}
}

func TestReset(t *testing.T) {
	e := NewEngine(testOptions(), testTuning())
	e.SetInput(InputFlags{Accelerate: true, TurnRight: true})
	for i := 0; i < 100; i++ {
		e.Step(16.7)
	}

	e.Reset()
	snap := e.Snapshot()
	if snap.Pos != V2(10, 11) || snap.Vel != V2(0, 0) || snap.Angle != 0 {
		t.Errorf("reset did not restore start pose: %+v", snap)
	}
	if snap.Laps != 0 || snap.ElapsedMs != 0 || snap.LastCrossing != CrossingNone {
		t.Errorf("reset did not clear counters: %+v", snap)
	}
}
