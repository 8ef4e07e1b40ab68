package racer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func TestGameID(t *testing.T) {
	g := New()
	if g.ID() != "racer" {
		t.Errorf("ID should be 'racer', got %s", g.ID())
	}
	if g.Title() != "Racer" {
		t.Errorf("Title should be 'Racer', got %s", g.Title())
	}
}

func TestGameHoldThrottle(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 26, TickRate: 60})

	if g.tooSmall {
		t.Fatal("80x26 screen should fit the default track")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	for i := 0; i < 120; i++ {
		g.Step(input)
	}

	snap := g.engine.Snapshot()
	if snap.Speed() == 0 {
		t.Error("holding throttle for 2 seconds should build speed")
	}
	if snap.Pos == V2(10, 11) {
		t.Error("car should have moved off the start pose")
	}
}

func TestGameRestartRestoresStart(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 26, TickRate: 60})

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	for i := 0; i < 60; i++ {
		g.Step(input)
	}

	input.Clear()
	input.Set(core.ActionRestart)
	g.Step(input)

	snap := g.engine.Snapshot()
	if snap.ElapsedMs != 0 || snap.Speed() != 0 {
		t.Errorf("restart should reset the engine: %+v", snap)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 26, TickRate: 60}
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Racer") {
		t.Error("HUD should contain 'Racer'")
	}
}
