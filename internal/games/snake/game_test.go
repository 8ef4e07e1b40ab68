package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func TestGameID(t *testing.T) {
	g := New()
	if g.ID() != "snake" {
		t.Errorf("ID should be 'snake', got %s", g.ID())
	}
	if g.Title() != "Snake" {
		t.Errorf("Title should be 'Snake', got %s", g.Title())
	}
}

func TestGameResetAndStep(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 26, TickRate: 60})

	if g.tooSmall {
		t.Fatal("80x26 screen should fit the default grid")
	}

	input := core.NewInputFrame()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}

	snap := g.engine.Snapshot()
	if snap.Ticks == 0 {
		t.Error("engine should have advanced after 60 platform ticks")
	}
}

func TestGameWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5})

	if !g.tooSmall {
		t.Error("game should detect window is too small")
	}
	if !g.State().Paused {
		t.Error("too-small state should report paused")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 26})

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	if !g.paused {
		t.Error("pause action should pause the game")
	}

	ticksBefore := g.engine.Snapshot().Ticks
	input.Clear()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	if g.engine.Snapshot().Ticks != ticksBefore {
		t.Error("engine should not advance while paused")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	cfg := core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 26}
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Snake") {
		t.Error("HUD should contain 'Snake'")
	}
}
