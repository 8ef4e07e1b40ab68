package bubble

import (
	"strings"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func TestGameID(t *testing.T) {
	g := New()
	if g.ID() != "bubble" {
		t.Errorf("ID should be 'bubble', got %s", g.ID())
	}
	if g.Title() != "Bubble" {
		t.Errorf("Title should be 'Bubble', got %s", g.Title())
	}
}

func TestGameFireLaunchesProjectile(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 26, TickRate: 60})
	if g.tooSmall {
		t.Fatal("80x26 screen should fit the default board")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionFire)
	g.Step(input)

	if !g.engine.Snapshot().HasProjectile {
		t.Error("fire action should launch a projectile")
	}
}

func TestGameWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5, TickRate: 60})
	if !g.tooSmall {
		t.Error("a 10x5 screen cannot fit the board")
	}

	result := g.Step(core.NewInputFrame())
	if !result.State.Paused {
		t.Error("too-small games report paused state")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 26, TickRate: 60})

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	result := g.Step(input)
	if !result.State.Paused {
		t.Error("pause action should pause the game")
	}
	result = g.Step(input)
	if result.State.Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	cfg := core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 26, TickRate: 60}
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Bubble") {
		t.Error("HUD should contain 'Bubble'")
	}
	if !strings.Contains(out, "next") {
		t.Error("shooter row should show the queued color")
	}
}
