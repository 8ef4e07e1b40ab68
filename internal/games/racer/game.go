package racer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Package-level variables for config/difficulty, set by the CLI before the
// game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts the racer engine to the platform contract. It translates
// per-frame actions into the engine's held control flags and feeds the
// engine the frame's simulated time delta.
type Game struct {
	engine *Engine
	cfg    config.RacerConfig

	dtMs     float64
	paused   bool
	tooSmall bool

	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
}

// New creates a new Racer game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Racer"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadRacer(configPath)
	if err != nil {
		gameCfg = config.DefaultRacerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRacerPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = gameCfg

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dtMs = 1000.0 / float64(tickRate)
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	w := int(gameCfg.Track.Width)
	h := int(gameCfg.Track.Height)
	requiredW := w + 2
	requiredH := h + g.hudHeight + 1
	if cfg.ScreenW < requiredW || cfg.ScreenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.mapOffsetX = (cfg.ScreenW - w) / 2
	g.mapOffsetY = g.hudHeight

	g.engine = NewEngine(Options{
		Width:      gameCfg.Track.Width,
		Height:     gameCfg.Track.Height,
		StartX:     gameCfg.Track.StartX,
		StartY:     gameCfg.Track.StartY,
		StartAngle: gameCfg.Track.StartAngle,
		FinishY:    gameCfg.Track.FinishY,
		FinishX1:   gameCfg.Track.FinishX1,
		FinishX2:   gameCfg.Track.FinishX2,
		FinishUp:   gameCfg.Track.FinishDir != "down",
	}, Tuning{
		Accel:      gameCfg.Physics.Accel,
		BrakeAccel: gameCfg.Physics.BrakeAccel,
		MaxSpeed:   gameCfg.Physics.MaxSpeed,
		Friction:   gameCfg.Physics.Friction,
		TurnRate:   gameCfg.Physics.TurnRate,
	})
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.engine.Reset()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.engine.SetInput(InputFlags{
		Accelerate: input.Has(core.ActionUp),
		Brake:      input.Has(core.ActionDown),
		TurnLeft:   input.Has(core.ActionLeft),
		TurnRight:  input.Has(core.ActionRight),
	})
	g.engine.Step(g.dtMs)

	return core.StepResult{State: g.State()}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	snap := g.engine.Snapshot()
	w := int(g.cfg.Track.Width)
	h := int(g.cfg.Track.Height)

	// Track bounds
	dst.DrawBox(core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, w+2, h+2))

	// Finish segment
	fy := g.mapOffsetY + int(g.cfg.Track.FinishY)
	fx1 := g.mapOffsetX + int(g.cfg.Track.FinishX1)
	fx2 := g.mapOffsetX + int(g.cfg.Track.FinishX2)
	for x := fx1; x <= fx2; x++ {
		dst.SetColored(x, fy, '=', core.ColorBrightWhite)
	}

	// Car, drawn as a heading glyph
	cx := g.mapOffsetX + int(math.Round(snap.Pos.X))
	cy := g.mapOffsetY + int(math.Round(snap.Pos.Y))
	dst.SetColored(cx, cy, headingRune(snap.Angle), core.ColorBrightRed)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// headingRune picks an arrow glyph for the nearest compass direction.
func headingRune(angle float64) rune {
	// Normalize to [0, 2π)
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch {
	case a < math.Pi/4 || a >= 7*math.Pi/4:
		return '▲'
	case a < 3*math.Pi/4:
		return '▶'
	case a < 5*math.Pi/4:
		return '▼'
	default:
		return '◀'
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.engine != nil {
		snap := g.engine.Snapshot()
		secs := snap.ElapsedMs / 1000.0
		hud = fmt.Sprintf(" Racer — Laps: %d  Speed: %4.1f  Time: %6.1fs  Last crossing: %s",
			snap.Laps, snap.Speed()*1000.0, secs, snap.LastCrossing)
	} else {
		hud = " Racer"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line overlay box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state. The racer has no terminal state;
// laps double as the score.
func (g *Game) State() core.GameState {
	state := core.GameState{Paused: g.paused || g.tooSmall}
	if g.engine != nil {
		state.Score = g.engine.Snapshot().Laps
	}
	return state
}
