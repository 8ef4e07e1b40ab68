package bubble

import (
	"fmt"

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

// bubbleColors maps a color index to a screen color.
var bubbleColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorWhite,
}

// Game adapts the Bubble engine to the platform contract: it owns the
// engine, maps input actions to aim and shoot calls, and draws from the
// engine snapshot.
type Game struct {
	engine     *Engine
	cfg        config.BubbleConfig
	difficulty *config.DifficultyManager

	tick uint64
	dtMs float64

	paused   bool
	tooSmall bool

	hudHeight    int
	boardOffsetX int
	boardOffsetY int
}

// New creates a new Bubble game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("bubble", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "bubble"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bubble"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadBubble(configPath)
	if err != nil {
		gameCfg = config.DefaultBubbleConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBubblePreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = gameCfg
	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty)

	g.tick = 0
	g.paused = false
	g.hudHeight = 2
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 30
	}
	g.dtMs = 1000.0 / float64(tickRate)

	cols := gameCfg.Board.Cols
	rows := gameCfg.Board.Rows

	// The board, the shooter row below it and the HUD must all fit.
	requiredW := cols + 2
	requiredH := rows + g.hudHeight + 4
	if cfg.ScreenW < requiredW || cfg.ScreenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardOffsetX = (cfg.ScreenW - cols) / 2
	g.boardOffsetY = g.hudHeight

	g.engine = NewEngine(Options{
		Cols:       cols,
		Rows:       rows,
		SeedRows:   gameCfg.Board.SeedRows,
		Colors:     gameCfg.Board.Colors,
		ShotSpeed:  gameCfg.Shooter.ShotSpeed,
		ArcLimit:   gameCfg.Shooter.ArcLimit,
		AimSpeed:   gameCfg.Shooter.AimSpeed,
		RowShiftMs: float64(gameCfg.Timing.RowShiftMs),
	}, core.NewRand(cfg.Seed))
}

// Step advances the game by one platform tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	snap := g.engine.Snapshot()

	// Handle restart
	if input.Has(core.ActionRestart) && snap.GameOver {
		g.engine.Reset()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if snap.GameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	g.engine.SetRowShiftInterval(g.rowShiftInterval(snap.Score))
	g.engine.Step(g.dtMs)

	return core.StepResult{State: g.State()}
}

// rowShiftInterval returns the delay between row shifts for the given
// score. Difficulty progression shortens it down to a floor.
func (g *Game) rowShiftInterval(score int) float64 {
	base := float64(g.cfg.Timing.RowShiftMs)
	if !g.difficulty.IsEnabled() {
		return base
	}
	level := g.difficulty.Level(score, int(g.tick))
	interval := base * (1 - 0.6*level)
	floor := base * 0.35
	if interval < floor {
		interval = floor
	}
	return interval
}

// processInput maps actions to aim rotation and shooting. The aim
// target leads the smoothed angle so a held key keeps it moving.
func (g *Game) processInput(input core.InputFrame) {
	step := g.cfg.Shooter.AimSpeed * g.dtMs * 2
	if input.Has(core.ActionLeft) {
		g.engine.Rotate(-step)
	}
	if input.Has(core.ActionRight) {
		g.engine.Rotate(step)
	}
	if input.Has(core.ActionFire) {
		g.engine.Shoot()
	}
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

	// Frame with one extra row for the shooter.
	frame := core.NewRect(g.boardOffsetX-1, g.boardOffsetY-1, snap.Cols+2, snap.Rows+3)
	dst.DrawBox(frame)

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			c := snap.CellAt(col, row)
			if c < 0 {
				continue
			}
			dst.SetColored(g.boardOffsetX+col, g.boardOffsetY+row, 'o', colorFor(c))
		}
	}

	if snap.HasProjectile {
		px := g.boardOffsetX + int(snap.Projectile.Pos.X)
		py := g.boardOffsetY + int(snap.Projectile.Pos.Y)
		dst.SetColored(px, py, '*', colorFor(snap.Projectile.Color))
	}

	g.renderShooter(dst, snap)

	switch {
	case snap.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderShooter draws the launcher, the loaded bubble and the aim
// indicator on the row below the board.
func (g *Game) renderShooter(dst *core.Screen, snap Snapshot) {
	sx := g.boardOffsetX + snap.Cols/2
	sy := g.boardOffsetY + snap.Rows

	aim := '|'
	switch {
	case snap.AimAngle < -0.2:
		aim = '\\'
	case snap.AimAngle > 0.2:
		aim = '/'
	}
	dst.Set(sx, sy, aim)
	dst.SetColored(sx-1, sy, 'o', colorFor(snap.Loaded))
	dst.SetColored(sx+2, sy, 'o', colorFor(snap.Next))
	dst.DrawText(sx+3, sy, " next")
}

func colorFor(c int8) core.Color {
	if c < 0 || int(c) >= len(bubbleColors) {
		return core.ColorWhite
	}
	return bubbleColors[c]
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.engine != nil {
		snap := g.engine.Snapshot()
		shiftIn := (g.rowShiftInterval(snap.Score) - snap.ShiftElapsedMs) / 1000
		if shiftIn < 0 {
			shiftIn = 0
		}
		hud = fmt.Sprintf(" Bubble — Score: %d  Shift in: %.0fs", snap.Score, shiftIn)
	} else {
		hud = " Bubble"
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

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{Paused: g.paused || g.tooSmall}
	if g.engine != nil {
		snap := g.engine.Snapshot()
		state.Score = snap.Score
		state.GameOver = snap.GameOver
	}
	return state
}
