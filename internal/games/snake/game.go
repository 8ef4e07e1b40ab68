package snake

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

// Game adapts the Snake engine to the platform contract: it owns the engine,
// maps input actions to direction changes, paces engine ticks and draws from
// the engine snapshot.
type Game struct {
	engine     *Engine
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager

	tick       uint64
	moveTicker int

	paused   bool
	tooSmall bool

	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadSnake(configPath)
	if err != nil {
		gameCfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = gameCfg
	g.difficulty = config.NewDifficultyManager(gameCfg.Difficulty)

	g.tick = 0
	g.moveTicker = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	cols := gameCfg.Grid.Cols
	rows := gameCfg.Grid.Rows

	// The grid must fit the screen with room for the HUD.
	requiredW := cols + 2
	requiredH := rows + g.hudHeight + 1
	if cfg.ScreenW < requiredW || cfg.ScreenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.mapOffsetX = (cfg.ScreenW - cols) / 2
	g.mapOffsetY = g.hudHeight

	g.engine = NewEngine(Options{
		Cols:          cols,
		Rows:          rows,
		InitialLength: gameCfg.Player.InitialLength,
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
		g.moveTicker = 0
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

	// Advance the engine on its move interval; difficulty shortens it.
	g.moveTicker++
	if g.moveTicker >= g.moveInterval(snap.Score) {
		g.moveTicker = 0
		g.engine.Step()
	}

	return core.StepResult{State: g.State()}
}

// moveInterval returns the platform ticks between engine steps for the
// given score, shrinking with difficulty down to a floor of 2.
func (g *Game) moveInterval(score int) int {
	base := g.cfg.Player.MoveEveryTicks
	if base < 1 {
		base = 1
	}
	if !g.difficulty.IsEnabled() {
		return base
	}
	level := g.difficulty.Level(score, int(g.tick))
	interval := base - int(level*float64(base-2))
	if interval < 2 {
		interval = 2
	}
	return interval
}

// processInput maps directional actions to engine direction changes.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.engine.ChangeDirection(DirUp)
	case input.Has(core.ActionDown):
		g.engine.ChangeDirection(DirDown)
	case input.Has(core.ActionLeft):
		g.engine.ChangeDirection(DirLeft)
	case input.Has(core.ActionRight):
		g.engine.ChangeDirection(DirRight)
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

	// Board frame. The playfield wraps, so the frame is a hint, not a wall.
	frame := core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, snap.Cols+2, snap.Rows+2)
	dst.DrawBox(frame)

	// Food
	if snap.HasFood {
		dst.SetColored(g.mapOffsetX+snap.Food.X, g.mapOffsetY+snap.Food.Y, '*', core.ColorBrightYellow)
	}

	// Snake
	for i, seg := range snap.Body {
		r := 'o'
		c := core.ColorGreen
		if i == 0 {
			r = 'O'
			c = core.ColorBrightGreen
		}
		dst.SetColored(g.mapOffsetX+seg.X, g.mapOffsetY+seg.Y, r, c)
	}

	switch {
	case snap.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.engine != nil {
		snap := g.engine.Snapshot()
		hud = fmt.Sprintf(" Snake — Score: %d  Length: %d", snap.Score, len(snap.Body))
	} else {
		hud = " Snake"
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
