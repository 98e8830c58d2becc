// Package invaders implements a fixed-tick space invaders simulation:
// a formation of enemies sweeps across the canvas and descends, the player
// shoots it down stage by stage, and the last stage is a single boss.
//
// The simulation works in canvas units (800x600 by default) and knows nothing
// about terminals. Game adapts a Session to the registry.Game interface and
// scales the canvas onto a character screen.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform's game interface.
type Game struct {
	mode    config.Mode
	session *Session
	paused  bool

	runtime        core.RuntimeConfig
	screenTooSmall bool
}

// Minimum screen size for a readable playfield.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// New creates the campaign game: growing grids and a boss on the last stage.
func New() *Game {
	return &Game{mode: config.ModeCampaign}
}

// NewClassic creates the classic single-stage game without a boss.
func NewClassic() *Game {
	return &Game{mode: config.ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == config.ModeClassic {
		return "invaders_classic"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == config.ModeClassic {
		return "Invaders (Classic)"
	}
	return "Invaders"
}

// Reset loads the config and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	config.ApplyModePreset(&cfg, g.mode)

	g.session = NewSession(cfg, runtime.TickRate, runtime.Seed)
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

// Resize adapts to a new screen size. The canvas is scaled at render
// time, so the run continues.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// Ticks returns the number of simulated ticks in the current run.
func (g *Game) Ticks() uint64 {
	if g.session == nil {
		return 0
	}
	return g.session.Tick()
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.paused = false
		report := g.session.Step(Intent{Restart: true})
		return g.result(report)
	}

	// Pause only applies while the formation is live
	if in.Has(core.ActionPause) && g.session.Phase() == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	report := g.session.Step(IntentFromInput(in))
	return g.result(report)
}

// IntentFromInput maps platform actions to a simulation intent.
// Holding both directions cancels movement.
func IntentFromInput(in core.InputFrame) Intent {
	var intent Intent
	left := in.Has(core.ActionLeft)
	right := in.Has(core.ActionRight)
	switch {
	case left && !right:
		intent.Move = MoveLeft
	case right && !left:
		intent.Move = MoveRight
	}
	intent.Fire = in.Has(core.ActionFire)
	intent.Restart = in.Has(core.ActionRestart)
	return intent
}

func (g *Game) result(report TickReport) core.StepResult {
	var events []string
	if len(report.Events) > 0 {
		events = make([]string, len(report.Events))
		for i, e := range report.Events {
			events[i] = e.String()
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Stage(),
		GameOver: phase.Terminal(),
		Won:      phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_classic", func() registry.Game {
		return NewClassic()
	})
}
