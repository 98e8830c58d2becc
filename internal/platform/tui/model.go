package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// resizable is implemented by games that can adapt to a new screen size
// without restarting.
type resizable interface {
	Resize(width, height int)
}

// ticker is implemented by games that count their own simulated ticks.
type ticker interface {
	Ticks() uint64
}

// Model is the Bubble Tea model for running a game.
// Standalone it quits on Q; embedded in a session it can also return to
// the menu with B once the game is over or paused.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	latch      *inputLatch
	gameState  core.GameState
	embedded   bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		latch:     newInputLatch(cfg.TickRate),
	}
}

// newEmbeddedModel creates a game model that can hand control back to a menu.
func newEmbeddedModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := NewModel(game, store, cfg)
	m.embedded = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recordRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && m.embedded && (m.gameState.GameOver || m.gameState.Paused) {
		m.recordRun(storage.OutcomeQuit)
		m.backToMenu = true
		return m, nil
	}

	m.latch.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if g, ok := m.game.(resizable); ok {
		g.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games with screen-based layouts have to start over
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	in := m.latch.Next()

	// A fresh seed for every new game after game over
	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.latch.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	// A mid-run restart abandons the current run
	if in.Has(core.ActionRestart) {
		m.recordRun(storage.OutcomeQuit)
		m.runSaved = false
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.recordRun(outcome)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the current run once. Quitting before the first tick or
// after the run was already recorded saves nothing.
func (m *Model) recordRun(outcome storage.Outcome) {
	if m.runSaved {
		return
	}
	var ticks uint64
	if t, ok := m.game.(ticker); ok {
		ticks = t.Ticks()
	}
	if outcome == storage.OutcomeQuit && ticks == 0 {
		return
	}
	m.runSaved = true

	//nolint:errcheck // Best-effort save, game continues regardless
	saveRun(m.store, m.game.ID(), m.gameState, outcome, ticks)
}

// saveRun stores the score and the run summary.
func saveRun(store *storage.Store, gameID string, st core.GameState, outcome storage.Outcome, ticks uint64) (string, error) {
	if store == nil {
		return "", nil
	}
	if st.Score > 0 {
		if _, err := store.SaveScore(gameID, st.Score); err != nil {
			return "", err
		}
	}
	return store.SaveRun(storage.Run{
		GameID:  gameID,
		Score:   st.Score,
		Stage:   core.Max(st.Level, 1),
		Outcome: outcome,
		Ticks:   ticks,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
