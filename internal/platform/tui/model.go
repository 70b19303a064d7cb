package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minimalism/internal/core"
	"github.com/vovakirdan/minimalism/internal/registry"
	"github.com/vovakirdan/minimalism/internal/storage"
)

// DefaultHold is how long a movement key counts as held after a press.
const DefaultHold = 150 * time.Millisecond

// GameOptions configures a GameModel.
type GameOptions struct {
	Store    *storage.Store     // nil disables result saving
	Hold     time.Duration      // held-key window, DefaultHold if zero
	Reloads  <-chan string      // names of levels changed on disk, optional
	Logger   *log.Logger        // nil discards logs
	Renderer *lipgloss.Renderer // nil uses the default renderer
	ShotDir  string             // screenshot directory, ~/.minimalism/screenshots if empty
}

// levelChangedMsg reports a level file that changed on disk.
type levelChangedMsg string

// GameModel runs a game: ticks, key handling, result saving and hot reload.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       GameOptions
	log        *log.Logger
	palette    palette
	keyMapper  *KeyMapper
	held       *HeldKeys
	gameState  core.GameState
	loop       int64
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		opts:      opts,
		log:       logger,
		palette:   newPalette(opts.Renderer),
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(opts.Hold),
		loop:      nextLoop(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate, m.loop), waitForReload(m.opts.Reloads))
}

// waitForReload blocks on the next changed level. A nil or closed channel
// stops the loop.
func waitForReload(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		name, ok := <-ch
		if !ok {
			return nil
		}
		return levelChangedMsg(name)
	}
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case levelChangedMsg:
		if r, ok := m.game.(registry.Reloader); ok {
			if r.Reload(string(msg)) {
				m.held.Reset()
				m.gameState = m.game.State()
			}
		}
		return m, waitForReload(m.opts.Reloads)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.canLeave() {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	m.held.Press(action, time.Now())
	return m, nil
}

// canLeave reports whether Back returns to the menu: only while paused,
// after completing a level or when no level is running.
func (m GameModel) canLeave() bool {
	s := m.gameState
	return s.Paused || s.Complete || s.Finished || s.Level == ""
}

// handleTick runs one simulation step and saves finished runs.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame(now))
	m.gameState = result.State

	for _, e := range result.Events {
		if e.Kind == core.EventLevelCompleted {
			m.saveResult(result.State)
		}
	}

	return m, tickCmd(m.config.TickRate, m.loop)
}

func (m *GameModel) saveResult(s core.GameState) {
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveResult(storage.Result{
		Level: s.Level,
		Score: s.Score,
		Items: s.Items,
		Ticks: s.Ticks,
	})
	if err != nil {
		m.log.Error("result not saved", "level", s.Level, "err", err)
		return
	}
	m.log.Info("result saved", "level", s.Level, "score", s.Score, "items", s.Items, "ticks", s.Ticks)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ShotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.log.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".minimalism", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), m.gameState.Level, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.palette.render(m.screen)
}

// State returns the game state after the most recent tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the user quits or goes back.
// It reports whether the user asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	p := tea.NewProgram(NewGameModel(game, cfg, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
