// Package minimalism implements a tile-based platformer: run and jump
// through a level, collect items, break blocks from below and reach the
// exit. Each item costs points, so the best score collects the fewest.
//
// Session is the pure simulation. Game adapts it to the registry.Game
// interface used by the terminal platform.
package minimalism

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minimalism/internal/config"
	"github.com/vovakirdan/minimalism/internal/core"
	"github.com/vovakirdan/minimalism/internal/levels"
	"github.com/vovakirdan/minimalism/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "minimalism"

// Options configures games created through the registry.
type Options struct {
	Config   config.Config
	Provider levels.Provider // nil means the embedded levels
	Logger   *log.Logger     // nil discards logs
}

var options = Options{Config: config.DefaultConfig()}

// Configure sets the options used by games created after this call.
func Configure(opts Options) {
	options = opts
}

// Game implements registry.Game on top of a Session.
type Game struct {
	opts    Options
	log     *log.Logger
	session *Session
	hud     *HUD
	runtime core.RuntimeConfig
	dt      float64

	paused   bool
	finished bool
	loadErr  error
}

// New creates a game with the given options.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{opts: opts, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Minimalism"
}

// Reset starts the level named in runtime.Level, or the first level.
// Load failures are shown on screen rather than returned.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = 1.0 / float64(max(runtime.TickRate, 1))
	g.paused = false
	g.finished = false
	g.loadErr = nil

	if g.session == nil {
		if err := g.newSession(); err != nil {
			g.fail(err)
			return
		}
	}

	var err error
	if runtime.Level != "" {
		err = g.session.Start(runtime.Level)
	} else {
		err = g.session.Reset(0)
	}
	if err != nil {
		g.fail(err)
		return
	}
	g.levelStarted()
}

func (g *Game) newSession() error {
	provider := g.opts.Provider
	if provider == nil {
		loader, err := levels.Open("", g.opts.Config)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLevelLoad, err)
		}
		provider = loader
	}
	s, err := NewSession(g.opts.Config, provider)
	if err != nil {
		return err
	}
	g.session = s
	return nil
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.log.Error("level load failed", "err", err)
}

func (g *Game) levelStarted() {
	g.loadErr = nil
	g.hud = NewHUD(g.session.Score())
	g.log.Info("level started",
		"level", g.session.LevelName(),
		"index", g.session.LevelIndex(),
		"size", fmt.Sprintf("%dx%d", g.session.Grid().Width(), g.session.Grid().Height()))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.session.Phase() == PhaseLoading {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionRestart):
		g.paused = false
	case in.Has(core.ActionPause) && g.session.Phase() == PhasePlaying:
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	index := g.session.LevelIndex()
	events, err := g.safeStep(in)
	if err != nil {
		g.handleStepError(err)
	}
	if g.session.LevelIndex() != index || (in.Has(core.ActionRestart) && err == nil) {
		g.finished = false
		g.levelStarted()
	}

	var out []core.Event
	if len(events) > 0 {
		out = make([]core.Event, len(events))
		copy(out, events)
	}
	for _, e := range out {
		g.onEvent(e)
	}
	g.hud.Update(float32(g.dt))

	return core.StepResult{State: g.State(), Events: out}
}

// safeStep runs one session step, rolling back to the state before the
// step if it panics.
func (g *Game) safeStep(in core.InputFrame) (events []core.Event, err error) {
	snap := g.session.Snapshot()
	defer func() {
		if r := recover(); r != nil {
			g.session.Restore(snap)
			events = nil
			err = fmt.Errorf("step panicked: %v", r)
		}
	}()
	return g.session.Step(in, g.dt)
}

func (g *Game) handleStepError(err error) {
	switch {
	case errors.Is(err, ErrNoMoreLevels):
		if !g.finished {
			g.log.Info("last level completed", "level", g.session.LevelName())
		}
		g.finished = true
	case errors.Is(err, ErrLevelLoad):
		g.fail(err)
	default:
		g.log.Error("frame skipped", "err", err, "level", g.session.LevelName())
	}
}

func (g *Game) onEvent(e core.Event) {
	g.log.Debug("event", "kind", e.Kind, "level", g.session.LevelName(), "col", e.Col, "row", e.Row, "pitch", e.Pitch)

	switch e.Kind {
	case core.EventItemPickedUp:
		g.hud.SetScore(g.session.Score())
	case core.EventLevelCompleted:
		g.hud.JumpScore(g.session.Score())
		g.hud.ShowBanner(-bannerHeight, (g.runtime.ScreenH-bannerHeight)/2)
		g.log.Info("level completed",
			"level", g.session.LevelName(),
			"score", g.session.Score(),
			"items", g.session.Items(),
			"ticks", g.session.Ticks())
	}
}

// Reload restarts the current level if it is the named one, picking up a
// changed level file. It reports whether a restart happened.
func (g *Game) Reload(name string) bool {
	if g.session == nil {
		return false
	}
	if inv, ok := g.session.provider.(interface{ Invalidate(string) }); ok {
		inv.Invalidate(name)
	}
	if g.session.LevelName() != name {
		return false
	}
	if err := g.session.Restart(); err != nil {
		g.fail(err)
		return false
	}
	g.log.Info("level reloaded", "level", name)
	g.levelStarted()
	return true
}

// Session exposes the running session, nil until the first successful setup.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Items:    g.session.Items(),
		Ticks:    g.session.Ticks(),
		Level:    g.session.LevelName(),
		Complete: g.session.Complete(),
		Finished: g.finished,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New(options)
	})
}
