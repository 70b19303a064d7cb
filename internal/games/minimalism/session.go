package minimalism

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/minimalism/internal/config"
	"github.com/vovakirdan/minimalism/internal/core"
	"github.com/vovakirdan/minimalism/internal/levels"
	"github.com/vovakirdan/minimalism/internal/tilemap"
)

var (
	// ErrLevelLoad wraps any failure to load a level; the session is unchanged.
	ErrLevelLoad = errors.New("level load failed")
	// ErrNoMoreLevels is returned when advancing past the last level with the
	// stop policy.
	ErrNoMoreLevels = errors.New("no more levels")
	// ErrInvalidDelta is returned for a non-positive or non-finite frame delta.
	ErrInvalidDelta = errors.New("invalid frame delta")
	// ErrNotLoaded is returned when stepping before any level was loaded.
	ErrNotLoaded = errors.New("no level loaded")
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// KeyState is the input the simulation polls once per step.
type KeyState interface {
	Has(a core.Action) bool
}

// LayerRoles holds the grid index of each layer role. An index may point at a
// missing layer, which then behaves as empty.
type LayerRoles struct {
	Background int
	Trigger    int
	Collision  int
	Pickup     int
}

// Default role indices used when a level does not name its layers.
var defaultRoles = LayerRoles{Background: 0, Trigger: 1, Collision: 2, Pickup: 3}

func resolveRoles(g *tilemap.Grid, names config.LayersConfig) LayerRoles {
	pick := func(name string, fallback int) int {
		if _, idx := g.LayerByName(name); idx >= 0 {
			return idx
		}
		return fallback
	}
	return LayerRoles{
		Background: pick(names.Background, defaultRoles.Background),
		Trigger:    pick(names.Trigger, defaultRoles.Trigger),
		Collision:  pick(names.Collision, defaultRoles.Collision),
		Pickup:     pick(names.Pickup, defaultRoles.Pickup),
	}
}

// Session owns one play-through: the current level's grid, the actor and the
// counters. It is not safe for concurrent use; callers step and read it from
// one goroutine.
type Session struct {
	cfg      config.Config
	provider levels.Provider

	index int
	level *levels.Level
	grid  *tilemap.Grid
	query *tilemap.Query
	roles LayerRoles

	actor    Actor
	camera   Camera
	score    int
	items    int
	complete bool
	phase    Phase
	ticks    int

	pitch    float64 // pickup pitch offset, kept across resets
	jumpHeld bool    // jump was held last step, for press mode
	events   []core.Event
	removed  []removal // tiles removed on the current grid
}

// NewSession creates a session in the loading phase. Call Reset or Start to
// load the first level.
func NewSession(cfg config.Config, provider levels.Provider) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errors.New("minimalism: nil level provider")
	}
	return &Session{cfg: cfg, provider: provider, phase: PhaseLoading}, nil
}

// Reset loads the level at index and restarts it from scratch. On failure
// the session is left exactly as it was.
func (s *Session) Reset(index int) error {
	names := s.provider.Names()
	if index < 0 || index >= len(names) {
		return fmt.Errorf("%w: index %d: %w", ErrLevelLoad, index, levels.ErrUnknownLevel)
	}

	lvl, err := s.provider.Load(names[index])
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLevelLoad, names[index], err)
	}
	if lvl == nil || lvl.Grid == nil {
		return fmt.Errorf("%w: %s: %w", ErrLevelLoad, names[index], levels.ErrMalformedLevel)
	}

	s.index = index
	s.level = lvl
	s.grid = lvl.Grid
	s.query = tilemap.NewQuery(lvl.Grid)
	s.roles = resolveRoles(lvl.Grid, s.cfg.Layers)
	s.removed = s.removed[:0]

	p := s.cfg.Player
	s.actor = Actor{
		Position: core.Vec2{X: p.SpawnX, Y: p.SpawnY},
		Width:    p.Width,
		Height:   p.Height,
	}
	s.score = s.cfg.Scoring.MaxScore
	s.items = 0
	s.complete = false
	s.ticks = 0
	s.jumpHeld = false
	s.phase = PhasePlaying

	s.camera = newCamera(
		float64(lvl.Grid.PixelWidth()), float64(lvl.Grid.PixelHeight()),
		s.cfg.Viewport.Width, s.cfg.Viewport.Height,
	)
	s.camera.Follow(s.actor.Position)
	return nil
}

// Start resets to the level with the given name.
func (s *Session) Start(name string) error {
	for i, n := range s.provider.Names() {
		if n == name {
			return s.Reset(i)
		}
	}
	return fmt.Errorf("%w: %q: %w", ErrLevelLoad, name, levels.ErrUnknownLevel)
}

// Restart resets the current level.
func (s *Session) Restart() error {
	return s.Reset(s.index)
}

// Advance moves to the next level in order. Past the last level it either
// wraps to the first level or returns ErrNoMoreLevels, per configuration.
func (s *Session) Advance() error {
	next := s.index + 1
	if next >= len(s.provider.Names()) {
		if s.cfg.Levels.OnLast != config.OnLastWrap {
			return ErrNoMoreLevels
		}
		next = 0
	}
	return s.Reset(next)
}

// Step advances the simulation by dt seconds and returns the events it
// produced. The returned slice is reused by the next Step.
func (s *Session) Step(in KeyState, dt float64) ([]core.Event, error) {
	s.events = s.events[:0]

	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}

	if in.Has(core.ActionRestart) {
		if err := s.Restart(); err != nil {
			return nil, err
		}
	}

	switch s.phase {
	case PhaseLoading:
		return nil, ErrNotLoaded
	case PhaseCompleted:
		s.jumpHeld = in.Has(core.ActionJump)
		if in.Has(core.ActionAdvance) {
			if err := s.Advance(); err != nil {
				return nil, err
			}
		}
		return s.events, nil
	}

	s.applyInput(in)

	a := &s.actor
	a.Velocity = a.Velocity.Scale(dt)

	s.resolveX()
	s.resolveY()
	s.resolveInteractions()

	if a.Grounded {
		a.Velocity.X *= s.cfg.Player.Damping
	}
	a.Position = a.Position.Add(a.Velocity)
	a.Velocity = a.Velocity.Scale(1 / dt)

	s.camera.Follow(a.Position)
	s.ticks++
	return s.events, nil
}

// applyInput turns held actions into velocity changes, then applies gravity
// and the horizontal speed limits. Velocities are per second here.
func (s *Session) applyInput(in KeyState) {
	a := &s.actor
	p := s.cfg.Player

	jump := in.Has(core.ActionJump)
	if jump && a.Grounded && (s.cfg.Input.JumpMode != config.JumpPress || !s.jumpHeld) {
		a.Velocity.Y += p.JumpVelocity
		a.Grounded = false
		s.emit(core.Event{Kind: core.EventJumped})
	}
	s.jumpHeld = jump

	if a.Grounded {
		if in.Has(core.ActionLeft) {
			a.Velocity.X = -p.MaxVelocity
		}
		if in.Has(core.ActionRight) {
			a.Velocity.X = p.MaxVelocity
		}
	} else {
		air := p.MaxVelocity * p.AirControl
		if in.Has(core.ActionLeft) && a.Velocity.X >= 0 {
			a.Velocity.X = -air
		}
		if in.Has(core.ActionRight) && a.Velocity.X <= 0 {
			a.Velocity.X = air
		}
	}

	a.Velocity.Y += s.cfg.Physics.Gravity

	if math.Abs(a.Velocity.X) > p.MaxVelocity {
		a.Velocity.X = core.Signum(a.Velocity.X) * p.MaxVelocity
	}
	if math.Abs(a.Velocity.X) < s.cfg.Physics.MinSpeed {
		a.Velocity.X = 0
	}
}

func (s *Session) emit(e core.Event) {
	s.events = append(s.events, e)
}

// Actor returns a copy of the actor state.
func (s *Session) Actor() Actor { return s.actor }

// Camera returns the clamped camera.
func (s *Session) Camera() Camera { return s.camera }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Items returns the number of items collected on this level.
func (s *Session) Items() int { return s.items }

// Complete reports whether the level trigger has been touched.
func (s *Session) Complete() bool { return s.complete }

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Ticks returns the number of simulated steps since the level started.
func (s *Session) Ticks() int { return s.ticks }

// LevelIndex returns the index of the current level.
func (s *Session) LevelIndex() int { return s.index }

// IsLastLevel reports whether the current level is the last in order.
func (s *Session) IsLastLevel() bool { return s.index == len(s.provider.Names())-1 }

// LevelName returns the current level name, or empty before the first load.
func (s *Session) LevelName() string {
	if s.level == nil {
		return ""
	}
	return s.level.Name
}

// Message returns the current level's message, possibly empty.
func (s *Session) Message() string {
	if s.level == nil {
		return ""
	}
	return s.level.Message
}

// Grid returns the live tile grid. Read it only between steps.
func (s *Session) Grid() *tilemap.Grid { return s.grid }

// Roles returns the layer index of each role in the current grid.
func (s *Session) Roles() LayerRoles { return s.roles }

// Pitch returns the current pickup pitch offset.
func (s *Session) Pitch() float64 { return s.pitch }
