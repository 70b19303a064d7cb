package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/minimalism/internal/config"
	"github.com/vovakirdan/minimalism/internal/core"
	"github.com/vovakirdan/minimalism/internal/games/minimalism"
	"github.com/vovakirdan/minimalism/internal/levels"
	"github.com/vovakirdan/minimalism/internal/storage"
)

// app holds what every command needs: configuration, levels and logging.
type app struct {
	cfg    config.Config
	loader *levels.Loader
	log    *log.Logger
	closer io.Closer // log file, nil for stderr
}

// exitf prints an error and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// setup loads config and levels and builds the root logger. Interactive
// commands log to a file because the TUI owns the terminal.
func setup(interactive bool) *app {
	logger, closer, err := newLogger(interactive)
	if err != nil {
		exitf("%v", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	overrides := config.Overrides{JumpMode: flagJump, OnLast: flagOnLast}
	if err := overrides.Apply(&cfg); err != nil {
		exitf("%v", err)
	}

	loader, err := levels.Open(flagLevels, cfg)
	if err != nil {
		exitf("%v", err)
	}
	logger.Debug("levels loaded", "source", levelSource(), "count", len(loader.Names()))

	a := &app{cfg: cfg, loader: loader, log: logger, closer: closer}
	minimalism.Configure(minimalism.Options{
		Config:   cfg,
		Provider: loader,
		Logger:   logger.WithPrefix("game"),
	})
	return a
}

func (a *app) close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

func levelSource() string {
	if flagLevels == "" {
		return "built-in"
	}
	return flagLevels
}

// newLogger configures the root logger from --log-level and --log-file.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := flagLogFile
	if path == "" && interactive {
		path = filepath.Join(config.UserDir(), "minimalism.log")
	}

	var w io.Writer = os.Stderr
	var closer io.Closer
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "minimalism",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the results database. Games still run without it.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.log.Warn("results will not be saved", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the game to the terminal.
func (a *app) runtimeConfig(level string) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Level:    level,
	}
}

// hold returns the configured held-key window.
func (a *app) hold() time.Duration {
	return time.Duration(a.cfg.Input.HoldMS) * time.Millisecond
}

// hasLevel reports whether name is one of the loaded levels.
func (a *app) hasLevel(name string) bool {
	return slices.Contains(a.loader.Names(), name)
}
