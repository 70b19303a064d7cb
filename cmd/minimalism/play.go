package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minimalism/internal/games/minimalism"
	"github.com/vovakirdan/minimalism/internal/levels"
	"github.com/vovakirdan/minimalism/internal/platform/tui"
	"github.com/vovakirdan/minimalism/internal/registry"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the levels in order",
	Long: `Start playing from the first level, or from the named level.

Controls:
  Left/Right, A/D   - Run
  Space/Up/W        - Jump
  N/Enter           - Next level (after reaching the exit)
  R                 - Restart the level
  P                 - Pause
  B/Esc             - Leave (while paused or after the exit)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

With --watch, level files under --levels are reloaded when they change;
the running level restarts to pick up the edit.

Examples:
  minimalism play
  minimalism play level04
  minimalism play --jump press --on-last wrap
  minimalism play --levels ./my-levels --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files under --levels when they change")
}

func runPlay(_ *cobra.Command, args []string) {
	a := setup(true)
	defer a.close()

	level := ""
	if len(args) == 1 {
		level = args[0]
		if !a.hasLevel(level) {
			exitf("unknown level %q\nRun 'minimalism levels' to see available levels.", level)
		}
	}

	game, err := registry.Create(minimalism.ID)
	if err != nil {
		exitf("creating game: %v", err)
	}

	opts := tui.GameOptions{Hold: a.hold(), Logger: a.log}

	if flagWatch {
		stop, reloads, err := a.watchLevels()
		if err != nil {
			exitf("%v", err)
		}
		defer stop()
		opts.Reloads = reloads
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}
	opts.Store = store

	if _, err := tui.Run(game, a.runtimeConfig(level), opts); err != nil {
		a.log.Error("game stopped", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// watchLevels forwards changed level files as level names. New files are
// picked up by rescanning the directory.
func (a *app) watchLevels() (stop func(), reloads <-chan string, err error) {
	if flagLevels == "" {
		return nil, nil, fmt.Errorf("--watch needs --levels")
	}

	w, err := levels.NewWatcher(flagLevels)
	if err != nil {
		return nil, nil, fmt.Errorf("watching %s: %w", flagLevels, err)
	}

	out := make(chan string, 4)
	go func() {
		defer close(out)
		for {
			select {
			case p, ok := <-w.Events:
				if !ok {
					return
				}
				name, known := a.loader.NameForFile(p)
				if !known {
					if err := a.loader.Rescan(); err != nil {
						a.log.Warn("level rescan failed", "file", p, "err", err)
						continue
					}
					if name, known = a.loader.NameForFile(p); !known {
						continue
					}
				}
				a.log.Info("level file changed", "level", name, "file", p)
				out <- name
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				a.log.Warn("level watcher", "err", err)
			}
		}
	}()

	a.log.Info("watching levels", "dir", flagLevels)
	return func() { _ = w.Close() }, out, nil
}
