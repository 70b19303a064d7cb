package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minimalism/internal/games/minimalism"
	"github.com/vovakirdan/minimalism/internal/platform/tui"
	"github.com/vovakirdan/minimalism/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level to play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the selected level and
Tab to browse results. Leaving a level (B/Esc while paused or after the
exit) returns to the menu.

Examples:
  minimalism menu
  minimalism menu --levels ./my-levels
  minimalism menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a := setup(true)
	defer a.close()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := a.runtimeConfig("")
	title := "Minimalism"
	if g, err := registry.Create(minimalism.ID); err == nil {
		title = g.Title()
	}

	for {
		menuResult, err := tui.RunMenu(title, a.loader.Names(), store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, a.loader.Names(), flagFPS, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := registry.Create(minimalism.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}

		rt := cfg
		rt.Level = menuResult.Level
		back, err := tui.Run(game, rt, tui.GameOptions{Store: store, Hold: a.hold(), Logger: a.log})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
