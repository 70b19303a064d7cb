// minimalism is a tile-based platformer for the terminal.
//
// Usage:
//
//	minimalism play [level]     - Play from the first level, or from the named one
//	minimalism menu             - Pick a level interactively
//	minimalism levels [--check] - List levels, optionally validating every file
//	minimalism scores [level]   - Show completed-level results
//	minimalism serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.minimalism/scores.db)
//	--config <path>     - Use a custom config YAML
//	--levels <dir>      - Load levels from a directory instead of the built-in set
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game
	_ "github.com/vovakirdan/minimalism/internal/games/minimalism"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLevels   string
	flagLogLevel string
	flagLogFile  string
	flagJump     string
	flagOnLast   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minimalism",
	Short: "Minimalism - a tiny platformer in your terminal",
	Long: `Minimalism is a tile-based platformer played in the terminal.
Run and jump to the exit of each level. Every item you pick up costs
points, so the best score collects as little as possible.

Available commands:
  play     - Play from the first level, or a named one
  menu     - Interactive level picker
  levels   - List and validate levels
  scores   - View completed-level results
  serve    - Start SSH server for remote play

Examples:
  minimalism play
  minimalism play level03
  minimalism play --levels ./my-levels --watch
  minimalism levels --check --levels ./my-levels
  minimalism scores level02
  minimalism serve --ssh :2222`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.minimalism/scores.db", "Path to results database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagLevels, "levels", "", "Directory of .tmx/.yaml levels (default: built-in levels)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default: stderr, or ~/.minimalism/minimalism.log while playing)")
	pf.StringVar(&flagJump, "jump", "", "Jump mode override: held or press")
	pf.StringVar(&flagOnLast, "on-last", "", "After the last level: stop or wrap")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
