package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagCheck bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available levels",
	Long: `Show the levels in play order with their size and message.

With --check every level file is parsed and all failures are reported;
the command exits with status 1 if any level is broken.

Examples:
  minimalism levels
  minimalism levels --levels ./my-levels --check`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagCheck, "check", false, "Parse every level and report errors")
}

func runLevels(_ *cobra.Command, _ []string) {
	a := setup(false)
	defer a.close()

	if flagCheck {
		if err := a.loader.Check(); err != nil {
			fmt.Fprintln(os.Stderr, "Broken levels:")
			for _, e := range splitJoined(err) {
				fmt.Fprintf(os.Stderr, "  %v\n", e)
			}
			os.Exit(1)
		}
	}

	names := a.loader.Names()
	fmt.Printf("Levels (%s):\n\n", levelSource())

	maxLen := 5 // "Level" header
	for _, n := range names {
		maxLen = max(maxLen, len(n))
	}

	fmt.Printf("  %-3s  %-*s  %-7s  %s\n", "#", maxLen, "Level", "Size", "Message")
	fmt.Printf("  %-3s  %-*s  %-7s  %s\n", "-", maxLen, "-----", "----", "-------")

	for i, name := range names {
		lvl, err := a.loader.Load(name)
		if err != nil {
			fmt.Printf("  %-3d  %-*s  %-7s  %v\n", i+1, maxLen, name, "?", err)
			continue
		}
		size := fmt.Sprintf("%dx%d", lvl.Grid.Width(), lvl.Grid.Height())
		fmt.Printf("  %-3d  %-*s  %-7s  %s\n", i+1, maxLen, name, size, lvl.Message)
	}

	if flagCheck {
		fmt.Println()
		fmt.Printf("All %d levels OK.\n", len(names))
	}
}

// splitJoined unpacks an errors.Join result.
func splitJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
