package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minimalism/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show completed-level results",
	Long: `Without an argument, show a summary of every level.
With a level name, show its top 10 runs.

Scores start at the level maximum and drop for every item collected;
ties are ranked by run time.

Examples:
  minimalism scores
  minimalism scores level02`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	a := setup(false)
	defer a.close()

	if len(args) == 1 && !a.hasLevel(args[0]) {
		exitf("unknown level %q\nRun 'minimalism levels' to see available levels.", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening results database: %v", err)
	}
	defer store.Close()

	if len(args) == 1 {
		showLevelResults(store, args[0])
		return
	}
	showSummary(store, a.loader.Names())
}

// seconds converts a tick count at the configured rate.
func seconds(ticks int) string {
	d := time.Duration(ticks) * time.Second / time.Duration(max(flagFPS, 1))
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func showLevelResults(store *storage.Store, level string) {
	results, err := store.TopResults(level, 10)
	if err != nil {
		exitf("retrieving results: %v", err)
	}

	fmt.Printf("Results - %s\n\n", level)

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minimalism play %s' to set the first result!\n", level)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-5s  %-8s  %s\n", "Rank", "Score", "Items", "Time", "Date")
	fmt.Printf("  %-4s  %-9s  %-5s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-9d  %-5d  %-8s  %s\n",
			i+1, r.Score, r.Items, seconds(r.Ticks), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(level); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func showSummary(store *storage.Store, names []string) {
	stats, err := store.AllLevelStats()
	if err != nil {
		exitf("retrieving results: %v", err)
	}

	maxLen := 5
	for _, n := range names {
		maxLen = max(maxLen, len(n))
	}

	fmt.Println("Results")
	fmt.Println()
	fmt.Printf("  %-*s  %-4s  %-9s  %-6s  %-8s  %s\n", maxLen, "Level", "Runs", "Best", "Fewest", "Fastest", "Last played")
	fmt.Printf("  %-*s  %-4s  %-9s  %-6s  %-8s  %s\n", maxLen, "-----", "----", "----", "------", "-------", "-----------")

	for _, name := range names {
		st, ok := stats[name]
		if !ok {
			fmt.Printf("  %-*s  %-4d  %-9s  %-6s  %-8s  %s\n", maxLen, name, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-*s  %-4d  %-9d  %-6d  %-8s  %s\n", maxLen, name,
			st.Runs, st.BestScore, st.FewestItems, seconds(st.FastestTicks), st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
