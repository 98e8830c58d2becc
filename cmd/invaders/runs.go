package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsGame  string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent runs",
	Long: `List the most recent runs with their final stage and outcome.

Examples:
  invaders runs
  invaders runs --limit 50
  invaders runs --mode invaders_classic`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
	runsCmd.Flags().StringVar(&flagRunsGame, "mode", "", "Only show runs of this mode")
}

func runRuns(_ *cobra.Command, _ []string) {
	if flagRunsGame != "" && !registry.Exists(flagRunsGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagRunsGame)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsGame, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-18s  %-7s  %-5s  %-6s  %s\n", "Date", "Mode", "Score", "Stage", "Result", "Time")
	fmt.Printf("  %-16s  %-18s  %-7s  %-5s  %-6s  %s\n", "----", "----", "-----", "-----", "------", "----")

	for _, r := range runs {
		played := time.Duration(r.Ticks) * time.Second / time.Duration(flagFPS)
		fmt.Printf("  %-16s  %-18s  %-7d  %-5d  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.GameID,
			r.Score,
			r.Stage,
			r.Outcome,
			played.Round(time.Second),
		)
	}
}
