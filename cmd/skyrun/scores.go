package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/velmoga/skyrun/internal/sim"
	"github.com/velmoga/skyrun/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs and achievements",
	Long: `Display the top 10 runs and the achievement unlock counts.

Examples:
  skyrun scores
  skyrun scores --db ./runs.db`,
	Run: runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyrun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-16s  %-6s  %-8s  %s\n", "Rank", "Score", "Level", "Coins", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-16s  %-6s  %-8s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, r := range runs {
		dur := (time.Duration(r.DurationMs) * time.Millisecond).Truncate(time.Second)
		levelStr := fmt.Sprintf("%d %s", r.Level, r.LevelName)
		fmt.Printf("  %-4d  %-8d  %-16s  %-6d  %-8s  %s\n",
			i+1, r.Score, levelStr, r.Coins, dur, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetRunStats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d   Best: %d   Avg: %.0f   Coins: %d\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalCoins)
	}

	counts, err := store.UnlockCounts()
	if err != nil || len(counts) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Achievements")
	fmt.Println()
	for _, def := range sim.DefaultAchievements {
		if n := counts[string(def.ID)]; n > 0 {
			fmt.Printf("  %-22s +%-5d x%d\n", def.Name, def.Reward, n)
		}
	}
}
