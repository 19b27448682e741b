// skyrun is a terminal endless runner: jump over spikes, grab coins,
// level up and unlock abilities.
//
// Usage:
//
//	skyrun play              - Play in the current terminal
//	skyrun simulate          - Run a headless deterministic simulation
//	skyrun scores            - Show best runs and achievements
//	skyrun serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.skyrun/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyrun",
	Short: "Skyrun - an endless runner in your terminal",
	Long: `Skyrun is a terminal endless runner. Jump over spikes, collect
coins, climb the level tiers and unlock the double jump and spike stomp.

Available commands:
  play      - Play in the current terminal
  simulate  - Run a headless deterministic simulation
  scores    - View best runs and achievements
  serve     - Start SSH server for remote play

Examples:
  skyrun play
  skyrun play --difficulty hard
  skyrun simulate --ticks 3600 --seed 42
  skyrun serve --ssh :2222
  skyrun scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyrun/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
