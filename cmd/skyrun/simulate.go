package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/velmoga/skyrun/internal/config"
	"github.com/velmoga/skyrun/internal/sim"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagVerbose   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless deterministic simulation",
	Long: `Run the simulation without a terminal UI and print the result.

The run is driven by a simple autopilot that issues a jump command every
--jump-every milliseconds. With the same seed, config, fps and jump
interval the outcome is identical on every machine.

Examples:
  skyrun simulate --ticks 3600 --seed 42
  skyrun simulate --ticks 10000 --jump-every 800 --verbose`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 600, "Autopilot jump interval in milliseconds")
	simulateCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Print every event as it happens")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a runner config file (YAML)")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl := sim.New(cfg.Sim(), sim.NewLCG(seed))
	ctrl.Start()

	dt := 1000.0 / float64(flagFPS)
	nextJumpAt := float64(flagJumpEvery)

	var snap sim.Snapshot
	for tick := 0; tick < flagTicks; tick++ {
		if snap.ElapsedMs >= nextJumpAt {
			ctrl.Jump(snap.ElapsedMs)
			nextJumpAt += float64(flagJumpEvery)
		}

		var events []sim.Event
		snap, events = ctrl.Tick(dt)

		if flagVerbose {
			for _, ev := range events {
				printEvent(snap.ElapsedTicks, ev)
			}
		}

		if snap.Phase == sim.PhaseGameOver {
			break
		}
	}

	fmt.Printf("seed:      %d\n", seed)
	fmt.Printf("ticks:     %d\n", snap.ElapsedTicks)
	fmt.Printf("elapsed:   %.1fs\n", snap.ElapsedMs/1000)
	fmt.Printf("phase:     %s\n", snap.Phase)
	fmt.Printf("score:     %d\n", snap.Score)
	fmt.Printf("level:     %d (%s)\n", snap.Level, snap.LevelName)
	fmt.Printf("power:     %d\n", snap.PowerLevel)
	fmt.Printf("coins:     %d\n", snap.Coins)
	fmt.Printf("lives:     %d\n", snap.Lives)

	if unlocked := ctrl.Unlocked(); len(unlocked) > 0 {
		fmt.Println("achievements:")
		for _, a := range unlocked {
			fmt.Printf("  %s (+%d)\n", a.Name, a.Reward)
		}
	}
}

func printEvent(tick int, ev sim.Event) {
	switch ev := ev.(type) {
	case sim.Jumped:
		fmt.Printf("[%6d] jump\n", tick)
	case sim.DoubleJumped:
		fmt.Printf("[%6d] double jump\n", tick)
	case sim.CoinCollected:
		fmt.Printf("[%6d] coin collected (total %d)\n", tick, ev.Coins)
	case sim.SpikeHit:
		fmt.Printf("[%6d] spike hit, %d lives left\n", tick, ev.LivesLeft)
	case sim.ObstacleDestroyed:
		fmt.Printf("[%6d] spike stomped (+%d)\n", tick, ev.Bonus)
	case sim.LeveledUp:
		fmt.Printf("[%6d] level %d -> %d: %s\n", tick, ev.From, ev.To, ev.Name)
	case sim.PoweredUp:
		fmt.Printf("[%6d] power %d -> %d\n", tick, ev.From, ev.To)
	case sim.AchievementUnlocked:
		fmt.Printf("[%6d] achievement: %s (+%d)\n", tick, ev.Name, ev.Reward)
	case sim.AchievementFaulted:
		fmt.Printf("[%6d] achievement rule %s faulted: %v\n", tick, ev.ID, ev.Err)
	case sim.GameOver:
		fmt.Printf("[%6d] game over: score %d\n", tick, ev.FinalScore)
	}
}
