// Package sim implements the deterministic run simulation behind the
// runner mini-game: gravity physics, procedural obstacle streaming,
// collision resolution, and the layered progression state machine
// (score, level, power level, abilities, achievements).
//
// The core is pure compute over in-memory state. It never blocks, never
// renders, and never persists: the host drives it one Tick at a time
// and reacts to the snapshot and event list each tick returns. All
// randomness flows through an injected RNG, so a seed plus an input
// sequence fully determines a run.
package sim

// Config carries the run tuning. World coordinates are pixels with the
// origin at the top-left and Y growing downward.
type Config struct {
	GroundY         float64 // Y of the ground line
	SpawnX          float64 // Baseline x where a fresh stream starts spawning
	OffscreenMargin float64 // Distance past the left edge before obstacles drop

	PlayerX float64 // Fixed horizontal position of the player
	PlayerW float64
	PlayerH float64

	StartLives         int
	MinLookAhead       int     // Obstacles kept ahead of the player while playing
	DoubleJumpWindowMs float64 // Max gap between the two jump commands
	DestroyMargin      float64 // Stomp tolerance above a spike's top
	CoinScore          int
	DestroyBonus       int
	ScorePerDistance   float64 // Score points per world unit traveled

	Levels       []Level
	Achievements []Achievement
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() Config {
	return Config{
		GroundY:            300,
		SpawnX:             900,
		OffscreenMargin:    100,
		PlayerX:            100,
		PlayerW:            40,
		PlayerH:            60,
		StartLives:         3,
		MinLookAhead:       5,
		DoubleJumpWindowMs: 300,
		DestroyMargin:      20,
		CoinScore:          50,
		DestroyBonus:       100,
		ScorePerDistance:   0.1,
		Levels:             DefaultLevels,
		Achievements:       DefaultAchievements,
	}
}
