package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default tuning, used as the
// last-resort fallback when even the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			GroundY:         300,
			SpawnX:          900,
			OffscreenMargin: 100,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  40,
			Height: 60,
		},
		Rules: RulesConfig{
			StartLives:         3,
			MinLookAhead:       5,
			DoubleJumpWindowMs: 300,
			DestroyMargin:      20,
			CoinScore:          50,
			DestroyBonus:       100,
			ScorePerDistance:   0.1,
		},
		Levels: []LevelEntry{
			{RequiredScore: 0, Speed: 5.0, Gravity: 0.80, JumpForce: -15.0, ObstacleGap: 320, Name: "Meadow"},
			{RequiredScore: 500, Speed: 5.5, Gravity: 0.85, JumpForce: -15.4, ObstacleGap: 300, Name: "Foothills"},
			{RequiredScore: 1500, Speed: 6.0, Gravity: 0.90, JumpForce: -15.8, ObstacleGap: 280, Name: "Canyon"},
			{RequiredScore: 3000, Speed: 6.5, Gravity: 0.95, JumpForce: -16.2, ObstacleGap: 260, Name: "Mesa"},
			{RequiredScore: 5000, Speed: 7.0, Gravity: 1.00, JumpForce: -16.6, ObstacleGap: 240, Name: "Skyline"},
			{RequiredScore: 8000, Speed: 7.5, Gravity: 1.05, JumpForce: -17.0, ObstacleGap: 220, Name: "Thermals"},
			{RequiredScore: 12000, Speed: 8.0, Gravity: 1.10, JumpForce: -17.4, ObstacleGap: 200, Name: "Jetstream"},
			{RequiredScore: 17000, Speed: 8.5, Gravity: 1.15, JumpForce: -17.8, ObstacleGap: 185, Name: "Stratos"},
			{RequiredScore: 23000, Speed: 9.0, Gravity: 1.20, JumpForce: -18.2, ObstacleGap: 170, Name: "Mesosphere"},
			{RequiredScore: 30000, Speed: 9.5, Gravity: 1.25, JumpForce: -18.6, ObstacleGap: 155, Name: "Exosphere"},
		},
	}
}
