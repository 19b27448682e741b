// Package config provides YAML-based tuning for the runner simulation:
// world geometry, run rules, the level table, and difficulty presets.
package config

import "github.com/velmoga/skyrun/internal/sim"

// RunnerConfig is the full tuning document for a run.
type RunnerConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Rules  RulesConfig  `yaml:"rules"`
	Levels []LevelEntry `yaml:"levels"`
}

// WorldConfig defines the scrolling world geometry, in world pixels.
type WorldConfig struct {
	GroundY         float64 `yaml:"ground_y"`
	SpawnX          float64 `yaml:"spawn_x"`
	OffscreenMargin float64 `yaml:"offscreen_margin"`
}

// PlayerConfig defines the player's fixed position and bounding box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RulesConfig defines run rules and scoring.
type RulesConfig struct {
	StartLives         int     `yaml:"start_lives"`
	MinLookAhead       int     `yaml:"min_look_ahead"`
	DoubleJumpWindowMs float64 `yaml:"double_jump_window_ms"`
	DestroyMargin      float64 `yaml:"destroy_margin"`
	CoinScore          int     `yaml:"coin_score"`
	DestroyBonus       int     `yaml:"destroy_bonus"`
	ScorePerDistance   float64 `yaml:"score_per_distance"`
}

// LevelEntry is one difficulty tier of the level table.
type LevelEntry struct {
	RequiredScore int     `yaml:"required_score"`
	Speed         float64 `yaml:"speed"`
	Gravity       float64 `yaml:"gravity"`
	JumpForce     float64 `yaml:"jump_force"`
	ObstacleGap   float64 `yaml:"obstacle_gap"`
	Name          string  `yaml:"name"`
}

// Sim converts the document into the simulation's config. An empty
// level table falls back to the simulation's built-in tiers.
func (c RunnerConfig) Sim() sim.Config {
	out := sim.Config{
		GroundY:            c.World.GroundY,
		SpawnX:             c.World.SpawnX,
		OffscreenMargin:    c.World.OffscreenMargin,
		PlayerX:            c.Player.X,
		PlayerW:            c.Player.Width,
		PlayerH:            c.Player.Height,
		StartLives:         c.Rules.StartLives,
		MinLookAhead:       c.Rules.MinLookAhead,
		DoubleJumpWindowMs: c.Rules.DoubleJumpWindowMs,
		DestroyMargin:      c.Rules.DestroyMargin,
		CoinScore:          c.Rules.CoinScore,
		DestroyBonus:       c.Rules.DestroyBonus,
		ScorePerDistance:   c.Rules.ScorePerDistance,
		Achievements:       sim.DefaultAchievements,
	}
	for _, e := range c.Levels {
		out.Levels = append(out.Levels, sim.Level{
			RequiredScore: e.RequiredScore,
			Speed:         e.Speed,
			Gravity:       e.Gravity,
			JumpForce:     e.JumpForce,
			ObstacleGap:   e.ObstacleGap,
			Name:          e.Name,
		})
	}
	if len(out.Levels) == 0 {
		out.Levels = sim.DefaultLevels
	}
	return out
}

// DifficultyPreset names a canned difficulty adjustment.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a flag value to a preset. Unknown names mean "no
// preset": the config's own values stand.
func ParsePreset(name string) DifficultyPreset {
	switch name {
	case "easy", "normal", "hard":
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// ApplyPreset adjusts the config for a preset. Easy runs start with
// more lives and wider gaps; hard runs with fewer lives and tighter
// gaps. The level thresholds themselves never move.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	var lives int
	var gapScale float64
	switch preset {
	case DifficultyEasy:
		lives, gapScale = 5, 1.2
	case DifficultyNormal:
		lives, gapScale = 3, 1.0
	case DifficultyHard:
		lives, gapScale = 2, 0.85
	default:
		return
	}
	cfg.Rules.StartLives = lives
	for i := range cfg.Levels {
		cfg.Levels[i].ObstacleGap *= gapScale
	}
}
