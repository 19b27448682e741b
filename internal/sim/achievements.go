package sim

import "fmt"

// AchievementID identifies an achievement in the static rule table.
type AchievementID string

// RunView is the read-only snapshot of run statistics an achievement
// rule evaluates against. Rules never mutate the run.
type RunView struct {
	Score       int
	Coins       int
	Lives       int
	LevelNumber int // 1-based level number
	PowerLevel  int
	ElapsedMs   float64
	Jumps       int
	Perfect     bool // No spike damage since the last level-up check
	LeveledUp   bool // A level boundary was crossed this tick
}

// Achievement is one entry of the static rule table: an id, a reward,
// and a predicate over the current run statistics.
type Achievement struct {
	ID     AchievementID
	Name   string
	Reward int
	Check  func(v RunView) bool
}

// DefaultAchievements is the fixed rule set evaluated every tick.
var DefaultAchievements = []Achievement{
	{ID: "first_flight", Name: "First Flight", Reward: 10,
		Check: func(v RunView) bool { return v.Jumps >= 1 }},
	{ID: "level_2", Name: "Off the Ground", Reward: 25,
		Check: func(v RunView) bool { return v.LevelNumber >= 2 }},
	{ID: "level_5", Name: "Halfway Up", Reward: 75,
		Check: func(v RunView) bool { return v.LevelNumber >= 5 }},
	{ID: "level_10", Name: "Summit", Reward: 200,
		Check: func(v RunView) bool { return v.LevelNumber >= 10 }},
	{ID: "score_1k", Name: "Warmed Up", Reward: 50,
		Check: func(v RunView) bool { return v.Score >= 1000 }},
	{ID: "score_5k", Name: "On a Roll", Reward: 100,
		Check: func(v RunView) bool { return v.Score >= 5000 }},
	{ID: "score_10k", Name: "Unstoppable", Reward: 250,
		Check: func(v RunView) bool { return v.Score >= 10000 }},
	{ID: "marathon_60", Name: "Minute Runner", Reward: 50,
		Check: func(v RunView) bool { return v.ElapsedMs >= 60_000 }},
	{ID: "marathon_120", Name: "Long Hauler", Reward: 150,
		Check: func(v RunView) bool { return v.ElapsedMs >= 120_000 }},
	{ID: "coin_hoarder", Name: "Coin Hoarder", Reward: 100,
		Check: func(v RunView) bool { return v.Coins >= 50 }},
	{ID: "flawless", Name: "Flawless Ascent", Reward: 150,
		Check: func(v RunView) bool { return v.Perfect && v.LeveledUp }},
}

// Tracker evaluates the rule table against run statistics and records
// which ids have unlocked. Each id unlocks at most once per run, and a
// faulting rule never prevents evaluation of the remaining rules.
type Tracker struct {
	defs     []Achievement
	unlocked map[AchievementID]bool
}

// NewTracker creates a tracker over the given rule table.
func NewTracker(defs []Achievement) *Tracker {
	return &Tracker{
		defs:     defs,
		unlocked: make(map[AchievementID]bool, len(defs)),
	}
}

// Reset clears the unlock set for a new run.
func (t *Tracker) Reset() {
	t.unlocked = make(map[AchievementID]bool, len(t.defs))
}

// Unlocked reports whether an id has unlocked this run.
func (t *Tracker) Unlocked(id AchievementID) bool {
	return t.unlocked[id]
}

// Evaluate runs every still-locked rule against the view and returns
// the newly unlocked achievements plus any rule faults. Rules are
// isolated: a panic inside one predicate is captured as a fault and
// evaluation continues with the next rule.
func (t *Tracker) Evaluate(v RunView) (unlocked []Achievement, faults []AchievementFaulted) {
	for _, def := range t.defs {
		if t.unlocked[def.ID] {
			continue
		}
		hit, err := t.check(def, v)
		if err != nil {
			faults = append(faults, AchievementFaulted{ID: def.ID, Err: err})
			continue
		}
		if hit {
			t.unlocked[def.ID] = true
			unlocked = append(unlocked, def)
		}
	}
	return unlocked, faults
}

// check evaluates a single rule, converting panics into errors.
func (t *Tracker) check(def Achievement, v RunView) (hit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("achievement %s: rule panicked: %v", def.ID, r)
		}
	}()
	if def.Check == nil {
		return false, fmt.Errorf("achievement %s: missing rule", def.ID)
	}
	return def.Check(v), nil
}
