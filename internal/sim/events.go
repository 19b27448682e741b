package sim

// Event is a discrete, host-actionable occurrence produced by a tick.
// The core never renders, plays sound, or persists anything itself; it
// describes what happened and leaves the reaction to the host.
type Event interface {
	runEvent()
}

// Jumped is emitted when a primary jump is applied.
type Jumped struct {
	AtMs float64 // Input timestamp of the jump command
}

func (Jumped) runEvent() {}

// DoubleJumped is emitted when a second jump within the double-jump
// window is applied mid-air.
type DoubleJumped struct {
	AtMs float64
}

func (DoubleJumped) runEvent() {}

// CoinCollected is emitted when the player overlaps a coin.
type CoinCollected struct {
	Coins int // Total coins collected this run, after the pickup
	Score int // Score after the pickup bonus
}

func (CoinCollected) runEvent() {}

// SpikeHit is emitted when a spike contact causes damage.
type SpikeHit struct {
	LivesLeft int
}

func (SpikeHit) runEvent() {}

// ObstacleDestroyed is emitted when a spike is stomped from above with
// the destroy ability active.
type ObstacleDestroyed struct {
	Bonus int // Score bonus granted for the destruction
}

func (ObstacleDestroyed) runEvent() {}

// LeveledUp is emitted once when the score crosses a level threshold.
type LeveledUp struct {
	From int // Previous level number (1-based)
	To   int // New level number (1-based)
	Name string
}

func (LeveledUp) runEvent() {}

// PoweredUp is emitted once when the power level increases.
type PoweredUp struct {
	From int
	To   int
}

func (PoweredUp) runEvent() {}

// AchievementUnlocked is emitted the first time a rule is satisfied
// during a run.
type AchievementUnlocked struct {
	ID     AchievementID
	Name   string
	Reward int
}

func (AchievementUnlocked) runEvent() {}

// AchievementFaulted reports an achievement rule that failed to
// evaluate. The remaining rules are unaffected; the host decides
// whether and how to surface the fault.
type AchievementFaulted struct {
	ID  AchievementID
	Err error
}

func (AchievementFaulted) runEvent() {}

// GameOver is emitted once when lives reach zero. It carries the final
// run totals for the host to persist.
type GameOver struct {
	FinalScore int
	FinalLevel int // 1-based level number at the end of the run
	FinalCoins int
	ElapsedMs  float64
}

func (GameOver) runEvent() {}
