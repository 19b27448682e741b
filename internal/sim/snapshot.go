package sim

// Phase is the run state machine's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Cosmetic describes the player's look. It is carried for the host's
// renderer only and never influences physics or collision geometry.
type Cosmetic struct {
	BodyShape string
	LegStyle  string
	Color     string
}

// Stats are the cumulative run statistics. Lives and coins are distinct
// counters: lives only decrease, coins only increase.
type Stats struct {
	Score        int
	Coins        int
	Lives        int
	ElapsedTicks int
	ElapsedMs    float64
	Jumps        int
	Perfect      bool // True while no spike damage since the last level-up check
}

// Snapshot is the per-tick state the host renders from. Obstacles is a
// copy; mutating it has no effect on the run.
type Snapshot struct {
	Phase     Phase
	PlayerX   float64
	PlayerY   float64 // Feet position; never below GroundY
	PlayerVY  float64
	Airborne  bool
	GroundY   float64
	Obstacles []Obstacle

	Score      int
	Level      int // 1-based level number
	LevelName  string
	PowerLevel int
	Abilities  Abilities

	Lives        int
	Coins        int
	ElapsedTicks int
	ElapsedMs    float64

	Cosmetic Cosmetic
}
