package sim

// Level is one difficulty tier. The table is ordered by ascending
// RequiredScore and is read-only reference data: the active tier is
// re-derived from the score every tick rather than stored as
// independent truth.
type Level struct {
	RequiredScore int
	Speed         float64 // World units the stream scrolls per tick
	Gravity       float64 // Per-tick velocity increment, before power scaling
	JumpForce     float64 // Jump impulse (negative = upward), before power scaling
	ObstacleGap   float64 // Base gap between consecutive obstacles
	Name          string
}

// DefaultLevels is the built-in ten-tier progression. Speed rises and
// gaps shrink, so later tiers are faster and denser; gravity and jump
// force grow together to keep the jump arc consistent.
var DefaultLevels = []Level{
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
}

// DeriveLevel returns the index of the highest table entry whose
// RequiredScore does not exceed score. It is cheap and idempotent, and
// monotonic in score since the table is ordered.
func DeriveLevel(score int, table []Level) int {
	idx := 0
	for i, lvl := range table {
		if score >= lvl.RequiredScore {
			idx = i
		} else {
			break
		}
	}
	return idx
}

// LevelAt returns the table entry at index, clamping out-of-range
// indices to the nearest valid entry instead of erroring.
func LevelAt(index int, table []Level) Level {
	if len(table) == 0 {
		return DefaultLevels[0]
	}
	if index < 0 {
		index = 0
	}
	if index >= len(table) {
		index = len(table) - 1
	}
	return table[index]
}
