package sim

// Abilities are the unlockable movement and combat flags. They are a
// pure function of the power level and are never toggled directly.
type Abilities struct {
	DoubleJump       bool
	DestroyObstacles bool
}

// PowerLevel derives the secondary progression axis from the score:
// one power level per 1000 points, starting at 1.
func PowerLevel(score int) int {
	return score/1000 + 1
}

// AbilitiesFor returns the ability flags unlocked at a power level.
func AbilitiesFor(power int) Abilities {
	return Abilities{
		DoubleJump:       power >= 2,
		DestroyObstacles: power >= 3,
	}
}

// PowerMultiplier scales the level's gravity and jump force: +20% per
// power level above the first.
func PowerMultiplier(power int) float64 {
	if power < 1 {
		power = 1
	}
	return 1 + float64(power-1)*0.2
}
