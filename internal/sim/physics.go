package sim

// Body is the player's physics state. Y is the feet position in world
// units with Y growing downward; the ground is a hard floor the body
// can never pass through. The horizontal position is fixed: the world
// scrolls, the player does not.
type Body struct {
	X, Y           float64 // X is constant for the whole run; Y is the feet line
	VY             float64 // Vertical velocity, positive = falling
	W, H           float64
	Airborne       bool
	DoubleJumpUsed bool
}

// Integrate applies one tick of gravity and movement, then clamps to
// the ground line. Landing clears the airborne and double-jump flags.
func (b *Body) Integrate(gravity, groundY float64) {
	b.VY += gravity
	b.Y += b.VY
	if b.Y >= groundY {
		b.Y = groundY
		b.VY = 0
		b.Airborne = false
		b.DoubleJumpUsed = false
	}
}

// Jump applies the primary jump impulse. It only takes effect while the
// body is grounded; airborne calls report false and change nothing.
func (b *Body) Jump(impulse float64) bool {
	if b.Airborne {
		return false
	}
	b.VY = impulse
	b.Airborne = true
	return true
}

// DoubleJump applies the mid-air jump at 0.8x the primary impulse.
// Eligibility (ability unlocked, timing window) is the caller's
// responsibility; the body only enforces once-per-airborne-segment.
func (b *Body) DoubleJump(impulse float64) bool {
	if !b.Airborne || b.DoubleJumpUsed {
		return false
	}
	b.VY = impulse * 0.8
	b.DoubleJumpUsed = true
	return true
}

// Box returns the body's bounding box. Y is the feet line, so the box
// extends upward from it.
func (b *Body) Box() Box {
	return Box{X: b.X, Y: b.Y - b.H, W: b.W, H: b.H}
}
