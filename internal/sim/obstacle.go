package sim

// Kind classifies an obstacle. Unknown values fail closed to
// KindPlatform, the only kind that cannot hurt the player.
type Kind int

const (
	KindPlatform Kind = iota // Navigable surface, no collision side effect
	KindSpike                // Damaging hazard (or stompable with the destroy ability)
	KindCoin                 // Collectible, grants score and a coin
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindSpike:
		return "spike"
	case KindCoin:
		return "coin"
	default:
		return "platform"
	}
}

// ParseKind maps a name to a Kind. Unrecognized names fall back to
// KindPlatform rather than erroring.
func ParseKind(name string) Kind {
	switch name {
	case "spike":
		return KindSpike
	case "coin":
		return KindCoin
	default:
		return KindPlatform
	}
}

// normalize clamps out-of-range kind values back into the known set.
func (k Kind) normalize() Kind {
	if k < KindPlatform || k > KindCoin {
		return KindPlatform
	}
	return k
}

// Box is an axis-aligned bounding box in world units. Y grows downward,
// matching screen space; Y is the top edge.
type Box struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Intersects reports whether two boxes overlap.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// Obstacle is plain positional data: never aliased, removed when it
// scrolls off-screen or is consumed by a collision.
type Obstacle struct {
	X, Y float64 // Top-left corner in world units
	W, H float64
	Kind Kind
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() Box {
	return Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Fixed obstacle dimensions, matching the generation rules.
const (
	coinSize       = 30.0
	spikeSize      = 40.0
	platformWidth  = 80.0
	platformHeight = 20.0
)

// Stream procedurally generates and recycles the rolling window of
// upcoming obstacles. It owns the obstacle slice; callers mutate it
// only through Advance, Replenish, and Replace.
type Stream struct {
	obstacles []Obstacle
	rng       RNG
	groundY   float64
	spawnX    float64 // Baseline x for the first obstacle of a fresh stream
	lookAhead int     // Minimum obstacles kept ahead of the player
	margin    float64 // How far past the left edge before an obstacle is dropped
}

// NewStream creates an empty stream drawing from the given RNG.
func NewStream(rng RNG, groundY, spawnX float64, lookAhead int, margin float64) *Stream {
	return &Stream{
		obstacles: make([]Obstacle, 0, 16),
		rng:       rng,
		groundY:   groundY,
		spawnX:    spawnX,
		lookAhead: lookAhead,
		margin:    margin,
	}
}

// Reset drops all obstacles.
func (s *Stream) Reset() {
	s.obstacles = s.obstacles[:0]
}

// Obstacles returns the active obstacle window.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}

// Replace swaps in the post-collision obstacle set.
func (s *Stream) Replace(obstacles []Obstacle) {
	s.obstacles = obstacles
}

// Advance shifts every obstacle left by speed and drops the ones whose
// left edge has scrolled past the left margin.
func (s *Stream) Advance(speed float64) {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= speed
		if o.X >= -s.margin {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// Replenish generates obstacles until at least the look-ahead count
// exists ahead of aheadOfX (the player's x position). Gaps between
// consecutive obstacles are levelGap plus up to half a gap of jitter,
// so higher levels with smaller gaps pack obstacles tighter.
func (s *Stream) Replenish(levelGap, aheadOfX float64) {
	for s.countAhead(aheadOfX) < s.lookAhead {
		base := s.spawnX
		if n := len(s.obstacles); n > 0 {
			right := s.obstacles[0].Right()
			for _, o := range s.obstacles[1:] {
				if o.Right() > right {
					right = o.Right()
				}
			}
			if right > base {
				base = right
			}
		}
		gap := levelGap + s.rng.Uniform(0, 0.5*levelGap)
		s.obstacles = append(s.obstacles, s.generate(base+gap))
	}
}

// countAhead counts obstacles whose left edge is ahead of x.
func (s *Stream) countAhead(x float64) int {
	n := 0
	for _, o := range s.obstacles {
		if o.X > x {
			n++
		}
	}
	return n
}

// generate rolls a new obstacle at the given x position. The kind
// thresholds are load-bearing for game balance: 30% coins, 30% spikes,
// 40% platforms.
func (s *Stream) generate(x float64) Obstacle {
	r := s.rng.Float64()
	switch {
	case r > 0.7:
		y := s.groundY - 150 - s.rng.Uniform(0, 150)
		return Obstacle{X: x, Y: y, W: coinSize, H: coinSize, Kind: KindCoin}
	case r > 0.4:
		return Obstacle{X: x, Y: s.groundY - spikeSize, W: spikeSize, H: spikeSize, Kind: KindSpike}
	default:
		y := s.groundY - 150 - s.rng.Uniform(0, 100)
		return Obstacle{X: x, Y: y, W: platformWidth, H: platformHeight, Kind: KindPlatform}
	}
}
