package sim

import "testing"

// scriptRNG replays a fixed sequence of draws, cycling when exhausted.
// It lets tests force specific generation branches.
type scriptRNG struct {
	vals []float64
	i    int
}

func (r *scriptRNG) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func (r *scriptRNG) Uniform(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

func TestStreamLookAheadInvariant(t *testing.T) {
	rng := NewLCG(42)
	s := NewStream(rng, 300, 900, 5, 100)

	for i := 0; i < 1000; i++ {
		s.Advance(7)
		s.Replenish(250, 100)

		ahead := 0
		for _, o := range s.Obstacles() {
			if o.X > 100 {
				ahead++
			}
		}
		if ahead < 5 {
			t.Fatalf("tick %d: only %d obstacles ahead of player, want >= 5", i, ahead)
		}
	}
}

func TestStreamDropsOffscreenObstacles(t *testing.T) {
	rng := NewLCG(1)
	s := NewStream(rng, 300, 900, 5, 100)
	s.Replenish(250, 100)

	// Scroll far enough that every original obstacle passes the margin.
	for i := 0; i < 400; i++ {
		s.Advance(10)
		s.Replenish(250, 100)
	}
	for _, o := range s.Obstacles() {
		if o.X < -100 {
			t.Errorf("obstacle at x=%v should have been dropped", o.X)
		}
	}
}

func TestAdvanceDropsOnLeftEdge(t *testing.T) {
	s := NewStream(NewLCG(1), 300, 900, 5, 100)
	s.Replace([]Obstacle{
		{X: -95, Y: 260, W: 40, H: 40, Kind: KindSpike}, // lands exactly on the margin
		{X: -96, Y: 260, W: 40, H: 40, Kind: KindSpike}, // crosses it
	})

	s.Advance(5)

	obstacles := s.Obstacles()
	if len(obstacles) != 1 {
		t.Fatalf("expected 1 obstacle after advance, got %d", len(obstacles))
	}
	if got := obstacles[0].X; got != -100 {
		t.Errorf("surviving obstacle x = %v, want -100", got)
	}
	if got := obstacles[0].Right(); got != -60 {
		t.Errorf("surviving obstacle right edge = %v, want -60", got)
	}
}

func TestGenerationKinds(t *testing.T) {
	groundY := 300.0

	cases := []struct {
		name string
		roll float64
		want Kind
	}{
		{"high roll is a coin", 0.71, KindCoin},
		{"mid roll is a spike", 0.5, KindSpike},
		{"boundary 0.4 is a platform", 0.4, KindPlatform},
		{"low roll is a platform", 0.1, KindPlatform},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// First draw picks the kind, later draws place it.
			rng := &scriptRNG{vals: []float64{tc.roll, 0.5}}
			s := NewStream(rng, groundY, 900, 1, 100)
			o := s.generate(1000)

			if o.Kind != tc.want {
				t.Fatalf("roll %v produced %v, want %v", tc.roll, o.Kind, tc.want)
			}
			switch o.Kind {
			case KindCoin:
				if o.W != 30 || o.H != 30 {
					t.Errorf("coin size = %vx%v, want 30x30", o.W, o.H)
				}
				if o.Y > groundY-150 || o.Y < groundY-300 {
					t.Errorf("coin y = %v outside [%v, %v]", o.Y, groundY-300, groundY-150)
				}
			case KindSpike:
				if o.W != 40 || o.H != 40 {
					t.Errorf("spike size = %vx%v, want 40x40", o.W, o.H)
				}
				if o.Y != groundY-40 {
					t.Errorf("spike should sit on the ground, y = %v", o.Y)
				}
			case KindPlatform:
				if o.W != 80 || o.H != 20 {
					t.Errorf("platform size = %vx%v, want 80x20", o.W, o.H)
				}
				if o.Y > groundY-150 || o.Y < groundY-250 {
					t.Errorf("platform y = %v outside [%v, %v]", o.Y, groundY-250, groundY-150)
				}
			}
		})
	}
}

func TestReplenishGapRange(t *testing.T) {
	rng := NewLCG(7)
	s := NewStream(rng, 300, 900, 8, 100)
	s.Replenish(200, 100)

	obstacles := s.Obstacles()
	if len(obstacles) < 8 {
		t.Fatalf("expected at least 8 obstacles, got %d", len(obstacles))
	}

	// Each obstacle spawns between one and one-and-a-half gaps past the
	// rightmost edge at generation time. Appending preserves spawn
	// order, so consecutive left edges must respect the minimum gap.
	for i := 1; i < len(obstacles); i++ {
		prev := obstacles[i-1]
		cur := obstacles[i]
		gap := cur.X - prev.Right()
		if gap < 200-1e-9 {
			t.Errorf("gap %d = %v, want >= 200", i, gap)
		}
		if gap > 300+1e-9 {
			t.Errorf("gap %d = %v, want <= 300", i, gap)
		}
	}
}

func TestParseKindFailsClosed(t *testing.T) {
	if got := ParseKind("laser"); got != KindPlatform {
		t.Errorf("unknown kind should parse as platform, got %v", got)
	}
	if got := Kind(99).normalize(); got != KindPlatform {
		t.Errorf("out-of-range kind should normalize to platform, got %v", got)
	}
	if Kind(99).String() != "platform" {
		t.Errorf("out-of-range kind should print as platform")
	}
}

func TestStreamDeterminism(t *testing.T) {
	build := func() []Obstacle {
		s := NewStream(NewLCG(12345), 300, 900, 5, 100)
		for i := 0; i < 200; i++ {
			s.Advance(6)
			s.Replenish(250, 100)
		}
		out := make([]Obstacle, len(s.Obstacles()))
		copy(out, s.Obstacles())
		return out
	}

	a, b := build(), build()
	if len(a) != len(b) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
