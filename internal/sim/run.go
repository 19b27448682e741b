package sim

// Controller owns the run state machine and the authoritative per-tick
// update order. It is single-threaded by contract: the host calls Tick
// once per frame and nothing else touches the run state.
type Controller struct {
	cfg Config
	rng RNG

	phase    Phase
	player   Body
	stream   *Stream
	stats    Stats
	tracker  *Tracker
	cosmetic Cosmetic

	levelIdx int
	power    int

	pendingJumps []float64 // Input timestamps (ms) queued for the next tick
	lastJumpAt   float64   // Timestamp of the last applied jump command
	scoreFrac    float64   // Fractional score carried between ticks
}

// New creates a controller in the idle phase. The RNG is the only
// source of randomness for the whole run.
func New(cfg Config, rng RNG) *Controller {
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultLevels
	}
	if len(cfg.Achievements) == 0 {
		cfg.Achievements = DefaultAchievements
	}
	return &Controller{
		cfg:     cfg,
		rng:     rng,
		phase:   PhaseIdle,
		stream:  NewStream(rng, cfg.GroundY, cfg.SpawnX, cfg.MinLookAhead, cfg.OffscreenMargin),
		tracker: NewTracker(cfg.Achievements),
	}
}

// Phase returns the current run state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// SetCosmetic stores the player's look. Informational only: it is
// echoed in snapshots and never read by the simulation.
func (c *Controller) SetCosmetic(cos Cosmetic) {
	c.cosmetic = cos
}

// Start begins a fresh run. Valid from idle and gameover; the
// transition is identical in both cases, with no carry-over state.
// Calls in other phases are ignored.
func (c *Controller) Start() {
	if c.phase != PhaseIdle && c.phase != PhaseGameOver {
		return
	}
	c.player = Body{
		X: c.cfg.PlayerX,
		Y: c.cfg.GroundY,
		W: c.cfg.PlayerW,
		H: c.cfg.PlayerH,
	}
	c.stats = Stats{Lives: c.cfg.StartLives, Perfect: true}
	c.levelIdx = 0
	c.power = 1
	c.pendingJumps = c.pendingJumps[:0]
	c.lastJumpAt = 0
	c.scoreFrac = 0
	c.tracker.Reset()
	c.stream.Reset()
	c.stream.Replenish(LevelAt(0, c.cfg.Levels).ObstacleGap, c.cfg.PlayerX)
	c.phase = PhasePlaying
}

// Pause freezes the run. No state mutates while paused.
func (c *Controller) Pause() {
	if c.phase == PhasePlaying {
		c.phase = PhasePaused
	}
}

// Resume continues a paused run. Ignored in any other phase.
func (c *Controller) Resume() {
	if c.phase == PhasePaused {
		c.phase = PhasePlaying
	}
}

// Reset discards the run and returns to idle.
func (c *Controller) Reset() {
	c.phase = PhaseIdle
	c.stats = Stats{}
	c.stream.Reset()
	c.tracker.Reset()
	c.pendingJumps = c.pendingJumps[:0]
}

// Jump queues a timestamped jump command for the next tick. The
// timestamp, not wall-clock arrival, decides double-jump eligibility,
// which keeps the window deterministic under frame jitter. Jump
// commands outside the playing phase are silently dropped.
func (c *Controller) Jump(atMs float64) {
	if c.phase != PhasePlaying {
		return
	}
	c.pendingJumps = append(c.pendingJumps, atMs)
}

// Tick advances the simulation by dtMs and returns the state snapshot
// plus the discrete events of this tick. Outside the playing phase it
// is a read-only operation.
//
// The update order is fixed; later steps depend on earlier ones:
// physics, obstacle stream, score accrual, level/power derivation,
// collision resolution, achievement evaluation, terminal check.
func (c *Controller) Tick(dtMs float64) (Snapshot, []Event) {
	if c.phase != PhasePlaying {
		return c.snapshot(), nil
	}

	var events []Event
	level := LevelAt(c.levelIdx, c.cfg.Levels)
	mult := PowerMultiplier(c.power)
	abilities := AbilitiesFor(c.power)

	// 1. Physics: consume queued jump commands, then integrate.
	events = c.applyJumps(abilities, level.JumpForce*mult, events)
	c.player.Integrate(level.Gravity*mult, c.cfg.GroundY)

	// 2. Obstacle stream: scroll, drop, and keep the look-ahead filled.
	c.stream.Advance(level.Speed)
	c.stream.Replenish(level.ObstacleGap, c.player.X)

	// 3. Score accrues from traveled distance.
	c.scoreFrac += level.Speed * c.cfg.ScorePerDistance
	if c.scoreFrac >= 1 {
		gained := int(c.scoreFrac)
		c.stats.Score += gained
		c.scoreFrac -= float64(gained)
	}

	// 4. Re-derive level and power from the new score.
	leveledUp := false
	if idx := DeriveLevel(c.stats.Score, c.cfg.Levels); idx != c.levelIdx {
		events = append(events, LeveledUp{
			From: c.levelIdx + 1,
			To:   idx + 1,
			Name: LevelAt(idx, c.cfg.Levels).Name,
		})
		c.levelIdx = idx
		leveledUp = true
	}
	if p := PowerLevel(c.stats.Score); p != c.power {
		events = append(events, PoweredUp{From: c.power, To: p})
		c.power = p
		abilities = AbilitiesFor(p)
	}

	// 5. Collisions against the advanced obstacle set.
	remaining, contacts := Resolve(c.player.Box(), c.stream.Obstacles(), abilities, c.cfg.DestroyMargin)
	c.stream.Replace(remaining)
	for _, contact := range contacts {
		switch contact.Outcome {
		case ContactCoin:
			c.stats.Coins++
			c.stats.Score += c.cfg.CoinScore
			events = append(events, CoinCollected{Coins: c.stats.Coins, Score: c.stats.Score})
		case ContactDestroyed:
			c.stats.Score += c.cfg.DestroyBonus
			events = append(events, ObstacleDestroyed{Bonus: c.cfg.DestroyBonus})
		case ContactDamage:
			if c.stats.Lives > 0 {
				c.stats.Lives--
			}
			c.stats.Perfect = false
			events = append(events, SpikeHit{LivesLeft: c.stats.Lives})
		}
	}

	// 6. Achievements against the now-updated stats.
	c.stats.ElapsedTicks++
	c.stats.ElapsedMs += dtMs
	view := RunView{
		Score:       c.stats.Score,
		Coins:       c.stats.Coins,
		Lives:       c.stats.Lives,
		LevelNumber: c.levelIdx + 1,
		PowerLevel:  c.power,
		ElapsedMs:   c.stats.ElapsedMs,
		Jumps:       c.stats.Jumps,
		Perfect:     c.stats.Perfect,
		LeveledUp:   leveledUp,
	}
	unlocked, faults := c.tracker.Evaluate(view)
	for _, a := range unlocked {
		c.stats.Score += a.Reward
		events = append(events, AchievementUnlocked{ID: a.ID, Name: a.Name, Reward: a.Reward})
	}
	for _, f := range faults {
		events = append(events, f)
	}
	if leveledUp {
		// The perfect flag tracks damage per level segment.
		c.stats.Perfect = true
	}

	// 7. Terminal check.
	if c.stats.Lives <= 0 {
		c.phase = PhaseGameOver
		events = append(events, GameOver{
			FinalScore: c.stats.Score,
			FinalLevel: c.levelIdx + 1,
			FinalCoins: c.stats.Coins,
			ElapsedMs:  c.stats.ElapsedMs,
		})
	}

	return c.snapshot(), events
}

// applyJumps consumes the queued jump commands in arrival order. A
// grounded player always jumps; an airborne player double-jumps only
// when the ability is unlocked, the double jump is unspent, and the
// command lands within the window of the previous jump. Everything
// else is a no-op.
func (c *Controller) applyJumps(ab Abilities, impulse float64, events []Event) []Event {
	for _, at := range c.pendingJumps {
		switch {
		case !c.player.Airborne:
			if c.player.Jump(impulse) {
				c.stats.Jumps++
				c.lastJumpAt = at
				events = append(events, Jumped{AtMs: at})
			}
		case ab.DoubleJump && !c.player.DoubleJumpUsed && at-c.lastJumpAt <= c.cfg.DoubleJumpWindowMs:
			if c.player.DoubleJump(impulse) {
				c.lastJumpAt = at
				events = append(events, DoubleJumped{AtMs: at})
			}
		}
	}
	c.pendingJumps = c.pendingJumps[:0]
	return events
}

// snapshot copies the current state for the host.
func (c *Controller) snapshot() Snapshot {
	obstacles := make([]Obstacle, len(c.stream.Obstacles()))
	copy(obstacles, c.stream.Obstacles())
	level := LevelAt(c.levelIdx, c.cfg.Levels)
	return Snapshot{
		Phase:        c.phase,
		PlayerX:      c.player.X,
		PlayerY:      c.player.Y,
		PlayerVY:     c.player.VY,
		Airborne:     c.player.Airborne,
		GroundY:      c.cfg.GroundY,
		Obstacles:    obstacles,
		Score:        c.stats.Score,
		Level:        c.levelIdx + 1,
		LevelName:    level.Name,
		PowerLevel:   c.power,
		Abilities:    AbilitiesFor(c.power),
		Lives:        c.stats.Lives,
		Coins:        c.stats.Coins,
		ElapsedTicks: c.stats.ElapsedTicks,
		ElapsedMs:    c.stats.ElapsedMs,
		Cosmetic:     c.cosmetic,
	}
}

// Unlocked returns the achievements unlocked so far this run, in rule
// table order. Used by hosts persisting results at game over.
func (c *Controller) Unlocked() []Achievement {
	var out []Achievement
	for _, def := range c.cfg.Achievements {
		if c.tracker.Unlocked(def.ID) {
			out = append(out, def)
		}
	}
	return out
}
