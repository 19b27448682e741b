package sim

import "testing"

func TestUnlockIsIdempotent(t *testing.T) {
	tr := NewTracker(DefaultAchievements)
	view := RunView{Jumps: 1}

	first, _ := tr.Evaluate(view)
	if len(first) != 1 || first[0].ID != "first_flight" {
		t.Fatalf("expected first_flight to unlock, got %+v", first)
	}

	// Re-evaluating a satisfied predicate many ticks in a row must not
	// re-unlock.
	for i := 0; i < 100; i++ {
		again, _ := tr.Evaluate(view)
		if len(again) != 0 {
			t.Fatalf("tick %d: achievement unlocked twice: %+v", i, again)
		}
	}
	if !tr.Unlocked("first_flight") {
		t.Error("unlock set should keep the id")
	}
}

func TestFaultingRuleDoesNotAbortBatch(t *testing.T) {
	defs := []Achievement{
		{ID: "broken", Name: "Broken", Check: func(v RunView) bool {
			panic("bad predicate")
		}},
		{ID: "nilrule", Name: "Nil"},
		{ID: "healthy", Name: "Healthy", Check: func(v RunView) bool {
			return v.Score >= 10
		}},
	}
	tr := NewTracker(defs)

	unlocked, faults := tr.Evaluate(RunView{Score: 10})
	if len(unlocked) != 1 || unlocked[0].ID != "healthy" {
		t.Fatalf("healthy rule should still unlock, got %+v", unlocked)
	}
	if len(faults) != 2 {
		t.Fatalf("both broken rules should fault, got %+v", faults)
	}
	for _, f := range faults {
		if f.Err == nil {
			t.Errorf("fault %s carries no error", f.ID)
		}
	}
	if tr.Unlocked("broken") || tr.Unlocked("nilrule") {
		t.Error("faulting rules must not pollute the unlock set")
	}
}

func TestResetClearsUnlockSet(t *testing.T) {
	tr := NewTracker(DefaultAchievements)
	tr.Evaluate(RunView{Jumps: 3})
	if !tr.Unlocked("first_flight") {
		t.Fatal("setup: first_flight should be unlocked")
	}

	tr.Reset()
	if tr.Unlocked("first_flight") {
		t.Error("reset should clear the unlock set")
	}
	unlocked, _ := tr.Evaluate(RunView{Jumps: 3})
	if len(unlocked) != 1 {
		t.Error("achievement should unlock again on the next run")
	}
}

func TestFlawlessNeedsIntactFlagAtLevelUp(t *testing.T) {
	tr := NewTracker(DefaultAchievements)

	// Level boundary crossed with the perfect flag broken: no unlock.
	unlocked, _ := tr.Evaluate(RunView{LevelNumber: 2, LeveledUp: true, Perfect: false, Jumps: 1})
	for _, a := range unlocked {
		if a.ID == "flawless" {
			t.Fatal("flawless must not unlock after spike damage")
		}
	}

	// Intact flag, but no boundary this tick: still no unlock.
	unlocked, _ = tr.Evaluate(RunView{LevelNumber: 2, Perfect: true})
	for _, a := range unlocked {
		if a.ID == "flawless" {
			t.Fatal("flawless only unlocks on a level-up tick")
		}
	}

	// Both together.
	unlocked, _ = tr.Evaluate(RunView{LevelNumber: 3, LeveledUp: true, Perfect: true})
	found := false
	for _, a := range unlocked {
		if a.ID == "flawless" {
			found = true
		}
	}
	if !found {
		t.Error("flawless should unlock on a damage-free level-up")
	}
}

func TestMarathonRules(t *testing.T) {
	tr := NewTracker(DefaultAchievements)

	unlocked, _ := tr.Evaluate(RunView{ElapsedMs: 59_999})
	if len(unlocked) != 0 {
		t.Fatalf("nothing should unlock just under a minute, got %+v", unlocked)
	}

	unlocked, _ = tr.Evaluate(RunView{ElapsedMs: 60_000})
	if len(unlocked) != 1 || unlocked[0].ID != "marathon_60" {
		t.Fatalf("expected marathon_60, got %+v", unlocked)
	}

	unlocked, _ = tr.Evaluate(RunView{ElapsedMs: 120_000})
	if len(unlocked) != 1 || unlocked[0].ID != "marathon_120" {
		t.Fatalf("expected marathon_120, got %+v", unlocked)
	}
}
