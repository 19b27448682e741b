package sim

import "testing"

func TestResolveCoinPickup(t *testing.T) {
	player := Box{X: 100, Y: 240, W: 40, H: 60}
	obstacles := []Obstacle{
		{X: 110, Y: 250, W: 30, H: 30, Kind: KindCoin},
		{X: 500, Y: 250, W: 30, H: 30, Kind: KindCoin},
	}

	remaining, contacts := Resolve(player, obstacles, Abilities{}, 20)
	if len(contacts) != 1 || contacts[0].Outcome != ContactCoin {
		t.Fatalf("expected one coin contact, got %+v", contacts)
	}
	if len(remaining) != 1 || remaining[0].X != 500 {
		t.Errorf("overlapped coin should be consumed, remaining: %+v", remaining)
	}
}

func TestResolveSpikeDamageWithoutAbility(t *testing.T) {
	player := Box{X: 100, Y: 240, W: 40, H: 60}
	spike := Obstacle{X: 110, Y: 260, W: 40, H: 40, Kind: KindSpike}

	remaining, contacts := Resolve(player, []Obstacle{spike}, Abilities{}, 20)
	if len(contacts) != 1 || contacts[0].Outcome != ContactDamage {
		t.Fatalf("spike without the destroy ability must damage, got %+v", contacts)
	}
	if len(remaining) != 0 {
		t.Error("damaging spike should be consumed")
	}
}

func TestResolveSpikeStompFromAbove(t *testing.T) {
	// Spike top at y=260; the player's feet graze it within the margin.
	spike := Obstacle{X: 110, Y: 260, W: 40, H: 40, Kind: KindSpike}
	ab := Abilities{DestroyObstacles: true}

	stomper := Box{X: 100, Y: 205, W: 40, H: 60} // feet at 265, within 20 of the top
	_, contacts := Resolve(stomper, []Obstacle{spike}, ab, 20)
	if len(contacts) != 1 || contacts[0].Outcome != ContactDestroyed {
		t.Fatalf("stomp within margin should destroy, got %+v", contacts)
	}

	// Same geometry but deep overlap: feet well past the margin.
	rammer := Box{X: 100, Y: 240, W: 40, H: 60} // feet at 300
	_, contacts = Resolve(rammer, []Obstacle{spike}, ab, 20)
	if len(contacts) != 1 || contacts[0].Outcome != ContactDamage {
		t.Fatalf("deep spike overlap should damage even with the ability, got %+v", contacts)
	}

	// Never both: exactly one contact per obstacle either way.
}

func TestResolvePlatformIsInert(t *testing.T) {
	player := Box{X: 100, Y: 240, W: 40, H: 60}
	platform := Obstacle{X: 110, Y: 250, W: 80, H: 20, Kind: KindPlatform}

	remaining, contacts := Resolve(player, []Obstacle{platform}, Abilities{}, 20)
	if len(contacts) != 0 {
		t.Errorf("platform overlap should produce no contact, got %+v", contacts)
	}
	if len(remaining) != 1 {
		t.Error("platform should survive the overlap")
	}
}

func TestResolveUnknownKindFailsClosed(t *testing.T) {
	player := Box{X: 100, Y: 240, W: 40, H: 60}
	weird := Obstacle{X: 110, Y: 250, W: 40, H: 40, Kind: Kind(42)}

	remaining, contacts := Resolve(player, []Obstacle{weird}, Abilities{}, 20)
	if len(contacts) != 0 || len(remaining) != 1 {
		t.Errorf("unknown kind must behave like a platform, contacts=%+v remaining=%+v", contacts, remaining)
	}
}

func TestResolveMultipleSimultaneousOverlaps(t *testing.T) {
	player := Box{X: 100, Y: 240, W: 80, H: 60}
	obstacles := []Obstacle{
		{X: 100, Y: 250, W: 30, H: 30, Kind: KindCoin},
		{X: 140, Y: 260, W: 40, H: 40, Kind: KindSpike},
		{X: 150, Y: 250, W: 30, H: 30, Kind: KindCoin},
	}

	remaining, contacts := Resolve(player, obstacles, Abilities{}, 20)
	if len(contacts) != 3 {
		t.Fatalf("each overlap resolves independently, got %d contacts", len(contacts))
	}
	if contacts[0].Outcome != ContactCoin || contacts[1].Outcome != ContactDamage || contacts[2].Outcome != ContactCoin {
		t.Errorf("contacts resolved out of obstacle order: %+v", contacts)
	}
	if len(remaining) != 0 {
		t.Errorf("all consumables should be removed, remaining: %+v", remaining)
	}
}
