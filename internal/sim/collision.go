package sim

// ContactOutcome classifies what a resolved overlap did.
type ContactOutcome int

const (
	ContactDamage    ContactOutcome = iota // Spike hit: costs a life
	ContactDestroyed                       // Spike stomped from above: grants the bonus
	ContactCoin                            // Coin pickup
)

// Contact is one resolved overlap. Outcomes are commutative per
// obstacle, so contacts carry no priority beyond iteration order.
type Contact struct {
	Obstacle Obstacle
	Outcome  ContactOutcome
}

// Resolve tests the player's box against every obstacle and classifies
// each overlap. Consumed obstacles (spikes and coins) are removed from
// the returned set; platforms are inert surfaces and always survive.
// Unknown kinds fail closed to platform behavior.
func Resolve(player Box, obstacles []Obstacle, ab Abilities, destroyMargin float64) ([]Obstacle, []Contact) {
	var contacts []Contact
	kept := obstacles[:0]
	for _, o := range obstacles {
		if !player.Intersects(o.Box()) {
			kept = append(kept, o)
			continue
		}
		switch o.Kind.normalize() {
		case KindSpike:
			// A stomp requires the destroy ability and the player's feet
			// within the fixed margin of the spike's top. The margin is a
			// constant, deliberately not scaled to obstacle height.
			if ab.DestroyObstacles && player.Bottom() <= o.Y+destroyMargin {
				contacts = append(contacts, Contact{Obstacle: o, Outcome: ContactDestroyed})
			} else {
				contacts = append(contacts, Contact{Obstacle: o, Outcome: ContactDamage})
			}
		case KindCoin:
			contacts = append(contacts, Contact{Obstacle: o, Outcome: ContactCoin})
		default:
			// Platform: navigable surface only, no resolution side effect.
			kept = append(kept, o)
		}
	}
	return kept, contacts
}
