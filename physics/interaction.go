package physics

// Contact is the result of testing the player against one enemy.
type Contact int

const (
	ContactNone Contact = iota
	ContactStomp
	ContactDamage
)

func (c Contact) String() string {
	switch c {
	case ContactStomp:
		return "stomp"
	case ContactDamage:
		return "damage"
	}
	return "none"
}

// Interact resolves overlap between p and e. A falling player whose vertical
// center is above the enemy's top stomps it and bounces; any other overlap
// costs a life and knocks the player up and away from the enemy. The caller
// removes a stomped enemy.
func Interact(p *Player, e *Enemy, t Tuning) Contact {
	if !p.Rect.Intersects(e.Rect) {
		return ContactNone
	}

	if p.VY > 0 && p.Y+float64(p.Rect.H/2) < e.Y {
		p.VY = t.JumpForce * t.StompBounce
		p.Score += t.StompScore
		return ContactStomp
	}

	p.Lives--
	p.VY = t.JumpForce * t.KnockbackLift
	if p.X < e.X {
		p.VX = -t.KnockbackSpeed
	} else {
		p.VX = t.KnockbackSpeed
	}
	return ContactDamage
}
