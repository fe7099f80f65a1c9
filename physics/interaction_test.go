package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteract(t *testing.T) {
	tun := DefaultTuning()

	cases := []struct {
		name   string
		px, py float64
		pvy    float64
		want   Contact
		lives  int
		score  int
		vx, vy float64
	}{
		{"apart", 400, 40, 5, ContactNone, 3, 0, 0, 5},
		{"stomp", 100, 40, 5, ContactStomp, 3, 100, 0, tun.JumpForce * tun.StompBounce},
		{"rising_into_enemy", 100, 40, -2, ContactDamage, 2, 0, tun.KnockbackSpeed, tun.JumpForce * tun.KnockbackLift},
		{"side_hit_from_left", 60, 90, 0, ContactDamage, 2, 0, -tun.KnockbackSpeed, tun.JumpForce * tun.KnockbackLift},
		{"side_hit_from_right", 140, 90, 0, ContactDamage, 2, 0, tun.KnockbackSpeed, tun.JumpForce * tun.KnockbackLift},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NewPlayer(c.px, c.py, 50, 70, 3)
			p.VY = c.pvy
			e := NewEnemy(100, 100, 2, 60, 70)

			got := Interact(p, &e, tun)
			assert.Equal(t, c.want, got, got.String())
			assert.Equal(t, c.lives, p.Lives)
			assert.Equal(t, c.score, p.Score)
			assert.Equal(t, c.vx, p.VX)
			assert.Equal(t, c.vy, p.VY)
		})
	}
}
