package level

import (
	"github.com/milk9111/kiccas/ecs"
	"github.com/milk9111/kiccas/physics"
)

// TimerSystem counts the level clock down to zero.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem { return &TimerSystem{} }

func (s *TimerSystem) Update(l *Level) {
	if l.TicksLeft > 0 {
		l.TicksLeft--
	}
}

// PlayerSystem moves the player and advances its walk cycle.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem { return &PlayerSystem{} }

func (s *PlayerSystem) Update(l *Level) {
	p := l.Player
	t := l.Spec.Tuning

	res := p.Step(l.input, l.Map, t)
	if res.Jumped {
		l.Events.Push(ecs.Event{Type: EventJump})
	}
	if res.FellOut {
		l.Events.Push(ecs.Event{Type: EventFell, Data: p.Lives})
	}
	p.Animate(t.PlayerAnimTicks, t.AnimFrames, t.AnimThreshold)
}

// EnemySystem resolves contact with the player, then moves each remaining
// enemy. Stomped enemies are removed from the pool.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem { return &EnemySystem{} }

func (s *EnemySystem) Update(l *Level) {
	t := l.Spec.Tuning

	l.Enemies.ForEach(func(e ecs.Entity, enemy *physics.Enemy) {
		switch physics.Interact(l.Player, enemy, t) {
		case physics.ContactStomp:
			l.Enemies.Destroy(e)
			l.Events.Push(ecs.Event{Type: EventStomp, Entity: e, Data: l.Player.Score})
			return
		case physics.ContactDamage:
			l.Events.Push(ecs.Event{Type: EventDamage, Entity: e, Data: l.Player.Lives})
		}

		if enemy.Step(l.Map, t) {
			l.Events.Push(ecs.Event{Type: EventBounce, Entity: e})
		}
		enemy.Animate(t.EnemyAnimTicks, t.EnemyAnimFrames, t.EnemyAnimThreshold)
	})
}

// CameraSystem keeps the view on the player.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem { return &CameraSystem{} }

func (s *CameraSystem) Update(l *Level) {
	l.Camera.Follow(l.Player.X, l.Player.Y, l.Map.Width, l.Map.Height)
}

// OutcomeSystem ends the attempt. Losing the last life on the tick the
// finish is reached still counts as death.
type OutcomeSystem struct{}

func NewOutcomeSystem() *OutcomeSystem { return &OutcomeSystem{} }

func (s *OutcomeSystem) Update(l *Level) {
	switch {
	case l.Player.Lives <= 0:
		l.end(Dead, EventDead)
	case l.Player.X > float64(l.Map.Width-l.Spec.FinishMargin):
		l.end(Complete, EventComplete)
	}
}
