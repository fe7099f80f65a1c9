package physics

// Behavior selects how an enemy moves. Only Patrol is simulated; Chase is
// reserved and behaves like Patrol.
type Behavior int

const (
	BehaviorPatrol Behavior = iota
	BehaviorChase
)

type Enemy struct {
	Body
	Behavior Behavior
}

func NewEnemy(x, y, vx float64, w, h int) Enemy {
	e := Enemy{Body: newBody(x, y, w, h), Behavior: BehaviorPatrol}
	e.VX = vx
	e.face()
	return e
}

// Step applies gravity with floor snapping, then the patrol move. On a
// horizontal hit the velocity is reversed and applied once, so the enemy
// bounces off the wall in the same tick. It returns true when it bounced.
func (e *Enemy) Step(m *LevelMap, t Tuning) bool {
	e.VY += t.Gravity
	e.Y += e.VY
	e.syncRect()
	if m.Collides(e.Rect) && e.VY > 0 {
		e.VY = 0
		e.nudge(m, -1)
	}

	e.X += e.VX
	e.syncRect()
	bounced := false
	if m.Collides(e.Rect) {
		e.VX = -e.VX
		e.X += e.VX
		e.syncRect()
		bounced = true
	}
	e.face()
	return bounced
}

func (e *Enemy) face() {
	if e.VX > 0 {
		e.Direction = DirRight
	} else if e.VX < 0 {
		e.Direction = DirLeft
	}
}
