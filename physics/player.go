package physics

// Input is the held-key state sampled once per tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Player is the controllable body plus its scoring state.
type Player struct {
	Body
	Lives    int
	Score    int
	OnGround bool
	Jumping  bool
}

// PlayerStep reports what happened during one Step.
type PlayerStep struct {
	Jumped  bool
	Landed  bool
	FellOut bool
}

func NewPlayer(x, y float64, w, h, lives int) *Player {
	return &Player{Body: newBody(x, y, w, h), Lives: lives}
}

// Step runs horizontal acceleration, the jump impulse, gravity and the
// axis-separated collision response against m, X first then Y.
func (p *Player) Step(in Input, m *LevelMap, t Tuning) PlayerStep {
	var res PlayerStep

	p.accelerate(in, t)
	res.Jumped = p.jump(in, t)

	p.VY += t.Gravity
	if p.VY > t.MaxFallSpeed {
		p.VY = t.MaxFallSpeed
	}

	p.moveX(m)
	res.Landed = p.moveY(m)

	if p.Y > float64(m.Height) {
		p.Lives--
		p.X = t.RespawnX
		p.Y = t.RespawnY
		p.VY = 0
		p.syncRect()
		res.FellOut = true
	}
	return res
}

func (p *Player) accelerate(in Input, t Tuning) {
	var target float64
	switch {
	case in.Right:
		target = t.MaxSpeed
		p.Direction = DirRight
	case in.Left:
		target = -t.MaxSpeed
		p.Direction = DirLeft
	default:
		p.applyFriction(t.Friction)
		return
	}

	if p.VX < target {
		p.VX = min(p.VX+t.Acceleration, target)
	} else if p.VX > target {
		p.VX = max(p.VX-t.Acceleration, target)
	}
}

func (p *Player) applyFriction(f float64) {
	if p.VX > 0 {
		p.VX = max(p.VX-f, 0)
	} else if p.VX < 0 {
		p.VX = min(p.VX+f, 0)
	}
}

func (p *Player) jump(in Input, t Tuning) bool {
	jumped := false
	if in.Jump && p.OnGround {
		p.VY = t.JumpForce
		p.OnGround = false
		p.Jumping = true
		jumped = true
	}
	if !in.Jump && p.VY < 0 {
		p.VY *= t.JumpCut
	}
	return jumped
}

// moveX applies VX, reverts the move on collision and clamps the position to
// the map's horizontal extent.
func (p *Player) moveX(m *LevelMap) {
	p.X += p.VX
	p.syncRect()
	if m.Collides(p.Rect) {
		p.X -= p.VX
		p.VX = 0
	}

	if p.X < 0 {
		p.X = 0
	}
	if maxX := float64(m.Width - p.Rect.W); p.X > maxX {
		p.X = maxX
	}
	p.syncRect()
}

// moveY applies VY and settles the body outside terrain: up onto the floor
// when falling, down out of the ceiling when rising.
//
// A grounded body whose rect would collide one pixel lower is resting: it
// keeps its position with zero vertical velocity instead of sinking by a
// fraction of gravity and being nudged back on alternate ticks.
func (p *Player) moveY(m *LevelMap) bool {
	wasGrounded := p.OnGround
	p.OnGround = false
	if wasGrounded && p.VY >= 0 && m.Collides(p.Rect.Translate(0, 1)) {
		p.OnGround = true
		p.VY = 0
		return false
	}

	p.Y += p.VY
	p.syncRect()

	if !m.Collides(p.Rect) {
		return false
	}
	switch {
	case p.VY > 0:
		p.OnGround = true
		p.Jumping = false
		p.nudge(m, -1)
		p.VY = 0
		return true
	case p.VY < 0:
		p.nudge(m, 1)
		p.VY = 0
	}
	return false
}
