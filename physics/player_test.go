package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerAtRest(t *testing.T) {
	tun := DefaultTuning()
	m := floorMap(400, 300, 200)
	p := NewPlayer(100, 100, 50, 70, 3)
	settle(p, m, tun)
	require.True(t, p.OnGround)
	restY := p.Rect.Y

	for i := 0; i < 120; i++ {
		p.Step(Input{}, m, tun)
		p.Animate(tun.PlayerAnimTicks, tun.AnimFrames, tun.AnimThreshold)

		require.True(t, p.OnGround, "tick %d", i)
		require.Zero(t, p.VX, "tick %d", i)
		require.Zero(t, p.VY, "tick %d", i)
		require.Equal(t, restY, p.Rect.Y, "tick %d", i)
		require.Zero(t, p.Frame, "tick %d", i)
	}
	assert.Equal(t, 199, p.Rect.Y+p.Rect.H, "feet sit on the row above the floor")
}

func TestPlayerAccelerates(t *testing.T) {
	tun := DefaultTuning()
	m := floorMap(4000, 300, 200)
	p := NewPlayer(50, 100, 50, 70, 3)
	settle(p, m, tun)

	for i := 1; i <= 5; i++ {
		p.Step(Input{Right: true}, m, tun)
		assert.InDelta(t, 0.4*float64(i), p.VX, 1e-9, "tick %d", i)
	}
	for i := 0; i < 60; i++ {
		p.Step(Input{Right: true}, m, tun)
		require.LessOrEqual(t, p.VX, tun.MaxSpeed)
	}
	assert.Equal(t, tun.MaxSpeed, p.VX)
	assert.Equal(t, DirRight, p.Direction)
}

func TestPlayerFriction(t *testing.T) {
	tun := DefaultTuning()
	m := floorMap(4000, 300, 200)
	p := NewPlayer(50, 100, 50, 70, 3)
	settle(p, m, tun)
	p.VX = -1

	p.Step(Input{}, m, tun)
	assert.InDelta(t, -0.7, p.VX, 1e-9)
	for i := 0; i < 5; i++ {
		p.Step(Input{}, m, tun)
	}
	assert.Zero(t, p.VX, "friction stops at zero without overshooting")
}

func TestPlayerJump(t *testing.T) {
	tun := DefaultTuning()
	m := floorMap(400, 300, 200)
	p := NewPlayer(100, 100, 50, 70, 3)
	settle(p, m, tun)

	require.True(t, p.jump(Input{Jump: true}, tun))
	assert.Equal(t, tun.JumpForce, p.VY)
	assert.False(t, p.OnGround)
	assert.True(t, p.Jumping)

	q := NewPlayer(100, 100, 50, 70, 3)
	settle(q, m, tun)
	res := q.Step(Input{Jump: true}, m, tun)
	assert.True(t, res.Jumped)
	assert.False(t, q.OnGround)
	assert.Less(t, q.VY, 0.0)
}

func TestPlayerCannotJumpMidAir(t *testing.T) {
	tun := DefaultTuning()
	p := NewPlayer(100, 10, 50, 70, 3)
	assert.False(t, p.jump(Input{Jump: true}, tun))
	assert.Zero(t, p.VY)
}

func TestPlayerJumpCut(t *testing.T) {
	tun := DefaultTuning()
	p := NewPlayer(100, 100, 50, 70, 3)
	p.VY = -10
	p.jump(Input{}, tun)
	assert.Equal(t, -5.0, p.VY)
}

func TestPlayerLandingLeavesNoOverlap(t *testing.T) {
	tun := DefaultTuning()
	m := floorMap(400, 300, 200)
	p := NewPlayer(100, 0, 50, 70, 3)

	landed := false
	for i := 0; i < 200; i++ {
		in := Input{Jump: i > 100 && i%40 == 0, Right: i%3 == 0}
		res := p.Step(in, m, tun)
		require.False(t, m.Collides(p.Rect), "tick %d overlaps terrain", i)
		if res.Landed {
			landed = true
			assert.True(t, p.OnGround)
			assert.Zero(t, p.VY)
			assert.False(t, p.Jumping)
		}
	}
	assert.True(t, landed)
}

func TestPlayerCeiling(t *testing.T) {
	tun := DefaultTuning()
	m, err := NewLevelMap(newMask(400, 300, func(_, y int) bool { return y < 50 || y >= 280 }), 400, 300)
	require.NoError(t, err)
	p := NewPlayer(100, 55, 50, 70, 3)
	p.VY = -10

	p.Step(Input{Jump: true}, m, tun)
	assert.Zero(t, p.VY)
	assert.GreaterOrEqual(t, p.Rect.Y, 50)
	assert.False(t, m.Collides(p.Rect))
}

func TestPlayerWall(t *testing.T) {
	tun := DefaultTuning()
	m, err := NewLevelMap(newMask(400, 300, func(x, y int) bool { return y >= 200 || x >= 300 }), 400, 300)
	require.NoError(t, err)
	p := NewPlayer(200, 100, 50, 70, 3)
	settle(p, m, tun)

	for i := 0; i < 60; i++ {
		p.Step(Input{Right: true}, m, tun)
		require.Less(t, p.Rect.X+p.Rect.W, 300, "tick %d", i)
		require.False(t, m.Collides(p.Rect), "tick %d", i)
	}
}

func TestPlayerHorizontalClamp(t *testing.T) {
	tun := DefaultTuning()
	m := floorMap(400, 300, 200)

	p := NewPlayer(345, 100, 50, 70, 3)
	p.VX = 6.8
	p.Step(Input{Right: true}, m, tun)
	assert.Equal(t, 350.0, p.X)
	assert.Equal(t, 350, p.Rect.X)

	p = NewPlayer(2, 100, 50, 70, 3)
	p.VX = -6.8
	p.Step(Input{Left: true}, m, tun)
	assert.Zero(t, p.X)
	assert.Equal(t, DirLeft, p.Direction)
}

func TestPlayerFallsOut(t *testing.T) {
	tun := DefaultTuning()
	m, err := NewLevelMap(newMask(400, 300, nil), 400, 300)
	require.NoError(t, err)
	p := NewPlayer(200, 290, 50, 70, 3)
	p.VY = tun.MaxFallSpeed

	res := p.Step(Input{}, m, tun)
	require.True(t, res.FellOut)
	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, tun.RespawnX, p.X)
	assert.Equal(t, tun.RespawnY, p.Y)
	assert.Zero(t, p.VY)
	assert.Equal(t, 100, p.Rect.X)
	assert.Equal(t, 100, p.Rect.Y)
}

func TestAnimate(t *testing.T) {
	var b Body
	b.Animate(5, 4, 0.5)
	assert.Zero(t, b.Frame)

	b.VX = 2
	for i := 0; i < 5; i++ {
		b.Animate(5, 4, 0.5)
	}
	assert.Zero(t, b.Frame)
	b.Animate(5, 4, 0.5)
	assert.Equal(t, 1, b.Frame)

	for i := 0; i < 18; i++ {
		b.Animate(5, 4, 0.5)
	}
	assert.Zero(t, b.Frame, "wraps after four frames")

	b.Frame = 2
	b.VX = 0.5
	b.Animate(5, 4, 0.5)
	assert.Zero(t, b.Frame, "at the threshold the body rests")
}
