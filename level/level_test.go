package level

import (
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/kiccas/ecs"
	"github.com/milk9111/kiccas/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap(t *testing.T, w, h, floorY int) *physics.LevelMap {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if floorY > 0 && y >= floorY {
				c = color.NRGBA{A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	m, err := physics.NewLevelMap(physics.NewMask(img), w, h)
	require.NoError(t, err)
	return m
}

// emptyLevel is a level with no enemies.
func emptyLevel(t *testing.T, m *physics.LevelMap) *Level {
	t.Helper()
	spec := DefaultSpec()
	spec.EnemyBaseCount = -1
	l, err := New(1, m, spec)
	require.NoError(t, err)
	require.Zero(t, l.Enemies.Len())
	return l
}

func events(l *Level) []ecs.EventType {
	var out []ecs.EventType
	for _, e := range l.Events.Drain() {
		out = append(out, e.Type)
	}
	return out
}

func TestNewRequiresMap(t *testing.T) {
	_, err := New(1, nil, DefaultSpec())
	assert.ErrorIs(t, err, ErrMissingAssets)
}

func TestEnemyCount(t *testing.T) {
	spec := DefaultSpec()
	cases := []struct {
		id, want int
	}{
		{1, 6},
		{4, 9},
		{15, 20},
		{40, 20},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, spec.EnemyCount(c.id), "level %d", c.id)
	}
}

func TestNewSpawnsEnemies(t *testing.T) {
	l, err := New(2, testMap(t, 4000, 400, 380), DefaultSpec())
	require.NoError(t, err)

	require.Equal(t, 7, l.Enemies.Len())
	xs := map[float64]bool{}
	l.Enemies.ForEach(func(_ ecs.Entity, e *physics.Enemy) {
		xs[e.X] = true
		assert.Equal(t, 2.0, e.VX)
	})
	assert.True(t, xs[800])
	assert.True(t, xs[3800])
	assert.Equal(t, 3, l.Player.Lives)
	assert.Equal(t, 400, l.SecondsLeft())
}

func TestTimerStopsAtZero(t *testing.T) {
	l := emptyLevel(t, testMap(t, 4000, 400, 380))
	start := l.TicksLeft
	l.Update(physics.Input{})
	assert.Equal(t, start-1, l.TicksLeft)

	l.TicksLeft = 0
	l.Update(physics.Input{})
	assert.Zero(t, l.TicksLeft)
	assert.Equal(t, Playing, l.Outcome(), "running out of time does not end the level")
}

func TestStompRemovesEnemy(t *testing.T) {
	l := emptyLevel(t, testMap(t, 4000, 400, 380))
	l.Player.X, l.Player.Y, l.Player.VY = 100, 40, 5
	target := l.Enemies.Create(physics.NewEnemy(100, 100, 2, 60, 70))

	require.Equal(t, Playing, l.Update(physics.Input{}))

	assert.False(t, l.Enemies.IsAlive(target))
	assert.Zero(t, l.Enemies.Len())
	assert.Equal(t, 100, l.Player.Score)
	assert.Equal(t, 3, l.Player.Lives)
	assert.Less(t, l.Player.VY, 0.0)
	assert.Contains(t, events(l), EventStomp)
}

func TestEnemyContactDamages(t *testing.T) {
	l := emptyLevel(t, testMap(t, 4000, 400, 380))
	l.Player.X, l.Player.Y = 100, 100
	e := l.Enemies.Create(physics.NewEnemy(120, 100, 2, 60, 70))

	l.Update(physics.Input{})

	assert.True(t, l.Enemies.IsAlive(e))
	assert.Equal(t, 2, l.Player.Lives)
	assert.Equal(t, -l.Spec.Tuning.KnockbackSpeed, l.Player.VX)
	assert.Equal(t, []ecs.EventType{EventDamage}, events(l))
}

func TestCompleteAdvances(t *testing.T) {
	l := emptyLevel(t, testMap(t, 1000, 400, 380))
	l.Player.X = 850

	require.Equal(t, Complete, l.Update(physics.Input{}))
	assert.Equal(t, 2, l.Next())
	assert.Contains(t, events(l), EventComplete)

	x := l.Player.X
	assert.Equal(t, Complete, l.Update(physics.Input{Right: true}))
	assert.Equal(t, x, l.Player.X, "ended attempts do not simulate")
}

func TestDeathWinsOverComplete(t *testing.T) {
	l := emptyLevel(t, testMap(t, 1000, 400, 380))
	l.Player.X = 850
	l.Player.Lives = 0

	assert.Equal(t, Dead, l.Update(physics.Input{}))
	assert.Zero(t, l.Next())
	assert.Equal(t, []ecs.EventType{EventDead}, events(l))
}

func TestFallingOutOnLastLife(t *testing.T) {
	l := emptyLevel(t, testMap(t, 1000, 400, 0))
	l.Player.Lives = 1
	l.Player.Y = 399
	l.Player.VY = 12

	require.Equal(t, Dead, l.Update(physics.Input{}))
	assert.Zero(t, l.Next())
	assert.Equal(t, []ecs.EventType{EventFell, EventDead}, events(l))
}

func TestQuit(t *testing.T) {
	l := emptyLevel(t, testMap(t, 1000, 400, 380))
	l.Quit()
	assert.Equal(t, Quit, l.Update(physics.Input{}))
	assert.Zero(t, l.Next())

	l = emptyLevel(t, testMap(t, 1000, 400, 380))
	l.Player.X = 850
	l.Update(physics.Input{})
	l.Quit()
	assert.Equal(t, Complete, l.Outcome(), "quit does not override a result")
}

func TestCameraStaysInBounds(t *testing.T) {
	l := emptyLevel(t, testMap(t, 3000, 800, 700))
	for i := 0; i < 300; i++ {
		l.Update(physics.Input{Right: true, Jump: i%50 == 0})
		require.GreaterOrEqual(t, l.Camera.X, 0)
		require.LessOrEqual(t, l.Camera.X, 3000-640)
		require.GreaterOrEqual(t, l.Camera.Y, 0)
		require.LessOrEqual(t, l.Camera.Y, 800-360)
		require.GreaterOrEqual(t, l.Player.X, 0.0)
		require.LessOrEqual(t, l.Player.X, float64(3000-l.Player.Rect.W))
	}
}
