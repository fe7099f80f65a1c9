package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraFollowLerps(t *testing.T) {
	c := NewCamera(640, 360)
	c.Follow(1000, 500, 4000, 1000)
	assert.Equal(t, 68, c.X)
	assert.Equal(t, 32, c.Y)
}

func TestCameraClamps(t *testing.T) {
	c := NewCamera(640, 360)
	c.Follow(10, 10, 4000, 1000)
	assert.Zero(t, c.X)
	assert.Zero(t, c.Y)

	c.X, c.Y = 3300, 600
	for i := 0; i < 200; i++ {
		c.Follow(3990, 990, 4000, 1000)
		assert.LessOrEqual(t, c.X, 4000-640)
		assert.LessOrEqual(t, c.Y, 1000-360)
	}
	assert.Equal(t, 3360, c.X)
	assert.Equal(t, 640, c.Y)
}

func TestCameraSmallMapPinsToOrigin(t *testing.T) {
	c := NewCamera(640, 360)
	c.Follow(200, 100, 300, 200)
	assert.Equal(t, 0, c.X)
	assert.Equal(t, 0, c.Y)
	assert.Equal(t, 640, c.Rect().W)
}
