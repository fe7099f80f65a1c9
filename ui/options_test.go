package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolumeIndex(t *testing.T) {
	cases := []struct{ v, want int }{
		{0, 0}, {1, 1}, {42, 1}, {43, 2}, {84, 2}, {85, 3}, {128, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, VolumeIndex(c.v), "volume %d", c.v)
	}
}

func TestInitialVolumeIndex(t *testing.T) {
	assert.Equal(t, 0, NewOptions(0, false).VolumeIndex)
	assert.Equal(t, 1, NewOptions(40, false).VolumeIndex)
	assert.Equal(t, 2, NewOptions(41, false).VolumeIndex)
	assert.Equal(t, 2, NewOptions(64, false).VolumeIndex)
	assert.Equal(t, 3, NewOptions(81, false).VolumeIndex)
}

func TestVolumeStepsOnlyWhenSelected(t *testing.T) {
	o := NewOptions(64, false)
	assert.Equal(t, ActionNone, o.Increase())
	assert.Equal(t, 64, o.Volume)

	o.Down()
	assert.Equal(t, OptionVolume, o.Selected)
	assert.Equal(t, ActionVolume, o.Increase())
	assert.Equal(t, 74, o.Volume)

	for i := 0; i < 10; i++ {
		o.Increase()
	}
	assert.Equal(t, 128, o.Volume)
	assert.Equal(t, 3, o.VolumeIndex)

	for i := 0; i < 20; i++ {
		o.Decrease()
	}
	assert.Equal(t, 0, o.Volume)
	assert.Equal(t, 0, o.VolumeIndex)
}

func TestVolumeClickWraps(t *testing.T) {
	o := NewOptions(100, false)
	assert.Equal(t, ActionVolume, o.Click(500, 100))
	assert.Equal(t, 0, o.Volume, "132 wraps to zero")
	o.Click(500, 100)
	assert.Equal(t, 32, o.Volume)

	o = NewOptions(96, false)
	o.Click(500, 100)
	assert.Equal(t, 128, o.Volume, "exactly the maximum does not wrap")
}

func TestOptionsButtons(t *testing.T) {
	o := NewOptions(64, false)

	o.Hover(200, 300)
	assert.Equal(t, OptionFullscreen, o.Selected)
	assert.Equal(t, 1, o.FullscreenState())
	assert.Equal(t, ActionFullscreen, o.Enter())
	assert.True(t, o.Fullscreen)
	assert.Equal(t, 2, o.FullscreenState())

	assert.Equal(t, ActionFullscreen, o.Click(200, 300))
	assert.False(t, o.Fullscreen)

	o.Hover(200, 500)
	assert.Equal(t, 1, o.BackState())
	assert.Equal(t, ActionBack, o.Enter())
	assert.Equal(t, ActionBack, o.Click(200, 500))

	o.Hover(0, 0)
	assert.Equal(t, OptionNone, o.Selected)
	assert.Equal(t, ActionNone, o.Enter())
	assert.Equal(t, ActionNone, o.Click(0, 0))

	o.Up()
	assert.Equal(t, OptionBack, o.Selected)
}
