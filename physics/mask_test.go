package physics

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskOutOfBoundsIsEmpty(t *testing.T) {
	m := newMask(8, 6, func(_, _ int) bool { return true })

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 6}, {-100, -100}, {100, 3}} {
		assert.False(t, m.IsSolid(pt[0], pt[1]), "point %v", pt)
	}
	assert.True(t, m.IsSolid(0, 0))
	assert.True(t, m.IsSolid(7, 5))
}

func TestMaskExactBlackOnly(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 0xff})
	img.SetNRGBA(1, 0, color.NRGBA{R: 1, A: 0xff})
	img.SetNRGBA(2, 0, color.NRGBA{B: 1, A: 0xff})
	img.SetNRGBA(3, 0, color.NRGBA{A: 0})
	img.SetNRGBA(4, 0, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0})
	m := NewMask(img)

	assert.True(t, m.IsSolid(0, 0), "opaque black")
	assert.False(t, m.IsSolid(1, 0), "near-black red")
	assert.False(t, m.IsSolid(2, 0), "near-black blue")
	assert.True(t, m.IsSolid(3, 0), "alpha is ignored for black")
	assert.False(t, m.IsSolid(4, 0), "alpha is ignored for white")
}

func TestMaskHonorsImageOrigin(t *testing.T) {
	img := image.NewGray(image.Rect(10, 10, 14, 14))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.SetGray(10, 10, color.Gray{Y: 0})
	m := NewMask(img)

	require.Equal(t, 4, m.Width())
	assert.True(t, m.IsSolid(0, 0))
	assert.False(t, m.IsSolid(1, 0))
}

func TestMaskNil(t *testing.T) {
	var m *Mask
	assert.False(t, m.IsSolid(0, 0))
	assert.Zero(t, m.Width())
	assert.Nil(t, NewMask(nil))
}

func TestMaskSolidRatio(t *testing.T) {
	m := newMask(10, 10, func(_, y int) bool { return y >= 5 })
	assert.InDelta(t, 0.5, m.SolidRatio(), 1e-9)
}
