package physics

import (
	"errors"
	"fmt"

	"github.com/milk9111/kiccas/common"
)

// DefaultSampleStep is the spacing, in world pixels, between perimeter samples.
const DefaultSampleStep = 5

var ErrInvalidMapSize = errors.New("physics: invalid map size")

// LevelMap pairs the displayed map size with a collision mask that may have a
// different resolution. World coordinates are converted to mask coordinates
// by multiplying with ScaleX and ScaleY and truncating.
type LevelMap struct {
	Mask   *Mask
	Width  int
	Height int
	ScaleX float32
	ScaleY float32
	Step   int
}

// NewLevelMap builds a map of width x height world pixels over mask.
func NewLevelMap(mask *Mask, width, height int) (*LevelMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: map %dx%d", ErrInvalidMapSize, width, height)
	}
	if mask.Width() <= 0 || mask.Height() <= 0 {
		return nil, fmt.Errorf("%w: mask %dx%d", ErrInvalidMapSize, mask.Width(), mask.Height())
	}
	return &LevelMap{
		Mask:   mask,
		Width:  width,
		Height: height,
		ScaleX: float32(mask.Width()) / float32(width),
		ScaleY: float32(mask.Height()) / float32(height),
		Step:   DefaultSampleStep,
	}, nil
}

// SolidAt samples the mask at world position (x, y).
func (m *LevelMap) SolidAt(x, y int) bool {
	return m.Mask.IsSolid(int(float32(x)*m.ScaleX), int(float32(y)*m.ScaleY))
}

// Collides reports whether box touches solid terrain. It samples the bottom,
// top, left and right edges every Step pixels and returns on the first solid
// sample. The right and bottom edges are sampled one pixel outside the box.
// Solid gaps narrower than Step between two samples can be missed.
func (m *LevelMap) Collides(box common.Rect) bool {
	step := m.Step
	if step <= 0 {
		step = DefaultSampleStep
	}
	right := box.X + box.W
	bottom := box.Y + box.H

	for x := box.X; x < right; x += step {
		if m.SolidAt(x, bottom) {
			return true
		}
	}
	if m.SolidAt(right, bottom) {
		return true
	}

	for x := box.X; x < right; x += step {
		if m.SolidAt(x, box.Y) {
			return true
		}
	}
	if m.SolidAt(right, box.Y) {
		return true
	}

	for y := box.Y; y < bottom; y += step {
		if m.SolidAt(box.X, y) {
			return true
		}
	}

	for y := box.Y; y < bottom; y += step {
		if m.SolidAt(right, y) {
			return true
		}
	}
	return false
}
