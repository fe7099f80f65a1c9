// Package ui holds the input-independent state of the menu, options and intro
// screens. Scenes translate key and mouse events into calls on these types
// and draw whatever state results.
package ui

import "github.com/milk9111/kiccas/common"

// Sound is audio feedback requested by a state change.
type Sound int

const (
	SoundNone Sound = iota
	SoundClick
	SoundHover
)

// HitTest returns the 1-based index of the first button strictly containing
// (x, y), or 0.
func HitTest(buttons []common.Rect, x, y int) int {
	for i, b := range buttons {
		if b.Contains(x, y) {
			return i + 1
		}
	}
	return 0
}

// Cycle moves a 1-based selection by delta, wrapping within 1..n. A cleared
// selection (0) moving up lands on n and moving down lands on 1.
func Cycle(sel, delta, n int) int {
	if n <= 0 {
		return 0
	}
	sel += delta
	if sel < 1 {
		return n
	}
	if sel > n {
		return 1
	}
	return sel
}
