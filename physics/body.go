package physics

import "github.com/milk9111/kiccas/common"

type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

// Body is the simulated part of a player or enemy. X and Y are the continuous
// position; Rect is derived from them by truncation and is what collision
// tests use.
type Body struct {
	X, Y   float64
	VX, VY float64
	Rect   common.Rect

	Direction Direction
	Frame     int
	AnimTimer int
}

func newBody(x, y float64, w, h int) Body {
	b := Body{X: x, Y: y, Rect: common.Rect{W: w, H: h}}
	b.syncRect()
	return b
}

func (b *Body) syncRect() {
	b.Rect.X = int(b.X)
	b.Rect.Y = int(b.Y)
}

// nudge moves the body vertically one pixel at a time by dy until it no
// longer collides. A body buried in solid terrain walks until it leaves the
// mask, where every sample is empty.
func (b *Body) nudge(m *LevelMap, dy float64) {
	for m.Collides(b.Rect) {
		b.Y += dy
		b.syncRect()
	}
}

// Animate advances a frames-long walk cycle every ticks+1 updates while the
// body moves faster than threshold, and rests on frame 0 otherwise.
func (b *Body) Animate(ticks, frames int, threshold float64) {
	if frames <= 0 {
		return
	}
	if common.Abs(b.VX) <= threshold {
		b.Frame = 0
		return
	}
	b.AnimTimer++
	if b.AnimTimer > ticks {
		b.Frame = (b.Frame + 1) % frames
		b.AnimTimer = 0
	}
}
