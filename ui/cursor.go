package ui

// Cursor sprite sheet geometry.
const (
	CursorFrames = 9
	CursorW      = 60
	CursorH      = 65
	CursorSpeed  = 5
)

// Cursor is the animated pointer that trails the mouse in the main menu.
type Cursor struct {
	X, Y  int
	Show  bool
	Frame int
}

func NewCursor(x, y int) Cursor {
	return Cursor{X: x, Y: y, Show: true}
}

// Follow advances the animation and steps toward (x, y) by CursorSpeed on
// each axis. A hidden cursor stays frozen.
func (c *Cursor) Follow(x, y int) {
	if !c.Show {
		return
	}
	c.Frame = (c.Frame + 1) % CursorFrames

	if c.X < x {
		c.X += CursorSpeed
	}
	if c.X > x {
		c.X -= CursorSpeed
	}
	if c.Y < y {
		c.Y += CursorSpeed
	}
	if c.Y > y {
		c.Y -= CursorSpeed
	}
}

// FrameX is the x offset of the current frame in the sprite sheet.
func (c Cursor) FrameX() int {
	return c.Frame * CursorW
}
