package physics

import "github.com/milk9111/kiccas/common"

// DefaultCameraSmooth is the fraction of the remaining distance covered per tick.
const DefaultCameraSmooth = 0.1

// Camera is the visible window into the map, in whole world pixels.
type Camera struct {
	X, Y   int
	W, H   int
	Smooth float64
}

func NewCamera(w, h int) Camera {
	return Camera{W: w, H: h, Smooth: DefaultCameraSmooth}
}

// Rect returns the camera window in world space.
func (c Camera) Rect() common.Rect {
	return common.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// Follow moves the camera a fraction of the way toward centering (x, y) and
// clamps the origin to [0, map size - view size] on each axis. A map smaller
// than the view pins the camera at 0.
func (c *Camera) Follow(x, y float64, mapW, mapH int) {
	targetX := int(x) - c.W/2
	targetY := int(y) - c.H/2

	c.X = int(common.Lerp(float64(c.X), float64(targetX), c.Smooth))
	c.Y = int(common.Lerp(float64(c.Y), float64(targetY), c.Smooth))

	c.X = common.Clamp(c.X, 0, mapW-c.W)
	c.Y = common.Clamp(c.Y, 0, mapH-c.H)
}
