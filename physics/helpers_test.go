package physics

import (
	"image"
	"image/color"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

// newMask returns a w x h mask where solid(x, y) pixels are black.
func newMask(w, h int, solid func(x, y int) bool) *Mask {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if solid != nil && solid(x, y) {
				img.SetNRGBA(x, y, black)
			} else {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return NewMask(img)
}

// floorMap is a map whose rows at and below floorY are solid.
func floorMap(w, h, floorY int) *LevelMap {
	m, err := NewLevelMap(newMask(w, h, func(_, y int) bool { return y >= floorY }), w, h)
	if err != nil {
		panic(err)
	}
	return m
}

// settle runs idle ticks until the player is grounded.
func settle(p *Player, m *LevelMap, t Tuning) {
	for i := 0; i < 600 && !p.OnGround; i++ {
		p.Step(Input{}, m, t)
	}
}
