package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/kiccas/common"
)

// creditsTicks keeps the credits on screen for half a second.
const creditsTicks = common.TPS / 2

type Credits struct {
	face  text.Face
	ticks int
}

func NewCredits(ctx *Context) *Credits {
	return &Credits{face: ctx.Loader.LoadFont(fontPath, 60)}
}

func (c *Credits) Update() Transition {
	c.ticks++
	if c.ticks >= creditsTicks {
		return to(ToMenu)
	}
	return none
}

func (c *Credits) Draw(screen *ebiten.Image) {
	drawText(screen, "KICCAS", c.face, 100, 100, color.White)
}

func (c *Credits) Layout() (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (c *Credits) Close() {}
