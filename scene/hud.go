package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/kiccas/common"
	"github.com/milk9111/kiccas/level"
)

const (
	heartSize    = 25
	heartSpacing = 30
	heartX       = 20
	heartY       = 60
)

// hud draws score, world and time across the top of the level view and one
// heart per remaining life below them.
type hud struct {
	face  text.Face
	heart *ebiten.Image
	color color.Color
}

func newHUD(ctx *Context) *hud {
	return &hud{
		face:  ctx.Loader.LoadFont(fontPath, 24),
		heart: ctx.Loader.ImageOrNil("image/v4.png"),
		color: colorOr(ctx.Theme.HUDText.Color, color.White),
	}
}

func (h *hud) Draw(screen *ebiten.Image, l *level.Level) {
	drawText(screen, fmt.Sprintf("MARIO\n%06d", l.Player.Score), h.face, 20, 10, h.color)
	drawText(screen, fmt.Sprintf("WORLD\n1-%d", l.ID), h.face, 280, 10, h.color)
	drawText(screen, fmt.Sprintf("TIME\n%03d", l.SecondsLeft()), h.face, 550, 10, h.color)

	for i := 0; i < l.Player.Lives; i++ {
		r := common.Rect{X: heartX + heartSpacing*i, Y: heartY, W: heartSize, H: heartSize}
		drawImageRect(screen, h.heart, r)
	}
}
