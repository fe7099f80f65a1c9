package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/kiccas/common"
	"github.com/milk9111/kiccas/ui"
)

// Options is the settings screen: music volume and fullscreen.
type Options struct {
	ctx *Context

	background *ebiten.Image
	volume     [4]*ebiten.Image
	fullscreen [3]*ebiten.Image
	back       [3]*ebiten.Image
	click      *audio.Player
	face       text.Face

	state          *ui.Options
	mouseX, mouseY int
}

func NewOptions(ctx *Context) *Options {
	l := ctx.Loader
	o := &Options{
		ctx:        ctx,
		background: l.ImageOrNil("image/optionback.png"),
		volume: [4]*ebiten.Image{
			l.ImageOrNil("image/volume1.png"),
			l.ImageOrNil("image/volume2.png"),
			l.ImageOrNil("image/volume3.png"),
			l.ImageOrNil("image/volume4.png"),
		},
		fullscreen: [3]*ebiten.Image{
			l.ImageOrNil("image/button_full.png"),
			l.ImageOrNil("image/button_full2.png"),
			l.ImageOrNil("image/button_full1.png"),
		},
		back: [3]*ebiten.Image{
			l.ImageOrNil("image/button_back.png"),
			l.ImageOrNil("image/button_back2.png"),
			l.ImageOrNil("image/button_back1.png"),
		},
		click: l.AudioOrNil(clickPath),
		face:  l.LoadFont(fontPath, 60),
		state: ui.NewOptions(ctx.Volume, ctx.Fullscreen),
	}
	o.mouseX, o.mouseY = ebiten.CursorPosition()
	return o
}

func (o *Options) Update() Transition {
	var act ui.Action
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		o.state.Up()
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		o.state.Down()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		act = o.state.Enter()
		playSound(o.click)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight),
		inpututil.IsKeyJustPressed(ebiten.KeyEqual),
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		act = o.state.Increase()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft),
		inpututil.IsKeyJustPressed(ebiten.KeyMinus),
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		act = o.state.Decrease()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		act = ui.ActionBack
	}

	x, y := ebiten.CursorPosition()
	if x != o.mouseX || y != o.mouseY {
		o.mouseX, o.mouseY = x, y
		o.state.Hover(x, y)
	}
	if act == ui.ActionNone && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		act = o.state.Click(x, y)
		if act != ui.ActionNone {
			playSound(o.click)
		}
	}

	switch act {
	case ui.ActionVolume:
		o.ctx.SetVolume(o.state.Volume)
	case ui.ActionFullscreen:
		o.ctx.SetFullscreen(o.state.Fullscreen)
	case ui.ActionBack:
		return to(ToMenu)
	}
	return none
}

func (o *Options) Draw(screen *ebiten.Image) {
	drawFull(screen, o.background, 1)
	drawImageRect(screen, o.volume[o.state.VolumeIndex], ui.VolumeRect)
	drawImageRect(screen, o.fullscreen[o.state.FullscreenState()], ui.FullscreenRect)
	drawImageRect(screen, o.back[o.state.BackState()], ui.BackRect)

	clr := colorOr(o.ctx.Theme.MenuText.Color, color.White)
	if o.state.Selected == ui.OptionVolume {
		clr = colorOr(o.ctx.Theme.Highlight.Color, color.RGBA{R: 0xff, A: 0xff})
	}
	drawText(screen, "Volume", o.face, 100, 70, clr)
}

func (o *Options) Layout() (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (o *Options) Close() {
	closeSounds(o.click)
}
