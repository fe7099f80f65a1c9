package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/kiccas/common"
	"github.com/milk9111/kiccas/ui"
)

const tickDuration = time.Second / common.TPS

// Intro fades the studio logo, then the emblem, and hands over to the menu.
type Intro struct {
	logo   *ebiten.Image
	emblem *ebiten.Image
	seq    *ui.Intro
}

// NewIntro loads the intro images. When either is missing the intro is
// skipped.
func NewIntro(ctx *Context) *Intro {
	in := &Intro{
		logo:   ctx.Loader.ImageOrNil("image/logo.png"),
		emblem: ctx.Loader.ImageOrNil("image/embleme.png"),
		seq:    ui.NewIntro(),
	}
	if in.logo == nil || in.emblem == nil {
		ctx.Logger.Warn("intro images missing, skipping intro")
		in.seq.Skip()
	}
	return in
}

func (in *Intro) Update() Transition {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.seq.Skip()
	}
	in.seq.Update(tickDuration)
	if in.seq.Done() {
		return to(ToMenu)
	}
	return none
}

func (in *Intro) Draw(screen *ebiten.Image) {
	img := in.logo
	if in.seq.ShowingEmblem() {
		img = in.emblem
	}
	drawFull(screen, img, in.seq.Alpha01())
}

func (in *Intro) Layout() (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (in *Intro) Close() {
	in.logo = nil
	in.emblem = nil
}
