package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/kiccas/common"
	"github.com/milk9111/kiccas/ui"
)

var menuButtonImages = [][2]string{
	{"image/button_start.png", "image/button_start2.png"},
	{"image/button_settings.png", "image/button_settings2.png"},
	{"image/button_credits.png", "image/button_credits2.png"},
	{"image/button_quit.png", "image/button_quit2.png"},
}

// Menu is the main menu. Its choices are delayed by ui.ConfirmTicks so the
// click sound is heard before the next scene loads.
type Menu struct {
	ctx *Context

	background *ebiten.Image
	buttons    [][2]*ebiten.Image
	cursor     *ebiten.Image
	click      *audio.Player
	hover      *audio.Player

	state          *ui.Menu
	mouseX, mouseY int
}

func NewMenu(ctx *Context) *Menu {
	m := &Menu{
		ctx:        ctx,
		background: ctx.Loader.ImageOrNil("image/menuback.png"),
		cursor:     ctx.Loader.ImageOrNil("image/galaxy.png"),
		click:      ctx.Loader.AudioOrNil(clickPath),
		hover:      ctx.Loader.AudioOrNil(hoverPath),
		state:      ui.NewMenu(),
	}
	for _, paths := range menuButtonImages {
		m.buttons = append(m.buttons, [2]*ebiten.Image{
			ctx.Loader.ImageOrNil(paths[0]),
			ctx.Loader.ImageOrNil(paths[1]),
		})
	}
	m.mouseX, m.mouseY = ebiten.CursorPosition()
	ctx.PlayMenuMusic()
	return m
}

func (m *Menu) Update() Transition {
	if !m.state.Pending() {
		m.handleInput()
	}

	switch m.state.Update(m.mouseX, m.mouseY) {
	case ui.ChoiceStart:
		return Transition{Kind: ToLevel, Level: 1}
	case ui.ChoiceSettings:
		return to(ToOptions)
	case ui.ChoiceCredits:
		return to(ToCredits)
	case ui.ChoiceQuit:
		return to(ToQuit)
	case ui.ChoiceConnect4:
		return to(ToConnect4)
	}
	return none
}

func (m *Menu) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		m.play(m.state.Up())
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		m.play(m.state.Down())
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		m.play(m.state.Enter())
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		m.state.Choose(ui.ChoiceQuit)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		m.state.Choose(ui.ChoiceConnect4)
	}

	x, y := ebiten.CursorPosition()
	if x != m.mouseX || y != m.mouseY {
		m.mouseX, m.mouseY = x, y
		m.play(m.state.Hover(x, y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.play(m.state.Click())
	}
}

func (m *Menu) play(s ui.Sound) {
	switch s {
	case ui.SoundClick:
		playSound(m.click)
	case ui.SoundHover:
		playSound(m.hover)
	}
}

func (m *Menu) Draw(screen *ebiten.Image) {
	drawFull(screen, m.background, 1)

	for i, r := range m.state.Buttons {
		state := 0
		if m.state.Selected == i+1 {
			state = 1
		}
		if i < len(m.buttons) {
			drawImageRect(screen, m.buttons[i][state], r)
		}
	}

	c := m.state.Cursor
	if c.Show && m.cursor != nil {
		frame := subImage(m.cursor, common.Rect{X: c.FrameX(), W: ui.CursorW, H: ui.CursorH})
		drawImageRect(screen, frame, common.Rect{X: c.X, Y: c.Y, W: ui.CursorW, H: ui.CursorH})
	}
}

func (m *Menu) Layout() (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (m *Menu) Close() {
	closeSounds(m.click, m.hover)
}
