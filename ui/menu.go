package ui

import "github.com/milk9111/kiccas/common"

// Choice is what the main menu asks the game to do next.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceStart
	ChoiceSettings
	ChoiceCredits
	ChoiceQuit
	ChoiceConnect4
)

func (c Choice) String() string {
	switch c {
	case ChoiceStart:
		return "start"
	case ChoiceSettings:
		return "settings"
	case ChoiceCredits:
		return "credits"
	case ChoiceQuit:
		return "quit"
	case ChoiceConnect4:
		return "connect4"
	}
	return "none"
}

// MenuButtons are the start, settings, credits and quit buttons in screen
// order.
var MenuButtons = []common.Rect{
	{X: 150, Y: 100, W: 333, H: 119},
	{X: 150, Y: 250, W: 333, H: 119},
	{X: 150, Y: 400, W: 333, H: 119},
	{X: 150, Y: 550, W: 333, H: 119},
}

// ConfirmTicks is the pause between activating a button and leaving the menu.
const ConfirmTicks = 12

// Menu tracks the highlighted button. Selected is 0 when nothing is
// highlighted, otherwise the 1-based index into Buttons.
type Menu struct {
	Buttons  []common.Rect
	Selected int
	Cursor   Cursor

	pending Choice
	confirm int
}

func NewMenu() *Menu {
	return &Menu{
		Buttons: MenuButtons,
		Cursor:  NewCursor(700, 500),
	}
}

func (m *Menu) Up() Sound {
	m.Cursor.Show = false
	m.Selected = Cycle(m.Selected, -1, len(m.Buttons))
	return SoundClick
}

func (m *Menu) Down() Sound {
	m.Cursor.Show = false
	m.Selected = Cycle(m.Selected, 1, len(m.Buttons))
	return SoundClick
}

// Enter activates the highlighted button. The click sounds even when nothing
// is highlighted.
func (m *Menu) Enter() Sound {
	m.Cursor.Show = false
	m.activate()
	return SoundClick
}

// Hover highlights the button under the mouse and clears the highlight
// elsewhere. Moving onto a different button asks for the hover sound.
func (m *Menu) Hover(x, y int) Sound {
	m.Cursor.Show = true
	prev := m.Selected
	m.Selected = HitTest(m.Buttons, x, y)
	if m.Selected != 0 && m.Selected != prev {
		return SoundHover
	}
	return SoundNone
}

// Click activates the highlighted button, if any.
func (m *Menu) Click() Sound {
	if m.Selected == 0 {
		return SoundNone
	}
	m.activate()
	return SoundClick
}

// Pending reports whether a choice is waiting out its confirm delay.
func (m *Menu) Pending() bool {
	return m.pending != ChoiceNone
}

// Choose schedules c directly, bypassing the buttons.
func (m *Menu) Choose(c Choice) {
	m.pending = c
	m.confirm = ConfirmTicks
}

// Update advances the cursor toward the mouse and returns the activated
// choice once its confirm delay has passed.
func (m *Menu) Update(mouseX, mouseY int) Choice {
	m.Cursor.Follow(mouseX, mouseY)
	if m.pending == ChoiceNone {
		return ChoiceNone
	}
	if m.confirm > 0 {
		m.confirm--
		return ChoiceNone
	}
	c := m.pending
	m.pending = ChoiceNone
	return c
}

func (m *Menu) activate() {
	if m.Selected < 1 || m.Selected > len(m.Buttons) {
		return
	}
	m.Choose(Choice(m.Selected))
}
