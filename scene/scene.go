// Package scene holds the ebiten screens of the game. Each scene owns the
// resources it loads and reports, once per tick, where the game should go
// next.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Kind names the destination of a Transition.
type Kind int

const (
	Stay Kind = iota
	ToMenu
	ToOptions
	ToCredits
	ToLevel
	ToConnect4
	ToQuit
)

func (k Kind) String() string {
	switch k {
	case Stay:
		return "stay"
	case ToMenu:
		return "menu"
	case ToOptions:
		return "options"
	case ToCredits:
		return "credits"
	case ToLevel:
		return "level"
	case ToConnect4:
		return "connect4"
	case ToQuit:
		return "quit"
	}
	return "unknown"
}

// Transition is the result of one scene tick.
type Transition struct {
	Kind  Kind
	Level int
}

var none = Transition{Kind: Stay}

func to(k Kind) Transition { return Transition{Kind: k} }

// Scene is one screen of the game.
type Scene interface {
	Update() Transition
	Draw(screen *ebiten.Image)
	// Layout returns the logical screen size the scene draws at.
	Layout() (int, int)
	// Close releases the scene's sounds and images.
	Close()
}
