package connect4

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// AIDelay is how long the computer pretends to think before answering.
const AIDelay = 500 * time.Millisecond

// Game is a match between a human (Red, moving first) and the random
// computer player (Yellow).
type Game struct {
	Board  Board
	Turn   Piece
	Moves  int
	Over   bool
	Winner Piece

	rng *rand.Rand
}

// NewGame starts a match. rng drives the computer's choices.
func NewGame(rng *rand.Rand) *Game {
	return &Game{Turn: Red, rng: rng}
}

// HumanTurn reports whether the game waits for a click.
func (g *Game) HumanTurn() bool {
	return !g.Over && g.Turn == Red
}

// Play drops the current player's piece into col, then checks for a win or a
// full board and otherwise passes the turn.
func (g *Game) Play(col int) error {
	if g.Over {
		return ErrGameOver
	}
	if _, err := g.Board.Drop(col, g.Turn); err != nil {
		return err
	}
	g.Moves++

	if w := g.Board.Winner(); w != Empty {
		g.Over = true
		g.Winner = w
		return nil
	}
	if g.Moves >= Cells {
		g.Over = true
		return nil
	}
	g.Turn = g.Turn.Other()
	return nil
}

// AIMove picks a uniformly random column that is not full.
func (g *Game) AIMove() (int, error) {
	open := g.Board.OpenColumns()
	if len(open) == 0 {
		return -1, ErrColumnFull
	}
	return open[g.rng.IntN(len(open))], nil
}

// PlayAI lets the computer move when it is its turn.
func (g *Game) PlayAI() error {
	if g.Over {
		return ErrGameOver
	}
	if g.Turn != Yellow {
		return fmt.Errorf("connect4: not the computer's turn")
	}
	col, err := g.AIMove()
	if err != nil {
		return err
	}
	return g.Play(col)
}

// Status is the line shown above the board.
func (g *Game) Status() string {
	switch {
	case g.Over && g.Winner == Empty:
		return "Game Over! Draw! (Press ESC)"
	case g.Over:
		return fmt.Sprintf("Game Over! %s Wins! (Press ESC)", g.Winner)
	}
	return fmt.Sprintf("Turn: %s", g.Turn)
}
