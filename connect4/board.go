// Package connect4 implements the four-in-a-row mini-game rules and its
// random opponent.
package connect4

import (
	"errors"
	"fmt"
)

const (
	Columns = 7
	Rows    = 6
	Cells   = Columns * Rows
)

var (
	ErrInvalidColumn = errors.New("connect4: invalid column")
	ErrColumnFull    = errors.New("connect4: column full")
	ErrGameOver      = errors.New("connect4: game over")
)

type Piece uint8

const (
	Empty Piece = iota
	Red
	Yellow
)

func (p Piece) String() string {
	switch p {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	}
	return "Empty"
}

// Other returns the opposing color.
func (p Piece) Other() Piece {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

// Board is indexed [column][row]; row 0 is the top.
type Board [Columns][Rows]Piece

// ValidRow returns the lowest empty row of col, or -1 when the column is full
// or out of range.
func (b *Board) ValidRow(col int) int {
	if col < 0 || col >= Columns {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if b[col][row] == Empty {
			return row
		}
	}
	return -1
}

// Drop places p in col and returns the row it landed on.
func (b *Board) Drop(col int, p Piece) (int, error) {
	if col < 0 || col >= Columns {
		return -1, fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	row := b.ValidRow(col)
	if row < 0 {
		return -1, fmt.Errorf("%w: %d", ErrColumnFull, col)
	}
	b[col][row] = p
	return row, nil
}

// OpenColumns lists the columns that still accept a piece.
func (b *Board) OpenColumns() []int {
	cols := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.ValidRow(col) >= 0 {
			cols = append(cols, col)
		}
	}
	return cols
}

// Winner returns the color holding four in a row horizontally, vertically or
// diagonally, or Empty.
func (b *Board) Winner() Piece {
	dirs := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows; row++ {
			p := b[col][row]
			if p == Empty {
				continue
			}
			for _, d := range dirs {
				if b.line(col, row, d[0], d[1], p) {
					return p
				}
			}
		}
	}
	return Empty
}

func (b *Board) line(col, row, dc, dr int, p Piece) bool {
	for i := 1; i < 4; i++ {
		c, r := col+dc*i, row+dr*i
		if c < 0 || c >= Columns || r < 0 || r >= Rows || b[c][r] != p {
			return false
		}
	}
	return true
}
