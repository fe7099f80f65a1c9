package connect4

import "github.com/milk9111/kiccas/common"

// Board layout in screen pixels.
const (
	CellSize = 80
	Margin   = 10
	OffsetX  = 300
	OffsetY  = 100
	pitch    = CellSize + Margin
)

// ColumnAt maps a screen x coordinate to a column, or -1 outside the board.
func ColumnAt(x int) int {
	if x < OffsetX || x > OffsetX+Columns*pitch {
		return -1
	}
	col := (x - OffsetX) / pitch
	if col >= Columns {
		return -1
	}
	return col
}

// CellRect is the slot drawn for (col, row).
func CellRect(col, row int) common.Rect {
	return common.Rect{X: OffsetX + col*pitch, Y: OffsetY + row*pitch, W: CellSize, H: CellSize}
}

// PieceRect is the piece or hole drawn inside a slot.
func PieceRect(col, row int) common.Rect {
	r := CellRect(col, row)
	return common.Rect{X: r.X + 5, Y: r.Y + 5, W: CellSize - 10, H: CellSize - 10}
}
