package scene

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/kiccas/common"
	"github.com/milk9111/kiccas/connect4"
	"golang.org/x/image/colornames"
)

const aiDelayTicks = int(connect4.AIDelay / tickDuration)

// Connect4 is the four-in-a-row mini-game against the random computer player.
type Connect4 struct {
	ctx  *Context
	game *connect4.Game
	face text.Face

	// thinking counts down while the computer pretends to think.
	thinking int
}

func NewConnect4(ctx *Context) *Connect4 {
	return &Connect4{
		ctx:  ctx,
		game: connect4.NewGame(ctx.Rand),
		face: ctx.Loader.LoadFont(fontPath, 32),
	}
}

func (c *Connect4) Update() Transition {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return to(ToMenu)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if c.game.Over {
			return to(ToMenu)
		}
		if c.game.HumanTurn() {
			x, _ := ebiten.CursorPosition()
			c.play(connect4.ColumnAt(x))
		}
	}

	if !c.game.Over && !c.game.HumanTurn() {
		if c.thinking > 0 {
			c.thinking--
			return none
		}
		if err := c.game.PlayAI(); err != nil {
			c.ctx.Logger.Error("connect4 computer move", "err", err)
		}
	}
	return none
}

func (c *Connect4) play(col int) {
	err := c.game.Play(col)
	switch {
	case err == nil:
		c.thinking = aiDelayTicks
	case errors.Is(err, connect4.ErrInvalidColumn), errors.Is(err, connect4.ErrColumnFull):
		// Clicks beside the board or on a full column are ignored.
	default:
		c.ctx.Logger.Error("connect4 move", "column", col, "err", err)
	}
}

func (c *Connect4) Draw(screen *ebiten.Image) {
	theme := c.ctx.Theme
	screen.Fill(colorOr(theme.Background.Color, color.RGBA{B: 50, A: 0xff}))

	board := colorOr(theme.Board.Color, color.RGBA{B: 150, A: 0xff})
	for col := 0; col < connect4.Columns; col++ {
		for row := 0; row < connect4.Rows; row++ {
			fillRect(screen, connect4.CellRect(col, row), board)
			fillRect(screen, connect4.PieceRect(col, row), c.pieceColor(c.game.Board[col][row]))
		}
	}

	drawText(screen, c.game.Status(), c.face, connect4.OffsetX, 20, colorOr(theme.MenuText.Color, color.White))
}

func (c *Connect4) pieceColor(p connect4.Piece) color.Color {
	theme := c.ctx.Theme
	switch p {
	case connect4.Red:
		return colorOr(theme.RedPiece.Color, colornames.Red)
	case connect4.Yellow:
		return colorOr(theme.YellowPiece.Color, colornames.Yellow)
	}
	return colorOr(theme.EmptySlot.Color, colornames.White)
}

func fillRect(dst *ebiten.Image, r common.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func (c *Connect4) Layout() (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (c *Connect4) Close() {}
