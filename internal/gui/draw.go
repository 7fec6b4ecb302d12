package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lk16/othello-arena/internal/othello"
)

const (
	BoardWidthPx  = 600
	BoardHeightPx = 600

	SquareSize          = BoardWidthPx / othello.Size
	DiscRadius          = SquareSize/2 - 5
	MoveIndicatorRadius = SquareSize / 8
)

type windowDrawer struct {
	controller *Controller
}

func newWindowDrawer(controller *Controller) *windowDrawer {
	return &windowDrawer{controller: controller}
}

func (w *windowDrawer) playerToColor(player othello.Cell) rl.Color {
	switch player {
	case othello.LIGHT:
		return rl.White
	case othello.DARK:
		return rl.Black
	default:
		panic("invalid player")
	}
}

func (w *windowDrawer) draw() {
	args := w.controller.GetDrawArgs()
	board := args.Board

	rl.BeginDrawing()

	backgroundColor := rl.NewColor(0, 128, 0, 255)
	rl.ClearBackground(backgroundColor)

	for row := range othello.Size {
		for col := range othello.Size {
			move := othello.Move{Row: row, Col: col}

			switch cell := board.Get(row, col); cell {
			case othello.DARK, othello.LIGHT:
				w.drawDisc(move, w.playerToColor(cell))
			case othello.EMPTY:
				w.drawEmptySquare(move, args)
			}
		}
	}

	if args.GameOver {
		w.drawGameOver(args)
	}

	rl.EndDrawing()
}

func (w *windowDrawer) drawEmptySquare(move othello.Move, args *DrawArgs) {
	if move == args.Highlight {
		w.drawHighlight(move, w.playerToColor(args.Turn))
		return
	}

	if !args.ShowLegalMoves || args.Turn != args.HumanColor {
		return
	}

	if !args.Board.IsLegalMove(move.Row, move.Col, args.Turn) {
		return
	}

	w.drawMoveIndicator(move, w.playerToColor(args.Turn))
}

func (w *windowDrawer) getSquareCenter(move othello.Move) (int32, int32) {
	x := move.Col*SquareSize + SquareSize/2
	y := move.Row*SquareSize + SquareSize/2

	return int32(x), int32(y) //nolint:gosec
}

func (w *windowDrawer) drawDisc(move othello.Move, color rl.Color) {
	centerX, centerY := w.getSquareCenter(move)
	rl.DrawCircle(centerX, centerY, DiscRadius, color)
}

func (w *windowDrawer) drawMoveIndicator(move othello.Move, color rl.Color) {
	centerX, centerY := w.getSquareCenter(move)
	rl.DrawCircle(centerX, centerY, MoveIndicatorRadius, color)
}

func (w *windowDrawer) drawHighlight(move othello.Move, color rl.Color) {
	centerX, centerY := w.getSquareCenter(move)
	center := rl.Vector2{X: float32(centerX), Y: float32(centerY)}
	rl.DrawRing(center, DiscRadius-3, DiscRadius, 0, 360, 40, color)
}

func (w *windowDrawer) drawGameOver(args *DrawArgs) {
	dark := args.Board.CountChips(othello.DARK)
	light := args.Board.CountChips(othello.LIGHT)

	var text string
	switch args.Board.Winner() {
	case args.HumanColor:
		text = fmt.Sprintf("You win %d-%d", max(dark, light), min(dark, light))
	case othello.EMPTY:
		text = fmt.Sprintf("Draw %d-%d", dark, light)
	default:
		text = fmt.Sprintf("You lose %d-%d", min(dark, light), max(dark, light))
	}

	fontSize := int32(40)
	textWidth := rl.MeasureText(text, fontSize)
	textX := (BoardWidthPx - textWidth) / 2
	textY := (BoardHeightPx - fontSize) / 2

	rl.DrawRectangle(textX-10, textY-10, textWidth+20, fontSize+20, rl.NewColor(0, 0, 0, 192))
	rl.DrawText(text, textX, textY, fontSize, rl.White)
}
