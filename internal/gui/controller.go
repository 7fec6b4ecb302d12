package gui

import (
	"log"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lk16/othello-arena/internal/config"
	"github.com/lk16/othello-arena/internal/othello"
	"github.com/lk16/othello-arena/internal/search"
	"github.com/lk16/othello-arena/internal/session"
)

type Controller struct {
	// session contains the game and the color of the human
	session *session.Session

	// start is the board new games start from
	start othello.Board

	// pending is the move the computer will play once due passes
	pending *search.Result

	// due is the time at which the pending computer move is played
	due time.Time

	// showLegalMoves indicates if we show legal moves of the human
	showLegalMoves bool
}

func NewWindow(start othello.Board, humanColor othello.Cell) (*Controller, error) {
	c := &Controller{
		start:          start,
		showLegalMoves: true,
	}

	if err := c.newGame(humanColor); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Controller) newGame(humanColor othello.Cell) error {
	s, err := session.New(humanColor)
	if err != nil {
		return err
	}

	s.Game = othello.NewGameWithStart(c.start, othello.DARK)

	c.session = s
	c.pending = nil
	return nil
}

func (c *Controller) Run() {
	rl.SetTraceLogLevel(rl.LogError)

	rl.InitWindow(BoardWidthPx, BoardHeightPx, "Othello")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	windowDrawer := newWindowDrawer(c)

	for !rl.WindowShouldClose() {
		c.handleEvents()
		c.update(time.Now())
		windowDrawer.draw()
	}
}

func (c *Controller) handleEvents() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		mousePos := rl.GetMousePosition()

		col := int(mousePos.X) / SquareSize
		row := int(mousePos.Y) / SquareSize

		move := othello.Move{Row: row, Col: col}
		if move.InBounds() {
			c.OnMove(move)
		}
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		c.OnUndo()
	}

	for {
		key := rl.GetKeyPressed()
		if key == rl.KeyNull {
			break
		}

		c.OnKeyPress(key)
	}
}

// update plays the computer move when it is due, or schedules it when it is the computer's turn.
func (c *Controller) update(now time.Time) {
	if c.pending != nil {
		if now.Before(c.due) {
			return
		}

		c.pending = nil

		if _, err := c.session.PlayComputer(); err != nil {
			slog.Error("Computer move failed", "error", err)
		}
		return
	}

	if !c.session.IsComputerTurn() {
		return
	}

	result := search.Search(c.session.Game.Board(), c.session.ComputerColor())
	c.pending = &result
	c.due = now.Add(config.ComputerMoveDelay)
}

func (c *Controller) GetBoard() othello.Board {
	return c.session.Game.Board()
}

func (c *Controller) OnMove(move othello.Move) {
	// Clicks are ignored while the computer is thinking.
	if c.pending != nil {
		return
	}

	if err := c.session.PlayHuman(move); err != nil {
		slog.Debug("Ignoring move", "move", move, "error", err)
	}
}

func (c *Controller) OnUndo() {
	c.pending = nil
	c.session.Undo()
}

func (c *Controller) OnKeyPress(key int32) {
	// Print current board.
	if key == rl.KeyD {
		log.Printf("current board = %s", c.GetBoard().String())
		c.GetBoard().Print(c.session.Game.Turn())
	}

	// Restart game
	if key == rl.KeyN {
		if err := c.newGame(c.session.HumanColor); err != nil {
			slog.Error("Failed to start new game", "error", err)
		}
	}

	// Restart game with colors swapped
	if key == rl.KeyS {
		if err := c.newGame(c.session.ComputerColor()); err != nil {
			slog.Error("Failed to start new game", "error", err)
		}
	}

	// Toggle showing legal moves
	if key == rl.KeySpace {
		c.showLegalMoves = !c.showLegalMoves
	}
}

func (c *Controller) GetDrawArgs() *DrawArgs {
	highlight := othello.PassMove
	if c.pending != nil && c.pending.Found {
		highlight = c.pending.Move
	}

	return &DrawArgs{
		Board:          c.GetBoard(),
		Turn:           c.session.Game.Turn(),
		HumanColor:     c.session.HumanColor,
		ShowLegalMoves: c.showLegalMoves,
		Highlight:      highlight,
		GameOver:       c.session.Game.IsOver(),
	}
}
