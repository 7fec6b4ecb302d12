package othello

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// Ply is a single move played by one player.
type Ply struct {
	Move   Move `json:"move"`
	Player Cell `json:"player"`
}

// Game represents an Othello game, either complete or in progress.
type Game struct {
	// start is the board before any move is played. This allows for custom start positions for debugging.
	start Board

	// first is the player to move on the start board.
	first Cell

	// plies is the list of moves in the game. Passes are implicit.
	plies []Ply
}

// NewGameWithStart creates a new empty game with a custom start board.
func NewGameWithStart(start Board, first Cell) *Game {
	return &Game{
		start: start,
		first: first,
		plies: make([]Ply, 0),
	}
}

// NewGame creates a new game from the starting position. Dark moves first.
func NewGame() *Game {
	return NewGameWithStart(NewBoardStart(), DARK)
}

// nextTurn returns who moves after player moved on board.
// The opponent moves, unless the opponent has to pass and player can move again.
func nextTurn(board Board, player Cell) Cell {
	opponent := player.Opponent()
	if !board.HasMoves(opponent) && board.HasMoves(player) {
		return player
	}
	return opponent
}

// replay returns the board and turn after the first count plies.
func (g *Game) replay(count int) (Board, Cell) {
	board := g.start
	turn := g.first

	// The start board may require a pass before anything is played.
	if !board.HasMoves(turn) && board.HasMoves(turn.Opponent()) {
		turn = turn.Opponent()
	}

	for _, ply := range g.plies[:count] {
		board.ApplyMove(ply.Move, ply.Player)
		turn = nextTurn(board, ply.Player)
	}

	return board, turn
}

// Board returns the current board.
func (g *Game) Board() Board {
	board, _ := g.replay(len(g.plies))
	return board
}

// Turn returns the player to move.
func (g *Game) Turn() Cell {
	_, turn := g.replay(len(g.plies))
	return turn
}

// Start returns the start board.
func (g *Game) Start() Board {
	return g.start
}

// Plies returns a copy of the moves played so far.
func (g *Game) Plies() []Ply {
	plies := make([]Ply, len(g.plies))
	copy(plies, g.plies)
	return plies
}

// IsOver checks if the game has ended.
func (g *Game) IsOver() bool {
	board := g.Board()
	return board.IsGameOver()
}

// Winner returns the winning color, or EMPTY on a draw or when the game is not over.
func (g *Game) Winner() Cell {
	board := g.Board()
	if !board.IsGameOver() {
		return EMPTY
	}
	return board.Winner()
}

// PushMove plays move for the player to move.
func (g *Game) PushMove(move Move) error {
	board, turn := g.replay(len(g.plies))

	if board.IsGameOver() {
		return ErrGameOver
	}

	if !board.IsLegalMove(move.Row, move.Col, turn) {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, move, turn)
	}

	g.plies = append(g.plies, Ply{Move: move, Player: turn})
	return nil
}

// PopMove undoes the last move. It does nothing if no moves were played.
func (g *Game) PopMove() {
	if len(g.plies) == 0 {
		return
	}

	g.plies = g.plies[:len(g.plies)-1]
}

// PopMovesOf undoes moves until the last move of player is undone.
// It is used to take back a move against the computer in one step.
func (g *Game) PopMovesOf(player Cell) {
	for len(g.plies) > 0 {
		last := g.plies[len(g.plies)-1]
		g.PopMove()

		if last.Player == player {
			return
		}
	}
}

type gameJSON struct {
	Start string `json:"start"`
	First Cell   `json:"first"`
	Plies []Ply  `json:"plies"`
}

// MarshalJSON implements json.Marshaler.
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(gameJSON{
		Start: g.start.String(),
		First: g.first,
		Plies: g.plies,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The plies are replayed and validated.
func (g *Game) UnmarshalJSON(data []byte) error {
	var raw gameJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	start, err := NewBoardFromString(raw.Start)
	if err != nil {
		return fmt.Errorf("invalid start board: %w", err)
	}

	if !raw.First.IsPlayer() {
		return fmt.Errorf("invalid first player: %s", raw.First)
	}

	game := NewGameWithStart(start, raw.First)
	for _, ply := range raw.Plies {
		if turn := game.Turn(); turn != ply.Player {
			return fmt.Errorf("ply %s played by %s, expected %s", ply.Move, ply.Player, turn)
		}

		if err = game.PushMove(ply.Move); err != nil {
			return fmt.Errorf("failed to replay move: %w", err)
		}
	}

	*g = *game
	return nil
}
