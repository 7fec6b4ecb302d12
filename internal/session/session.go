package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/othello-arena/internal/models"
	"github.com/lk16/othello-arena/internal/othello"
	"github.com/lk16/othello-arena/internal/search"
)

var ErrNotYourTurn = errors.New("not your turn")

// Session is a game between a human and the computer.
type Session struct {
	ID         string        `json:"id"`
	HumanColor othello.Cell  `json:"human_color"`
	Game       *othello.Game `json:"game"`
	CreatedAt  time.Time     `json:"created_at"`
}

// New creates a session from the starting position.
func New(humanColor othello.Cell) (*Session, error) {
	if !humanColor.IsPlayer() {
		return nil, fmt.Errorf("invalid human color: %s", humanColor)
	}

	return &Session{
		ID:         uuid.New().String(),
		HumanColor: humanColor,
		Game:       othello.NewGame(),
		CreatedAt:  time.Now(),
	}, nil
}

// ComputerColor returns the color played by the computer.
func (s *Session) ComputerColor() othello.Cell {
	return s.HumanColor.Opponent()
}

// IsComputerTurn checks if the computer should move next.
func (s *Session) IsComputerTurn() bool {
	return !s.Game.IsOver() && s.Game.Turn() == s.ComputerColor()
}

// PlayHuman plays a move for the human player.
func (s *Session) PlayHuman(move othello.Move) error {
	if s.Game.IsOver() {
		return othello.ErrGameOver
	}

	if s.Game.Turn() != s.HumanColor {
		return ErrNotYourTurn
	}

	if err := s.Game.PushMove(move); err != nil {
		return fmt.Errorf("failed to play human move: %w", err)
	}

	return nil
}

// PlayComputer lets the computer search and play a move. If the computer has no legal
// move the returned result has Found set to false and the board is unchanged.
func (s *Session) PlayComputer() (search.Result, error) {
	if s.Game.IsOver() {
		return search.Result{}, othello.ErrGameOver
	}

	computer := s.ComputerColor()

	if s.Game.Turn() != computer {
		return search.Result{}, ErrNotYourTurn
	}

	result := search.Search(s.Game.Board(), computer)
	if !result.Found {
		slog.Info("Computer has no moves, skipping turn", "session", s.ID)
		return result, nil
	}

	if err := s.Game.PushMove(result.Move); err != nil {
		return search.Result{}, fmt.Errorf("failed to play computer move: %w", err)
	}

	slog.Debug("Computer moved", "session", s.ID, "move", result.Move, "score", result.Score)
	return result, nil
}

// PlayComputerTurns lets the computer move for as long as it is its turn.
// This is more than one move when the human has to pass.
func (s *Session) PlayComputerTurns() ([]search.Result, error) {
	results := make([]search.Result, 0, 1)

	for s.IsComputerTurn() {
		result, err := s.PlayComputer()
		if err != nil {
			return nil, err
		}

		results = append(results, result)

		if !result.Found {
			break
		}
	}

	return results, nil
}

// Undo takes back the last move of the human, and any computer moves after it.
func (s *Session) Undo() {
	s.Game.PopMovesOf(s.HumanColor)
}

// State returns the state of the session as returned by the API.
func (s *Session) State() models.GameState {
	board := s.Game.Board()
	turn := s.Game.Turn()
	gameOver := board.IsGameOver()

	legalMoves := board.LegalMoves(turn)
	if gameOver {
		legalMoves = []othello.Move{}
	}

	return models.GameState{
		ID:            s.ID,
		HumanColor:    s.HumanColor,
		ComputerColor: s.ComputerColor(),
		Board:         board.String(),
		Cells:         board.Rows(),
		Turn:          turn,
		LegalMoves:    legalMoves,
		DarkDiscs:     board.CountChips(othello.DARK),
		LightDiscs:    board.CountChips(othello.LIGHT),
		GameOver:      gameOver,
		Winner:        s.Game.Winner(),
		Plies:         s.Game.Plies(),
	}
}

// Result returns the result of a finished game.
func (s *Session) Result() (models.GameResult, error) {
	if !s.Game.IsOver() {
		return models.GameResult{}, errors.New("game is not over")
	}

	board := s.Game.Board()
	plies := s.Game.Plies()

	moves := make(models.MoveList, len(plies))
	for i, ply := range plies {
		moves[i] = ply.Move
	}

	return models.GameResult{
		ID:         s.ID,
		HumanColor: s.HumanColor.String(),
		Winner:     board.Winner().String(),
		DarkDiscs:  board.CountChips(othello.DARK),
		LightDiscs: board.CountChips(othello.LIGHT),
		Moves:      moves,
		FinishedAt: time.Now(),
	}, nil
}
