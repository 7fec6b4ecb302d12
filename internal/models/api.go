package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/lk16/othello-arena/internal/othello"
)

// NewGameRequest represents the payload for creating a game.
type NewGameRequest struct {
	HumanColor othello.Cell `json:"human_color"`
}

// Validate validates the new game request. A missing color defaults to dark.
func (r *NewGameRequest) Validate() error {
	if r.HumanColor == othello.EMPTY {
		r.HumanColor = othello.DARK
	}

	if !r.HumanColor.IsPlayer() {
		return fmt.Errorf("invalid human color: %s", r.HumanColor)
	}

	return nil
}

// MoveRequest represents a move played by the human.
type MoveRequest struct {
	Move othello.Move `json:"move"`
}

// GameState represents the state of a game as returned by the API.
type GameState struct {
	ID            string           `json:"id"`
	HumanColor    othello.Cell     `json:"human_color"`
	ComputerColor othello.Cell     `json:"computer_color"`
	Board         string           `json:"board"`
	Cells         [][]othello.Cell `json:"cells"`
	Turn          othello.Cell     `json:"turn"`
	LegalMoves    []othello.Move   `json:"legal_moves"`
	DarkDiscs     int              `json:"dark_discs"`
	LightDiscs    int              `json:"light_discs"`
	GameOver      bool             `json:"game_over"`
	Winner        othello.Cell     `json:"winner"`
	Plies         []othello.Ply    `json:"plies"`
}

// LegalMovesResponse represents the legal moves of a player.
type LegalMovesResponse struct {
	Player othello.Cell   `json:"player"`
	Moves  []othello.Move `json:"moves"`
}

// ComputerMoveResponse represents the move chosen by the computer.
type ComputerMoveResponse struct {
	Move   othello.Move `json:"move"`
	Passed bool         `json:"passed"`
	Score  int          `json:"score"`
	Nodes  int          `json:"nodes"`
	Game   GameState    `json:"game"`
}

// GameResult represents a finished game.
type GameResult struct {
	ID         string    `json:"id"          db:"id"`
	HumanColor string    `json:"human_color" db:"human_color"`
	Winner     string    `json:"winner"      db:"winner"`
	DarkDiscs  int       `json:"dark_discs"  db:"dark_discs"`
	LightDiscs int       `json:"light_discs" db:"light_discs"`
	Moves      MoveList  `json:"moves"       db:"moves"`
	FinishedAt time.Time `json:"finished_at" db:"finished_at"`
}

// ResultStats represents aggregated statistics over finished games.
type ResultStats struct {
	Games        int `json:"games"         db:"games"`
	HumanWins    int `json:"human_wins"    db:"human_wins"`
	ComputerWins int `json:"computer_wins" db:"computer_wins"`
	Draws        int `json:"draws"         db:"draws"`
}

// MoveList is a slice of moves that is stored as a postgres text array in field notation.
type MoveList []othello.Move

// Value implements the driver.Valuer interface for MoveList.
func (m MoveList) Value() (driver.Value, error) {
	fields := make(pq.StringArray, len(m))
	for i, move := range m {
		fields[i] = move.String()
	}
	return fields.Value()
}

// Scan implements the sql.Scanner interface for MoveList.
func (m *MoveList) Scan(value interface{}) error {
	if value == nil {
		return errors.New("cannot scan nil into MoveList")
	}

	var fields pq.StringArray
	if err := fields.Scan(value); err != nil {
		return fmt.Errorf("cannot scan %T into MoveList: %w", value, err)
	}

	moves := make([]othello.Move, len(fields))
	for i, field := range fields {
		move, err := othello.NewMoveFromField(field)
		if err != nil {
			return fmt.Errorf("cannot convert %s to move: %w", field, err)
		}
		moves[i] = move
	}
	*m = moves

	return nil
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
