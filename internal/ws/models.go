package ws

import (
	"encoding/json"

	"github.com/lk16/othello-arena/internal/models"
	"github.com/lk16/othello-arena/internal/othello"
	"github.com/lk16/othello-arena/internal/search"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type MoveRequest struct {
	Move othello.Move `json:"move"`
}

// GameResponse is sent after every event. ComputerMoves lists the moves the computer
// played in reply, in order.
type GameResponse struct {
	Game          models.GameState `json:"game"`
	ComputerMoves []search.Result  `json:"computer_moves"`
}
