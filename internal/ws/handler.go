package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/othello-arena/internal/models"
	"github.com/lk16/othello-arena/internal/repository"
	"github.com/lk16/othello-arena/internal/services"
	"github.com/lk16/othello-arena/internal/session"
)

const (
	archiveTimeout = 2 * time.Second
)

var ErrNoGame = errors.New("no game started on this connection")

// Conn is the part of a websocket connection used by Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

// Handler plays games against the computer over a websocket connection.
// Each connection has at most one game at a time, kept in memory.
type Handler struct {
	services *services.Services
	ws       Conn
	session  *session.Session
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	var (
		data *GameResponse
		err  error
	)

	switch req.Event {
	case "new_game":
		data, err = h.handleNewGame(req)
	case "move":
		data, err = h.handleMove(req)
	case "undo":
		data, err = h.handleUndo()
	case "state":
		data, err = h.handleState()
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}

	if err != nil {
		return nil, err
	}

	return &Outgoing{ID: req.ID, Data: data}, nil
}

// Handle handles the websocket connection. Invalid requests are answered with an error
// message, the connection is only closed when reading or writing fails.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		outgoing, err := h.handleMessage(req)
		if err != nil {
			slog.Debug("ws request failed", "event", req.Event, "error", err)
			outgoing = &Outgoing{ID: req.ID, Error: err.Error()}
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleNewGame(req *Incoming) (*GameResponse, error) {
	var reqData models.NewGameRequest
	if len(req.Data) != 0 {
		if err := json.Unmarshal(req.Data, &reqData); err != nil {
			return nil, fmt.Errorf("ws new game unmarshal error: %w", err)
		}
	}

	if err := reqData.Validate(); err != nil {
		return nil, err
	}

	s, err := session.New(reqData.HumanColor)
	if err != nil {
		return nil, err
	}

	h.session = s

	return h.replyWithComputer()
}

func (h *Handler) handleMove(req *Incoming) (*GameResponse, error) {
	if h.session == nil {
		return nil, ErrNoGame
	}

	var reqData MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move unmarshal error: %w", err)
	}

	if err := h.session.PlayHuman(reqData.Move); err != nil {
		return nil, err
	}

	return h.replyWithComputer()
}

func (h *Handler) handleUndo() (*GameResponse, error) {
	if h.session == nil {
		return nil, ErrNoGame
	}

	h.session.Undo()

	return h.replyWithComputer()
}

func (h *Handler) handleState() (*GameResponse, error) {
	if h.session == nil {
		return nil, ErrNoGame
	}

	return &GameResponse{
		Game:          h.session.State(),
		ComputerMoves: nil,
	}, nil
}

// replyWithComputer lets the computer move while it is its turn and archives finished games.
func (h *Handler) replyWithComputer() (*GameResponse, error) {
	results, err := h.session.PlayComputerTurns()
	if err != nil {
		return nil, err
	}

	if h.session.Game.IsOver() {
		h.archive()
	}

	return &GameResponse{
		Game:          h.session.State(),
		ComputerMoves: results,
	}, nil
}

// archive stores the result of the finished game. Failures are logged, the game
// itself can still be shown to the player.
func (h *Handler) archive() {
	if h.services == nil {
		return
	}

	result, err := h.session.Result()
	if err != nil {
		slog.Error("failed to build game result", "session", h.session.ID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	repo := repository.NewResultRepositoryFromServices(h.services)
	if err = repo.Save(ctx, result); err != nil {
		slog.Error("failed to archive game", "session", h.session.ID, "error", err)
	}
}
