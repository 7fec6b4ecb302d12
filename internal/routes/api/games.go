package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-arena/internal/models"
	"github.com/lk16/othello-arena/internal/othello"
	"github.com/lk16/othello-arena/internal/repository"
	"github.com/lk16/othello-arena/internal/session"
)

// CreateGame starts a new game against the computer.
func CreateGame(c *fiber.Ctx) error {
	var req models.NewGameRequest

	if len(c.Body()) != 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	s, err := session.New(req.HumanColor)
	if err != nil {
		return errorResponse(c, err)
	}

	if err = repository.NewSessionRepository(c).Save(c.Context(), s); err != nil {
		return errorResponse(c, err)
	}

	slog.Info("Game created", "session", s.ID, "human_color", s.HumanColor)

	return c.Status(fiber.StatusCreated).JSON(s.State())
}

// GetGame returns the state of a game.
func GetGame(c *fiber.Ctx) error {
	s, err := repository.NewSessionRepository(c).Load(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(s.State())
}

// GetLegalMoves returns the legal moves of a player, by default the player to move.
func GetLegalMoves(c *fiber.Ctx) error {
	s, err := repository.NewSessionRepository(c).Load(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	player := s.Game.Turn()
	if query := c.Query("player"); query != "" {
		player, err = othello.ParseCell(query)
		if err != nil || !player.IsPlayer() {
			return badRequest(c, fmt.Sprintf("invalid player: %s", query))
		}
	}

	board := s.Game.Board()

	return c.Status(fiber.StatusOK).JSON(models.LegalMovesResponse{
		Player: player,
		Moves:  board.LegalMoves(player),
	})
}

// PlayMove plays a move for the human player.
func PlayMove(c *fiber.Ctx) error {
	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	s, err := repository.NewSessionRepository(c).Load(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	if err = s.PlayHuman(req.Move); err != nil {
		return errorResponse(c, err)
	}

	if err = persist(c, s); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(s.State())
}

// PlayComputerMove lets the computer pick and play a move.
func PlayComputerMove(c *fiber.Ctx) error {
	s, err := repository.NewSessionRepository(c).Load(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	result, err := s.PlayComputer()
	if err != nil {
		return errorResponse(c, err)
	}

	if err = persist(c, s); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.ComputerMoveResponse{
		Move:   result.Move,
		Passed: !result.Found,
		Score:  result.Score,
		Nodes:  result.Nodes,
		Game:   s.State(),
	})
}

// UndoMove takes back the last move of the human and the computer replies after it.
func UndoMove(c *fiber.Ctx) error {
	s, err := repository.NewSessionRepository(c).Load(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	if s.Game.IsOver() {
		return errorResponse(c, othello.ErrGameOver)
	}

	s.Undo()

	if err = persist(c, s); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(s.State())
}

// DeleteGame abandons a game. Abandoned games are not archived.
func DeleteGame(c *fiber.Ctx) error {
	if err := repository.NewSessionRepository(c).Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// persist saves the session, and archives it when the game is over.
func persist(c *fiber.Ctx, s *session.Session) error {
	return persistSession(c.Context(), repository.NewSessionRepository(c), repository.NewResultRepository(c), s)
}

func persistSession(
	ctx context.Context,
	sessions *repository.SessionRepository,
	results *repository.ResultRepository,
	s *session.Session,
) error {
	if err := sessions.Save(ctx, s); err != nil {
		return err
	}

	if !s.Game.IsOver() {
		return nil
	}

	result, err := s.Result()
	if err != nil {
		return err
	}

	if err = results.Save(ctx, result); err != nil {
		return err
	}

	slog.Info("Game finished", "session", s.ID, "winner", result.Winner, "dark", result.DarkDiscs, "light", result.LightDiscs)
	return nil
}
