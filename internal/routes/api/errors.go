package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-arena/internal/othello"
	"github.com/lk16/othello-arena/internal/repository"
	"github.com/lk16/othello-arena/internal/session"
)

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, othello.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, othello.ErrGameOver), errors.Is(err, session.ErrNotYourTurn):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
