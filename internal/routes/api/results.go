package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-arena/internal/repository"
)

const defaultResultLimit = 20

// ListResults returns the most recently finished games.
func ListResults(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultResultLimit)

	results, err := repository.NewResultRepository(c).List(c.Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(results)
}

// GetResultStats returns win/loss statistics over all finished games.
func GetResultStats(c *fiber.Ctx) error {
	stats, err := repository.NewResultRepository(c).Stats(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
