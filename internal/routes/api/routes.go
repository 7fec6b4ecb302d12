package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-arena/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api")

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Get("/games/:id/legal-moves", GetLegalMoves)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Post("/games/:id/computer-move", PlayComputerMove)
	apiGroup.Post("/games/:id/undo", UndoMove)
	apiGroup.Delete("/games/:id", DeleteGame)

	// Result routes
	resultsGroup := apiGroup.Group("/results", middleware.AuthOrToken())
	resultsGroup.Get("/", ListResults)
	resultsGroup.Get("/stats", GetResultStats)
}
