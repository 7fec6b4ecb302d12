package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-arena/internal/config"
	"github.com/lk16/othello-arena/internal/routes/api"
	"github.com/lk16/othello-arena/internal/routes/game"
	"github.com/lk16/othello-arena/internal/routes/static"
	"github.com/lk16/othello-arena/internal/routes/version"
	"github.com/lk16/othello-arena/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.Redirect("/version")
}

func SetupRoutes(app *fiber.App, cfg *config.ServerConfig) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket games
	ws.SetupRoutes(app)

	// Serve static files and the game page, if a frontend is deployed
	if cfg.StaticDir != "" {
		static.SetupRoutes(app, cfg.StaticDir)
		game.SetupRoutes(app)
	}

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
