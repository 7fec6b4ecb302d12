package game

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-arena/internal/config"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/game", Page)
}

// Page serves the page for playing against the computer in a browser.
func Page(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

	return c.SendFile(filepath.Join(cfg.StaticDir, "game.html"))
}
