package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/lk16/othello-arena/internal/config"
)

// BasicAuth middleware that checks for basic auth credentials.
func BasicAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		unauthorizedHandler := func(c *fiber.Ctx) error {
			c.Set("WWW-Authenticate", `Basic realm="Arena"`)

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		handler := basicauth.New(basicauth.Config{
			Users: map[string]string{
				cfg.BasicAuthUsername: cfg.BasicAuthPassword,
			},
			Realm:        "Arena",
			Unauthorized: unauthorizedHandler,
		})

		return handler(c)
	}
}

// AuthOrToken middleware that accepts either basic auth or a token header.
func AuthOrToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg := c.Locals("config").(*config.ServerConfig) //nolint: errcheck

		token := c.Get("x-token")
		if token != "" && token == cfg.Token {
			return c.Next()
		}

		return BasicAuth()(c)
	}
}
