package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	// SessionTTL is how long an unfinished game is kept in Redis after the last move.
	SessionTTL = 24 * time.Hour

	// ComputerMoveDelay is how long frontends show the computer move before applying it.
	ComputerMoveDelay = 500 * time.Millisecond
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
	StaticDir         string
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("ARENA_SERVER_HOST"),
		ServerPort:        getEnvMust("ARENA_SERVER_PORT"),
		RedisURL:          getEnvMust("ARENA_REDIS_URL"),
		PostgresURL:       getEnvMust("ARENA_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("ARENA_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("ARENA_BASIC_AUTH_PASS"),
		Token:             getEnvMust("ARENA_TOKEN"),
		Prefork:           getEnvMustBool("ARENA_PREFORK"),
		StaticDir:         os.Getenv("ARENA_STATIC_DIR"),
	}
}

// ClientConfig holds the configuration of a client playing against the server.
type ClientConfig struct {
	ServerURL string
	Token     string
}

// LoadClientConfig loads the client configuration from environment variables.
func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: getEnvMust("ARENA_SERVER_URL"),
		Token:     os.Getenv("ARENA_TOKEN"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
