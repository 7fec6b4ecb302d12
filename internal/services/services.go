package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/othello-arena/internal/config"
	"github.com/redis/go-redis/v9"
)

const initTimeout = 5 * time.Second

// Services contains the connections to the external services.
type Services struct {
	// Postgres stores finished games.
	Postgres *sqlx.DB

	// Redis stores games in progress and cached statistics.
	Redis *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	postgres, err := InitPostgres(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	redis, err := InitRedis(ctx, cfg.RedisURL)
	if err != nil {
		_ = postgres.Close()
		return nil, err
	}

	return &Services{
		Postgres: postgres,
		Redis:    redis,
	}, nil
}

// Close closes all connections.
func (s *Services) Close() error {
	pgErr := s.Postgres.Close()
	redisErr := s.Redis.Close()

	if pgErr != nil {
		return fmt.Errorf("error closing postgres: %w", pgErr)
	}

	if redisErr != nil {
		return fmt.Errorf("error closing redis: %w", redisErr)
	}

	return nil
}
