package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-arena/internal/models"
	"github.com/lk16/othello-arena/internal/services"
)

const (
	resultStatsKey = "result_stats"
	resultStatsTTL = time.Minute
	maxResultLimit = 100
)

// ResultRepository stores finished games in Postgres.
type ResultRepository struct {
	services *services.Services
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(c *fiber.Ctx) *ResultRepository {
	return &ResultRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewResultRepositoryFromServices(services *services.Services) *ResultRepository {
	return &ResultRepository{
		services: services,
	}
}

// Save stores a finished game. Saving the same game twice has no effect.
func (repo *ResultRepository) Save(ctx context.Context, result models.GameResult) error {
	query := `
		INSERT INTO game_results (id, human_color, winner, dark_discs, light_discs, moves, finished_at)
		VALUES (:id, :human_color, :winner, :dark_discs, :light_discs, :moves, :finished_at)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := repo.services.Postgres.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("error inserting game result: %w", err)
	}

	// Stats are rebuilt on the next read.
	if err := repo.services.Redis.Del(ctx, resultStatsKey).Err(); err != nil {
		return fmt.Errorf("error invalidating result stats: %w", err)
	}

	return nil
}

// List returns the most recently finished games, newest first.
func (repo *ResultRepository) List(ctx context.Context, limit int) ([]models.GameResult, error) {
	if limit <= 0 || limit > maxResultLimit {
		limit = maxResultLimit
	}

	query := `
		SELECT id, human_color, winner, dark_discs, light_discs, moves, finished_at
		FROM game_results
		ORDER BY finished_at DESC
		LIMIT $1
	`

	results := make([]models.GameResult, 0)
	if err := repo.services.Postgres.SelectContext(ctx, &results, query, limit); err != nil {
		return nil, fmt.Errorf("error listing game results: %w", err)
	}

	return results, nil
}

// Stats returns aggregated results. They are cached in Redis for a short time.
func (repo *ResultRepository) Stats(ctx context.Context) (models.ResultStats, error) {
	redisConn := repo.services.Redis

	cached, err := redisConn.HGetAll(ctx, resultStatsKey).Result()
	if err != nil {
		return models.ResultStats{}, fmt.Errorf("error getting result stats from Redis: %w", err)
	}

	if len(cached) != 0 {
		stats, parseErr := parseResultStats(cached)
		if parseErr == nil {
			return stats, nil
		}
	}

	query := `
		SELECT
			COUNT(*) AS games,
			COUNT(*) FILTER (WHERE winner = human_color) AS human_wins,
			COUNT(*) FILTER (WHERE winner <> human_color AND winner <> 'empty') AS computer_wins,
			COUNT(*) FILTER (WHERE winner = 'empty') AS draws
		FROM game_results
	`

	var stats models.ResultStats
	if err = repo.services.Postgres.GetContext(ctx, &stats, query); err != nil {
		return models.ResultStats{}, fmt.Errorf("error computing result stats: %w", err)
	}

	pipe := redisConn.TxPipeline()
	pipe.HSet(ctx, resultStatsKey, map[string]interface{}{
		"games":         stats.Games,
		"human_wins":    stats.HumanWins,
		"computer_wins": stats.ComputerWins,
		"draws":         stats.Draws,
	})
	pipe.Expire(ctx, resultStatsKey, resultStatsTTL)

	if _, err = pipe.Exec(ctx); err != nil {
		return models.ResultStats{}, fmt.Errorf("error caching result stats: %w", err)
	}

	return stats, nil
}

func parseResultStats(cached map[string]string) (models.ResultStats, error) {
	var stats models.ResultStats

	fields := map[string]*int{
		"games":         &stats.Games,
		"human_wins":    &stats.HumanWins,
		"computer_wins": &stats.ComputerWins,
		"draws":         &stats.Draws,
	}

	for key, target := range fields {
		value, ok := cached[key]
		if !ok {
			return models.ResultStats{}, fmt.Errorf("missing result stats field: %s", key)
		}

		parsed, err := strconv.Atoi(value)
		if err != nil {
			return models.ResultStats{}, fmt.Errorf("error parsing result stats field %s: %w", key, err)
		}

		*target = parsed
	}

	return stats, nil
}
