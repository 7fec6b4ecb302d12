package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello-arena/internal/config"
	"github.com/lk16/othello-arena/internal/services"
	"github.com/lk16/othello-arena/internal/session"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
)

// ErrSessionNotFound is returned when a game does not exist or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores games in progress in Redis.
type SessionRepository struct {
	services *services.Services
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(c *fiber.Ctx) *SessionRepository {
	return &SessionRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

func NewSessionRepositoryFromServices(services *services.Services) *SessionRepository {
	return &SessionRepository{
		services: services,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Save stores a session and resets its TTL.
func (repo *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	jsonData, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	err = repo.services.Redis.Set(ctx, sessionKey(s.ID), jsonData, config.SessionTTL).Err()
	if err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	return nil
}

// Load fetches a session by ID.
func (repo *SessionRepository) Load(ctx context.Context, id string) (*session.Session, error) {
	jsonData, err := repo.services.Redis.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("error getting session: %w", err)
	}

	var s session.Session
	if err = json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("error unmarshaling session: %w", err)
	}

	return &s, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (repo *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := repo.services.Redis.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
