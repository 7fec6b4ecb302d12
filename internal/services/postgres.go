package services

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_results (
	id          UUID PRIMARY KEY,
	human_color TEXT NOT NULL,
	winner      TEXT NOT NULL,
	dark_discs  INTEGER NOT NULL,
	light_discs INTEGER NOT NULL,
	moves       TEXT[] NOT NULL,
	finished_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS game_results_finished_at_idx ON game_results (finished_at DESC);
`

// InitPostgres initializes the database connection and creates missing tables.
func InitPostgres(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if _, err = db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return db, nil
}
