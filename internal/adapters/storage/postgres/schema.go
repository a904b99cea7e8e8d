package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema es idempotente; Migrate se puede correr en cada deploy.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS kitty_counter (
		id      SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		next_id BIGINT   NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS kitties (
		id      BIGINT PRIMARY KEY,
		genes   BYTEA  NOT NULL,
		parent1 BIGINT NULL,
		parent2 BIGINT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS kitty_owners (
		kitty_id BIGINT  PRIMARY KEY REFERENCES kitties(id),
		owner_id TEXT    NOT NULL,
		position INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS kitty_owners_owner_idx ON kitty_owners (owner_id, position)`,
	`CREATE TABLE IF NOT EXISTS kitty_stakes (
		kitty_id BIGINT PRIMARY KEY REFERENCES kitties(id),
		amount   BIGINT NOT NULL CHECK (amount >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS kitty_events (
		id           TEXT        PRIMARY KEY,
		kitty_id     BIGINT      NOT NULL,
		type         TEXT        NOT NULL,
		account      TEXT        NOT NULL,
		from_account TEXT        NOT NULL DEFAULT '',
		to_account   TEXT        NOT NULL DEFAULT '',
		parent1      BIGINT      NULL,
		parent2      BIGINT      NULL,
		recorded_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS kitty_events_kitty_idx ON kitty_events (kitty_id, recorded_at DESC)`,
	`CREATE INDEX IF NOT EXISTS kitty_events_account_idx ON kitty_events (account, recorded_at DESC)`,
}

// Migrate crea las tablas que usan KittiesRepo y EventsRepo.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
