package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the backing table if it does not exist yet.
//
// All app state lives in a single flat key/value table; the logical
// collections (registry, per-user tasks, friend lists, shared feed) are
// JSON documents stored under well-known keys (see keys.go).
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
