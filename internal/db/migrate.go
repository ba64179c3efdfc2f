package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent schema statements, re-run in order on every
// open. Timestamps are stored as local wall-clock text without a UTC
// offset so that date(start_time) yields the local calendar date.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS time_entries (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	// Singleton slot for the in-progress session. The fixed-id check
	// makes "at most one active session" a schema guarantee rather than
	// an application convention.
	`CREATE TABLE IF NOT EXISTS active_session (
		id          INTEGER PRIMARY KEY CHECK (id = 1),
		start_time  TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_time_entries_start ON time_entries(start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_date ON time_entries(date(start_time))`,
}

// Migrate applies the schema to an open database.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
