package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "timesheet.db")

	database, err := OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"time_entries", "active_session"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestOpenDB_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timesheet.db")

	first, err := OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(
		`INSERT INTO time_entries (start_time, end_time, description, created_at, updated_at)
		 VALUES ('2025-06-15T09:00:00', '2025-06-15T10:00:00', 'x', '2025-06-15T10:00:00', '2025-06-15T10:00:00')`,
	)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Re-running the migrations on an existing database must not touch data.
	second, err := OpenDB(path)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM time_entries`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestActiveSession_SingletonConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO active_session (id, start_time, created_at) VALUES (1, '2025-06-15T09:00:00', '2025-06-15T09:00:00')`,
	)
	require.NoError(t, err)

	// Second row is rejected by the fixed-id primary key.
	_, err = database.Exec(
		`INSERT INTO active_session (id, start_time, created_at) VALUES (1, '2025-06-15T10:00:00', '2025-06-15T10:00:00')`,
	)
	assert.Error(t, err)

	_, err = database.Exec(
		`INSERT INTO active_session (id, start_time, created_at) VALUES (2, '2025-06-15T10:00:00', '2025-06-15T10:00:00')`,
	)
	assert.Error(t, err, "ids other than 1 violate the CHECK constraint")
}

func TestTimeEntries_EndTimeRequired(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO time_entries (start_time, end_time, description, created_at, updated_at)
		 VALUES ('2025-06-15T09:00:00', NULL, '', '2025-06-15T09:00:00', '2025-06-15T09:00:00')`,
	)
	assert.Error(t, err, "completed entries must carry an end time")
}
