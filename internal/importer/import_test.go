package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/internal/domain"
	"timesheet/internal/repository"
	"timesheet/internal/testutil"
)

const legacyFixture = `{
  "entries": [
    {"start_time": "2024-11-04T09:00:00", "end_time": "2024-11-04T12:30:00", "description": "legacy morning"},
    {"start_time": "2024-11-04T13:30:00.250000", "end_time": "2024-11-04T17:00:00.250000", "description": "legacy afternoon"}
  ],
  "current_session": {"start_time": "2024-11-05T08:45:00", "end_time": null, "description": "carried over"}
}`

func writeLegacyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timesheet_data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_ImportsEntriesAndSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	activeRepo := repository.NewSQLiteActiveSessionRepo(database)
	path := writeLegacyFile(t, legacyFixture)
	ctx := context.Background()

	result, err := Run(ctx, path, entryRepo, activeRepo)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.Entries)
	assert.True(t, result.SessionRestored)

	entries, err := entryRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Start.Equal(time.Date(2024, 11, 4, 9, 0, 0, 0, time.Local)))
	assert.True(t, entries[0].End.Equal(time.Date(2024, 11, 4, 12, 30, 0, 0, time.Local)))
	assert.Equal(t, "legacy morning", entries[0].Description)
	assert.Equal(t, "legacy afternoon", entries[1].Description)

	// The restored session keeps the legacy start time, not "now".
	sess, err := activeRepo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, sess.Start.Equal(time.Date(2024, 11, 5, 8, 45, 0, 0, time.Local)))
	assert.Equal(t, "carried over", sess.Description)

	// Legacy file moved aside, never deleted.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	backup, err := os.ReadFile(result.BackupPath)
	require.NoError(t, err)
	assert.JSONEq(t, legacyFixture, string(backup))
}

func TestRun_MissingFileIsNoOp(t *testing.T) {
	database := testutil.NewTestDB(t)
	path := filepath.Join(t.TempDir(), "timesheet_data.json")

	result, err := Run(context.Background(), path,
		repository.NewSQLiteEntryRepo(database),
		repository.NewSQLiteActiveSessionRepo(database))
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestRun_SecondRunIsNoOp(t *testing.T) {
	database := testutil.NewTestDB(t)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	activeRepo := repository.NewSQLiteActiveSessionRepo(database)
	path := writeLegacyFile(t, legacyFixture)
	ctx := context.Background()

	_, err := Run(ctx, path, entryRepo, activeRepo)
	require.NoError(t, err)

	result, err := Run(ctx, path, entryRepo, activeRepo)
	require.NoError(t, err)
	assert.Nil(t, result)

	entries, err := entryRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no duplicates from the second run")
}

func TestRun_MalformedJSONLeavesFileInPlace(t *testing.T) {
	database := testutil.NewTestDB(t)
	path := writeLegacyFile(t, "{not json")

	_, err := Run(context.Background(), path,
		repository.NewSQLiteEntryRepo(database),
		repository.NewSQLiteActiveSessionRepo(database))
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "legacy file must remain for retry")
}

func TestRun_SessionConflictLeavesFileInPlace(t *testing.T) {
	database := testutil.NewTestDB(t)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	activeRepo := repository.NewSQLiteActiveSessionRepo(database)
	path := writeLegacyFile(t, legacyFixture)
	ctx := context.Background()

	// A session is already running; restoring the legacy one conflicts.
	require.NoError(t, activeRepo.Start(ctx, &domain.ActiveSession{Start: time.Now()}))

	_, err := Run(ctx, path, entryRepo, activeRepo)
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "legacy file must remain for retry")

	// Already-imported rows remain; this is the documented limitation.
	entries, err := entryRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRun_SkipsUnfinishedEntriesInList(t *testing.T) {
	database := testutil.NewTestDB(t)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	path := writeLegacyFile(t, `{
	  "entries": [
	    {"start_time": "2024-11-04T09:00:00", "end_time": null, "description": "dangling"},
	    {"start_time": "2024-11-04T10:00:00", "end_time": "2024-11-04T11:00:00"}
	  ],
	  "current_session": null
	}`)
	ctx := context.Background()

	result, err := Run(ctx, path, entryRepo, repository.NewSQLiteActiveSessionRepo(database))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Entries)
	assert.False(t, result.SessionRestored)

	entries, err := entryRepo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Description, "missing description defaults to empty")
}
