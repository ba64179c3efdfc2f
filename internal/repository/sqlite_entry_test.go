package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/internal/domain"
	"timesheet/internal/testutil"
)

func entryRepoSetup(t *testing.T) *SQLiteEntryRepo {
	t.Helper()
	return NewSQLiteEntryRepo(testutil.NewTestDB(t))
}

func TestEntryRepo_InsertAndGetByID(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	start := testutil.LocalDate(2025, time.June, 15, 9, 0)
	entry := testutil.NewTestEntry(start, testutil.WithDescription("code review"))

	id, err := repo.Insert(ctx, entry)
	require.NoError(t, err)
	assert.Positive(t, id)

	fetched, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, fetched.ID)
	assert.True(t, fetched.Start.Equal(start))
	require.NotNil(t, fetched.End)
	assert.True(t, fetched.End.Equal(start.Add(time.Hour)))
	assert.Equal(t, "code review", fetched.Description)
}

func TestEntryRepo_Insert_RejectsMissingEnd(t *testing.T) {
	repo := entryRepoSetup(t)

	_, err := repo.Insert(context.Background(), &domain.TimeEntry{
		Start: testutil.LocalDate(2025, time.June, 15, 9, 0),
	})
	assert.Error(t, err)
}

func TestEntryRepo_GetByID_NotFound(t *testing.T) {
	repo := entryRepoSetup(t)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_IDsAreMonotonic(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	start := testutil.LocalDate(2025, time.June, 15, 9, 0)
	first, err := repo.Insert(ctx, testutil.NewTestEntry(start))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, testutil.NewTestEntry(start.Add(2*time.Hour)))
	require.NoError(t, err)
	assert.Greater(t, second, first)

	// Deleting the latest entry must not free its identifier.
	require.NoError(t, repo.Delete(ctx, second))
	third, err := repo.Insert(ctx, testutil.NewTestEntry(start.Add(4*time.Hour)))
	require.NoError(t, err)
	assert.Greater(t, third, second)
}

func TestEntryRepo_ListAll_OrderedByStart(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	late := testutil.LocalDate(2025, time.June, 15, 14, 0)
	early := testutil.LocalDate(2025, time.June, 15, 9, 0)
	lateID, err := repo.Insert(ctx, testutil.NewTestEntry(late))
	require.NoError(t, err)
	earlyID, err := repo.Insert(ctx, testutil.NewTestEntry(early))
	require.NoError(t, err)

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, earlyID, entries[0].ID)
	assert.Equal(t, lateID, entries[1].ID)
}

func TestEntryRepo_ListRecent_Limit(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	base := testutil.LocalDate(2025, time.June, 10, 9, 0)
	for i := 0; i < 5; i++ {
		_, err := repo.Insert(ctx, testutil.NewTestEntry(base.AddDate(0, 0, i)))
		require.NoError(t, err)
	}

	entries, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	// Newest first.
	assert.True(t, entries[0].Start.After(entries[1].Start))
	assert.True(t, entries[1].Start.After(entries[2].Start))
}

func TestEntryRepo_ListForMonth_Bounds(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	inside := []time.Time{
		testutil.LocalDate(2025, time.June, 1, 0, 0),
		testutil.LocalDate(2025, time.June, 15, 12, 0),
		testutil.LocalDate(2025, time.June, 30, 23, 30),
	}
	outside := []time.Time{
		testutil.LocalDate(2025, time.May, 31, 23, 59),
		testutil.LocalDate(2025, time.July, 1, 0, 0),
	}
	for _, start := range append(inside, outside...) {
		_, err := repo.Insert(ctx, testutil.NewTestEntry(start))
		require.NoError(t, err)
	}

	entries, err := repo.ListForMonth(ctx, 2025, 6)
	require.NoError(t, err)
	assert.Len(t, entries, len(inside))
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i].Start.After(entries[i-1].Start), "ascending by start")
	}
}

func TestEntryRepo_ListForMonth_DecemberWrapsYear(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, testutil.NewTestEntry(testutil.LocalDate(2025, time.December, 31, 22, 0)))
	require.NoError(t, err)
	_, err = repo.Insert(ctx, testutil.NewTestEntry(testutil.LocalDate(2026, time.January, 1, 9, 0)))
	require.NoError(t, err)

	entries, err := repo.ListForMonth(ctx, 2025, 12)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEntryRepo_ListForDate_AttributesOvernightToStartDate(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	// 23:50 -> 00:10 next day belongs to June 15 only.
	start := testutil.LocalDate(2025, time.June, 15, 23, 50)
	end := testutil.LocalDate(2025, time.June, 16, 0, 10)
	_, err := repo.Insert(ctx, testutil.NewTestEntry(start, testutil.WithEnd(end)))
	require.NoError(t, err)

	onStart, err := repo.ListForDate(ctx, testutil.LocalDate(2025, time.June, 15, 0, 0))
	require.NoError(t, err)
	assert.Len(t, onStart, 1)

	onEnd, err := repo.ListForDate(ctx, testutil.LocalDate(2025, time.June, 16, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, onEnd)
}

func TestEntryRepo_Update(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	start := testutil.LocalDate(2025, time.June, 15, 9, 0)
	id, err := repo.Insert(ctx, testutil.NewTestEntry(start))
	require.NoError(t, err)

	newStart := testutil.LocalDate(2025, time.June, 15, 10, 0)
	newEnd := testutil.LocalDate(2025, time.June, 15, 12, 30)
	require.NoError(t, repo.Update(ctx, id, newStart, newEnd, "revised"))

	fetched, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, fetched.Start.Equal(newStart))
	assert.True(t, fetched.End.Equal(newEnd))
	assert.Equal(t, "revised", fetched.Description)
}

func TestEntryRepo_Update_UnknownID(t *testing.T) {
	repo := entryRepoSetup(t)

	err := repo.Update(context.Background(), 404,
		testutil.LocalDate(2025, time.June, 15, 9, 0),
		testutil.LocalDate(2025, time.June, 15, 10, 0), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_Delete_UnknownID(t *testing.T) {
	repo := entryRepoSetup(t)

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_Stats(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()
	now := testutil.LocalDate(2025, time.June, 20, 12, 0)

	// Two hours this month, one hour in a previous month.
	inMonth := testutil.LocalDate(2025, time.June, 15, 9, 0)
	_, err := repo.Insert(ctx, testutil.NewTestEntry(inMonth, testutil.WithEnd(inMonth.Add(2*time.Hour))))
	require.NoError(t, err)
	prev := testutil.LocalDate(2025, time.April, 10, 9, 0)
	_, err = repo.Insert(ctx, testutil.NewTestEntry(prev))
	require.NoError(t, err)

	stats, err := repo.Stats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalEntries)
	assert.InDelta(t, 3.0, stats.TotalHours, 0.01)
	assert.Equal(t, 1, stats.MonthEntries)
	assert.InDelta(t, 2.0, stats.MonthHours, 0.01)
	assert.Equal(t, 6, stats.CurrentMonth)
	assert.Equal(t, 2025, stats.CurrentYear)
}

func TestEntryRepo_Stats_EmptyStore(t *testing.T) {
	repo := entryRepoSetup(t)

	stats, err := repo.Stats(context.Background(), testutil.LocalDate(2025, time.June, 20, 12, 0))
	require.NoError(t, err)
	assert.Zero(t, stats.TotalEntries)
	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.MonthEntries)
	assert.Zero(t, stats.MonthHours)
}
