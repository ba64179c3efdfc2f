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

func TestActiveSessionRepo_StartAndGet(t *testing.T) {
	repo := NewSQLiteActiveSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	start := testutil.LocalDate(2025, time.June, 15, 9, 0)
	require.NoError(t, repo.Start(ctx, &domain.ActiveSession{Start: start, Description: "morning block"}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(start))
	assert.Equal(t, "morning block", got.Description)
}

func TestActiveSessionRepo_Get_Empty(t *testing.T) {
	repo := NewSQLiteActiveSessionRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActiveSessionRepo_Start_Conflict(t *testing.T) {
	repo := NewSQLiteActiveSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.LocalDate(2025, time.June, 15, 9, 0)
	require.NoError(t, repo.Start(ctx, &domain.ActiveSession{Start: first, Description: "first"}))

	second := testutil.LocalDate(2025, time.June, 15, 10, 0)
	err := repo.Start(ctx, &domain.ActiveSession{Start: second, Description: "second"})
	assert.ErrorIs(t, err, ErrSessionActive)

	// The slot still holds the first session.
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got.Start.Equal(first))
	assert.Equal(t, "first", got.Description)
}

func TestActiveSessionRepo_Clear(t *testing.T) {
	repo := NewSQLiteActiveSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Start(ctx, &domain.ActiveSession{
		Start: testutil.LocalDate(2025, time.June, 15, 9, 0),
	}))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	// Clearing an empty slot is a no-op.
	require.NoError(t, repo.Clear(ctx))
}
