package service

import (
	"context"
	"time"

	"timesheet/internal/domain"
)

// IndexedEntry pairs a completed entry with its ephemeral 1-based
// display index. Indices are recomputed from a fresh ascending-by-start
// sort on every listing and must never be cached across calls.
type IndexedEntry struct {
	Index int
	Entry *domain.TimeEntry
}

// TimesheetService is the sole API consumed by the front ends. Expected
// invalid input (bad time text, unknown id, session conflicts) surfaces
// as a false/nil outcome; returned errors are storage faults.
type TimesheetService interface {
	StartSession(ctx context.Context, description string) (bool, error)
	StopSession(ctx context.Context) (*domain.TimeEntry, error)
	CurrentSession(ctx context.Context) (*domain.ActiveSession, error)
	CurrentSessionDuration(ctx context.Context) (int, error)

	AddManualEntry(ctx context.Context, day time.Time, startText, endText, description string) (bool, error)
	AddDurationEntry(ctx context.Context, day time.Time, durationText, startText, description string) (bool, error)

	GetEntryByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	EntriesWithIndex(ctx context.Context) ([]IndexedEntry, error)
	RecentEntries(ctx context.Context, limit int) ([]*domain.TimeEntry, error)
	EntriesForMonth(ctx context.Context, year, month int) ([]*domain.TimeEntry, error)
	EntriesForDate(ctx context.Context, day time.Time) ([]*domain.TimeEntry, error)

	DeleteEntry(ctx context.Context, displayIndex int) (bool, error)
	DeleteEntryByID(ctx context.Context, id int64) (bool, error)
	UpdateEntryByID(ctx context.Context, id int64, start, end time.Time, description string) (bool, error)

	TotalHoursForMonth(ctx context.Context, year, month int) (float64, error)
	DailySummaryForMonth(ctx context.Context, year, month int) (map[int]float64, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}
