package repository

import (
	"context"
	"time"

	"timesheet/internal/domain"
)

// EntryRepo stores completed time entries. Identifiers are assigned by
// the store, monotonically increasing and never reused.
type EntryRepo interface {
	Insert(ctx context.Context, e *domain.TimeEntry) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error)
	ListAll(ctx context.Context) ([]*domain.TimeEntry, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.TimeEntry, error)
	ListForMonth(ctx context.Context, year, month int) ([]*domain.TimeEntry, error)
	ListForDate(ctx context.Context, day time.Time) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, id int64, start, end time.Time, description string) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, now time.Time) (*domain.Stats, error)
}

// ActiveSessionRepo manages the singleton in-progress session slot.
type ActiveSessionRepo interface {
	Get(ctx context.Context) (*domain.ActiveSession, error)
	Start(ctx context.Context, s *domain.ActiveSession) error
	Clear(ctx context.Context) error
}
