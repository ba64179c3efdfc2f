package testutil

import (
	"time"

	"timesheet/internal/domain"
)

// EntryOption mutates a test entry before use.
type EntryOption func(*domain.TimeEntry)

func WithDescription(desc string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Description = desc
	}
}

func WithEnd(end time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.End = &end
	}
}

// NewTestEntry builds a completed one-hour entry starting at the given
// instant.
func NewTestEntry(start time.Time, opts ...EntryOption) *domain.TimeEntry {
	end := start.Add(time.Hour)
	e := &domain.TimeEntry{
		Start:       start,
		End:         &end,
		Description: "test entry",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LocalDate builds a local-zone instant on the given calendar date.
func LocalDate(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}
