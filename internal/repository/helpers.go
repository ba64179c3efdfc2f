package repository

import (
	"fmt"
	"time"
)

// TimeLayout is the storage encoding for timestamps: local wall-clock
// time without a UTC offset, so SQLite's date() returns the local
// calendar date and range queries compare in local date terms.
const TimeLayout = "2006-01-02T15:04:05"

// DateLayout is the storage encoding for calendar-date bounds.
const DateLayout = "2006-01-02"

func formatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored timestamp %q: %w", s, err)
	}
	return t, nil
}

// monthBounds returns the half-open [first-of-month, first-of-next-month)
// date range for a calendar month.
func monthBounds(year, month int) (from, to string) {
	from = fmt.Sprintf("%04d-%02d-01", year, month)
	if month == 12 {
		to = fmt.Sprintf("%04d-01-01", year+1)
	} else {
		to = fmt.Sprintf("%04d-%02d-01", year, month+1)
	}
	return from, to
}

func nowText() string {
	return time.Now().Format(TimeLayout)
}
