package domain

import "time"

// TimeEntry is one work interval. End is nil only while the interval is
// still in progress; the store never persists a completed entry without
// an end time.
type TimeEntry struct {
	ID          int64
	Start       time.Time
	End         *time.Time
	Description string
}

// DurationMinutes returns the entry length in whole minutes, truncated
// toward zero. In-progress entries report 0.
func (e *TimeEntry) DurationMinutes() int {
	if e.End == nil {
		return 0
	}
	return int(e.End.Sub(e.Start).Seconds() / 60)
}

// DurationHours returns the exact hour ratio, unrounded. Display
// rounding is the caller's concern.
func (e *TimeEntry) DurationHours() float64 {
	return float64(e.DurationMinutes()) / 60
}

// ActiveSession is the singleton in-progress work session. It becomes a
// TimeEntry only when stopped.
type ActiveSession struct {
	Start       time.Time
	Description string
}

// ElapsedMinutes returns whole minutes since the session started.
func (s *ActiveSession) ElapsedMinutes(now time.Time) int {
	return int(now.Sub(s.Start).Seconds() / 60)
}

// Stats aggregates completed entries for all time and for the current
// calendar month. Always recomputed from the entries, never cached.
type Stats struct {
	TotalEntries int
	TotalHours   float64
	MonthEntries int
	MonthHours   float64
	CurrentMonth int
	CurrentYear  int
}
