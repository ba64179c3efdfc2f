package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var entryStart = time.Date(2025, 6, 15, 9, 0, 0, 0, time.Local)

func TestDurationMinutes_Completed(t *testing.T) {
	end := entryStart.Add(2*time.Hour + 30*time.Minute)
	e := &TimeEntry{Start: entryStart, End: &end}
	assert.Equal(t, 150, e.DurationMinutes())
	assert.InDelta(t, 2.5, e.DurationHours(), 1e-9)
}

func TestDurationMinutes_FloorsPartialMinutes(t *testing.T) {
	end := entryStart.Add(90*time.Second + 59*time.Second)
	e := &TimeEntry{Start: entryStart, End: &end}
	assert.Equal(t, 2, e.DurationMinutes())
}

func TestDurationMinutes_InProgress(t *testing.T) {
	e := &TimeEntry{Start: entryStart}
	assert.Equal(t, 0, e.DurationMinutes())
	assert.Equal(t, 0.0, e.DurationHours())
}

func TestActiveSession_ElapsedMinutes(t *testing.T) {
	s := &ActiveSession{Start: entryStart, Description: "deep work"}
	assert.Equal(t, 45, s.ElapsedMinutes(entryStart.Add(45*time.Minute+20*time.Second)))
	assert.Equal(t, 0, s.ElapsedMinutes(entryStart))
}
