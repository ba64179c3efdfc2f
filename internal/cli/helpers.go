package cli

import (
	"fmt"
	"time"

	"timesheet/internal/repository"
)

// parseDay accepts "today", "yesterday", or a YYYY-MM-DD date.
func parseDay(text string) (time.Time, error) {
	now := time.Now()
	switch text {
	case "", "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	case "yesterday":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).AddDate(0, 0, -1), nil
	}
	day, err := time.ParseInLocation(repository.DateLayout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", text)
	}
	return day, nil
}

// parseClockOn builds an instant from a calendar day and HH:MM text.
func parseClockOn(day time.Time, text string) (time.Time, error) {
	clock, err := time.Parse("15:04", text)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", text)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}
