package repository

import "errors"

var (
	// ErrNotFound marks lookups and mutations that matched no row.
	ErrNotFound = errors.New("not found")

	// ErrSessionActive is returned when starting a session while the
	// singleton active-session slot is already occupied.
	ErrSessionActive = errors.New("session already active")
)
