package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"timesheet/internal/db"
	"timesheet/internal/domain"
)

// SQLiteActiveSessionRepo implements ActiveSessionRepo over the
// fixed-id active_session row.
type SQLiteActiveSessionRepo struct {
	conn db.DBTX
}

// NewSQLiteActiveSessionRepo creates a new SQLiteActiveSessionRepo.
func NewSQLiteActiveSessionRepo(conn db.DBTX) *SQLiteActiveSessionRepo {
	return &SQLiteActiveSessionRepo{conn: conn}
}

func (r *SQLiteActiveSessionRepo) Get(ctx context.Context) (*domain.ActiveSession, error) {
	var startStr string
	var s domain.ActiveSession

	err := r.conn.QueryRowContext(ctx,
		`SELECT start_time, description FROM active_session WHERE id = 1`,
	).Scan(&startStr, &s.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("active session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("reading active session: %w", err)
	}

	s.Start, err = parseTime(startStr)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Start occupies the singleton slot. A plain INSERT lets the fixed-id
// primary key reject a second session, so first writer wins.
func (r *SQLiteActiveSessionRepo) Start(ctx context.Context, s *domain.ActiveSession) error {
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO active_session (id, start_time, description, created_at) VALUES (1, ?, ?, ?)`,
		formatTime(s.Start), s.Description, nowText(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "constraint failed") {
			return fmt.Errorf("starting session: %w", ErrSessionActive)
		}
		return fmt.Errorf("starting session: %w", err)
	}
	return nil
}

func (r *SQLiteActiveSessionRepo) Clear(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, `DELETE FROM active_session WHERE id = 1`); err != nil {
		return fmt.Errorf("clearing active session: %w", err)
	}
	return nil
}
