package repository

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"timesheet/internal/db"
	"timesheet/internal/domain"
)

// SQLiteEntryRepo implements EntryRepo over a SQLite connection or
// transaction.
type SQLiteEntryRepo struct {
	conn db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(conn db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{conn: conn}
}

func (r *SQLiteEntryRepo) Insert(ctx context.Context, e *domain.TimeEntry) (int64, error) {
	if e.End == nil {
		return 0, fmt.Errorf("inserting time entry: end time is required")
	}
	now := nowText()
	res, err := r.conn.ExecContext(ctx,
		`INSERT INTO time_entries (start_time, end_time, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		formatTime(e.Start), formatTime(*e.End), e.Description, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting time entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted entry id: %w", err)
	}
	return id, nil
}

func (r *SQLiteEntryRepo) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	row := r.conn.QueryRowContext(ctx,
		`SELECT id, start_time, end_time, description FROM time_entries WHERE id = ?`, id)
	return r.scanEntry(row)
}

func (r *SQLiteEntryRepo) ListAll(ctx context.Context) ([]*domain.TimeEntry, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, start_time, end_time, description FROM time_entries ORDER BY start_time`)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.TimeEntry, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, start_time, end_time, description FROM time_entries
		 ORDER BY start_time DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent entries: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) ListForMonth(ctx context.Context, year, month int) ([]*domain.TimeEntry, error) {
	from, to := monthBounds(year, month)
	return r.listForDateRange(ctx, from, to)
}

func (r *SQLiteEntryRepo) ListForDate(ctx context.Context, day time.Time) ([]*domain.TimeEntry, error) {
	from := day.Format(DateLayout)
	to := day.AddDate(0, 0, 1).Format(DateLayout)
	return r.listForDateRange(ctx, from, to)
}

// listForDateRange returns entries whose start instant falls in the
// half-open local date range [from, to). Attribution follows the start
// date only, so an overnight shift belongs to the day it began.
func (r *SQLiteEntryRepo) listForDateRange(ctx context.Context, from, to string) ([]*domain.TimeEntry, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, start_time, end_time, description FROM time_entries
		 WHERE date(start_time) >= ? AND date(start_time) < ?
		 ORDER BY start_time`, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing entries in range: %w", err)
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *SQLiteEntryRepo) Update(ctx context.Context, id int64, start, end time.Time, description string) error {
	res, err := r.conn.ExecContext(ctx,
		`UPDATE time_entries SET start_time = ?, end_time = ?, description = ?, updated_at = ?
		 WHERE id = ?`,
		formatTime(start), formatTime(end), description, nowText(), id,
	)
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("time entry %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEntryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, `DELETE FROM time_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("time entry %d: %w", id, ErrNotFound)
	}
	return nil
}

// Stats computes all-time and current-month aggregates directly from the
// entries, so inserted rows are always reflected immediately.
func (r *SQLiteEntryRepo) Stats(ctx context.Context, now time.Time) (*domain.Stats, error) {
	stats := &domain.Stats{
		CurrentMonth: int(now.Month()),
		CurrentYear:  now.Year(),
	}

	var totalHours sql.NullFloat64
	err := r.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), SUM((julianday(end_time) - julianday(start_time)) * 24)
		 FROM time_entries`,
	).Scan(&stats.TotalEntries, &totalHours)
	if err != nil {
		return nil, fmt.Errorf("computing all-time stats: %w", err)
	}
	stats.TotalHours = round2(totalHours.Float64)

	from, to := monthBounds(stats.CurrentYear, stats.CurrentMonth)
	var monthHours sql.NullFloat64
	err = r.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), SUM((julianday(end_time) - julianday(start_time)) * 24)
		 FROM time_entries
		 WHERE date(start_time) >= ? AND date(start_time) < ?`, from, to,
	).Scan(&stats.MonthEntries, &monthHours)
	if err != nil {
		return nil, fmt.Errorf("computing month stats: %w", err)
	}
	stats.MonthHours = round2(monthHours.Float64)

	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// scanEntry scans a single entry from a *sql.Row.
func (r *SQLiteEntryRepo) scanEntry(row *sql.Row) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var startStr, endStr string

	err := row.Scan(&e.ID, &startStr, &endStr, &e.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time entry: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}

	return r.populateEntry(&e, startStr, endStr)
}

// scanEntries scans multiple entries from *sql.Rows.
func (r *SQLiteEntryRepo) scanEntries(rows *sql.Rows) ([]*domain.TimeEntry, error) {
	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var startStr, endStr string

		if err := rows.Scan(&e.ID, &startStr, &endStr, &e.Description); err != nil {
			return nil, fmt.Errorf("scanning entry row: %w", err)
		}

		entry, err := r.populateEntry(&e, startStr, endStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteEntryRepo) populateEntry(e *domain.TimeEntry, startStr, endStr string) (*domain.TimeEntry, error) {
	start, err := parseTime(startStr)
	if err != nil {
		return nil, err
	}
	end, err := parseTime(endStr)
	if err != nil {
		return nil, err
	}
	e.Start = start
	e.End = &end
	return e, nil
}
