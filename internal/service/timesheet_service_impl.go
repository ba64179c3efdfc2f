package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"timesheet/internal/db"
	"timesheet/internal/domain"
	"timesheet/internal/repository"
)

// DefaultStartTime is used by duration-based entries when no explicit
// start time is given.
const DefaultStartTime = "09:00"

type timesheetService struct {
	entries  repository.EntryRepo
	active   repository.ActiveSessionRepo
	uow      db.UnitOfWork
	now      func() time.Time
	observer UseCaseObserver
}

// Option configures a TimesheetService.
type Option func(*timesheetService)

// WithClock overrides the wall-clock source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *timesheetService) {
		s.now = now
	}
}

// WithObserver attaches a use-case observer.
func WithObserver(obs UseCaseObserver) Option {
	return func(s *timesheetService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// NewTimesheetService creates the timesheet manager over the given
// repositories and transactional boundary.
func NewTimesheetService(entries repository.EntryRepo, active repository.ActiveSessionRepo, uow db.UnitOfWork, opts ...Option) TimesheetService {
	s := &timesheetService{
		entries:  entries,
		active:   active,
		uow:      uow,
		now:      time.Now,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *timesheetService) StartSession(ctx context.Context, description string) (bool, error) {
	started := s.now()
	err := s.active.Start(ctx, &domain.ActiveSession{Start: started, Description: description})
	if errors.Is(err, repository.ErrSessionActive) {
		s.observe(ctx, "start_session", started, false, nil)
		return false, nil
	}
	if err != nil {
		s.observe(ctx, "start_session", started, false, err)
		return false, err
	}
	s.observe(ctx, "start_session", started, true, nil)
	return true, nil
}

// StopSession converts the active session into a completed entry. The
// insert and the slot clear run in one transaction so no state is
// observable where both or neither exist.
func (s *timesheetService) StopSession(ctx context.Context) (*domain.TimeEntry, error) {
	began := s.now()
	var entry *domain.TimeEntry

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActive := repository.NewSQLiteActiveSessionRepo(tx)
		txEntries := repository.NewSQLiteEntryRepo(tx)

		sess, err := txActive.Get(ctx)
		if err != nil {
			return err
		}

		end := s.now()
		entry = &domain.TimeEntry{Start: sess.Start, End: &end, Description: sess.Description}
		id, err := txEntries.Insert(ctx, entry)
		if err != nil {
			return err
		}
		entry.ID = id

		return txActive.Clear(ctx)
	})
	if errors.Is(err, repository.ErrNotFound) {
		s.observe(ctx, "stop_session", began, false, nil)
		return nil, nil
	}
	if err != nil {
		s.observe(ctx, "stop_session", began, false, err)
		return nil, err
	}
	s.observe(ctx, "stop_session", began, true, nil)
	return entry, nil
}

func (s *timesheetService) CurrentSession(ctx context.Context) (*domain.ActiveSession, error) {
	sess, err := s.active.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return sess, err
}

func (s *timesheetService) CurrentSessionDuration(ctx context.Context) (int, error) {
	sess, err := s.CurrentSession(ctx)
	if err != nil || sess == nil {
		return 0, err
	}
	return sess.ElapsedMinutes(s.now()), nil
}

func (s *timesheetService) AddManualEntry(ctx context.Context, day time.Time, startText, endText, description string) (bool, error) {
	startHour, startMin, err := parseClock(startText)
	if err != nil {
		return false, nil
	}
	endHour, endMin, err := parseClock(endText)
	if err != nil {
		return false, nil
	}

	start := atClock(day, startHour, startMin)
	end := atClock(day, endHour, endMin)

	// Overnight rule: an end at or before the start means the shift
	// crossed midnight. One day is added exactly once.
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	began := s.now()
	if _, err := s.entries.Insert(ctx, &domain.TimeEntry{Start: start, End: &end, Description: description}); err != nil {
		s.observe(ctx, "add_manual_entry", began, false, err)
		return false, err
	}
	s.observe(ctx, "add_manual_entry", began, true, nil)
	return true, nil
}

func (s *timesheetService) AddDurationEntry(ctx context.Context, day time.Time, durationText, startText, description string) (bool, error) {
	hours, minutes := domain.ParseDuration(durationText)
	if hours == 0 && minutes == 0 {
		return false, nil
	}

	if startText == "" {
		startText = DefaultStartTime
	}
	startHour, startMin, err := parseClock(startText)
	if err != nil {
		return false, nil
	}

	start := atClock(day, startHour, startMin)
	end := start.Add(time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute)

	began := s.now()
	if _, err := s.entries.Insert(ctx, &domain.TimeEntry{Start: start, End: &end, Description: description}); err != nil {
		s.observe(ctx, "add_duration_entry", began, false, err)
		return false, err
	}
	s.observe(ctx, "add_duration_entry", began, true, nil)
	return true, nil
}

func (s *timesheetService) GetEntryByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	entry, err := s.entries.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return entry, err
}

func (s *timesheetService) EntriesWithIndex(ctx context.Context) ([]IndexedEntry, error) {
	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	indexed := make([]IndexedEntry, len(entries))
	for i, entry := range entries {
		indexed[i] = IndexedEntry{Index: i + 1, Entry: entry}
	}
	return indexed, nil
}

func (s *timesheetService) RecentEntries(ctx context.Context, limit int) ([]*domain.TimeEntry, error) {
	return s.entries.ListRecent(ctx, limit)
}

func (s *timesheetService) EntriesForMonth(ctx context.Context, year, month int) ([]*domain.TimeEntry, error) {
	return s.entries.ListForMonth(ctx, year, month)
}

func (s *timesheetService) EntriesForDate(ctx context.Context, day time.Time) ([]*domain.TimeEntry, error) {
	return s.entries.ListForDate(ctx, day)
}

// DeleteEntry resolves an ephemeral display index against a fresh
// ascending-by-start ordering and deletes by the stable identifier.
func (s *timesheetService) DeleteEntry(ctx context.Context, displayIndex int) (bool, error) {
	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		return false, err
	}
	if displayIndex < 1 || displayIndex > len(entries) {
		return false, nil
	}
	return s.DeleteEntryByID(ctx, entries[displayIndex-1].ID)
}

func (s *timesheetService) DeleteEntryByID(ctx context.Context, id int64) (bool, error) {
	began := s.now()
	err := s.entries.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		s.observe(ctx, "delete_entry", began, false, err)
		return false, err
	}
	s.observe(ctx, "delete_entry", began, true, nil)
	return true, nil
}

func (s *timesheetService) UpdateEntryByID(ctx context.Context, id int64, start, end time.Time, description string) (bool, error) {
	began := s.now()
	err := s.entries.Update(ctx, id, start, end, description)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		s.observe(ctx, "update_entry", began, false, err)
		return false, err
	}
	s.observe(ctx, "update_entry", began, true, nil)
	return true, nil
}

func (s *timesheetService) TotalHoursForMonth(ctx context.Context, year, month int) (float64, error) {
	entries, err := s.entries.ListForMonth(ctx, year, month)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, entry := range entries {
		total += entry.DurationHours()
	}
	return total, nil
}

func (s *timesheetService) DailySummaryForMonth(ctx context.Context, year, month int) (map[int]float64, error) {
	entries, err := s.entries.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	daily := make(map[int]float64)
	for _, entry := range entries {
		daily[entry.Start.Day()] += entry.DurationHours()
	}
	return daily, nil
}

func (s *timesheetService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.entries.Stats(ctx, s.now())
}

func (s *timesheetService) observe(ctx context.Context, name string, began time.Time, success bool, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: began,
		Duration:  s.now().Sub(began),
		Success:   success,
		Err:       err,
	})
}

// parseClock parses strict "HH:MM" text: a one- or two-digit hour, a
// colon, and a two-digit minute, both in range.
func parseClock(text string) (hour, minute int, err error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time %q: want HH:MM", text)
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("time %q: want HH:MM", text)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("time %q: %w", text, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("time %q: %w", text, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q: out of range", text)
	}
	return hour, minute, nil
}

// atClock combines a calendar date with a wall-clock time in the local
// zone.
func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
}
