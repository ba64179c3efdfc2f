package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet/internal/domain"
)

type stubMonthReader struct {
	entries []*domain.TimeEntry
	total   float64
	daily   map[int]float64
}

func (s *stubMonthReader) EntriesForMonth(ctx context.Context, year, month int) ([]*domain.TimeEntry, error) {
	return s.entries, nil
}

func (s *stubMonthReader) TotalHoursForMonth(ctx context.Context, year, month int) (float64, error) {
	return s.total, nil
}

func (s *stubMonthReader) DailySummaryForMonth(ctx context.Context, year, month int) (map[int]float64, error) {
	return s.daily, nil
}

func entryAt(id int64, start time.Time, hours int, desc string) *domain.TimeEntry {
	end := start.Add(time.Duration(hours) * time.Hour)
	return &domain.TimeEntry{ID: id, Start: start, End: &end, Description: desc}
}

func TestGenerateMonthly_WritesPDF(t *testing.T) {
	reader := &stubMonthReader{
		entries: []*domain.TimeEntry{
			entryAt(1, time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local), 8, "client onboarding"),
			entryAt(2, time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local), 6, "a very long description that should be cut off in the table"),
		},
		total: 14.0,
		daily: map[int]float64{4: 8.0, 5: 6.0},
	}

	path := filepath.Join(t.TempDir(), "report.pdf")
	err := GenerateMonthly(context.Background(), reader, 2024, 3, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateMonthly_EmptyMonth(t *testing.T) {
	reader := &stubMonthReader{daily: map[int]float64{}}

	path := filepath.Join(t.TempDir(), "empty.pdf")
	err := GenerateMonthly(context.Background(), reader, 2024, 1, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 30))
	assert.Equal(t, "aaaaaaaaaa...", truncate("aaaaaaaaaaaaaa", 10))
}
