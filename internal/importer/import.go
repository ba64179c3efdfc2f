package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"timesheet/internal/domain"
	"timesheet/internal/repository"
)

// BackupSuffix is appended to the legacy file once its contents have
// been fully imported. The original is moved aside, never deleted.
const BackupSuffix = ".backup"

// Result describes a completed import.
type Result struct {
	Entries         int
	SessionRestored bool
	BackupPath      string
}

// Run imports the legacy flat file at path into the store. A missing
// file is a no-op (nil Result). On any failure the legacy file stays in
// place so the import can be retried; rows inserted before the failure
// remain in the store. There is no rollback, so the caller should
// resolve the reported error before re-running.
func Run(ctx context.Context, path string, entries repository.EntryRepo, active repository.ActiveSessionRepo) (*Result, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading legacy file: %w", err)
	}

	var legacy LegacyFile
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("parsing legacy file %s: %w", path, err)
	}

	result := &Result{}
	for i, record := range legacy.Entries {
		if record.EndTime == nil {
			// Only completed entries live in the entry table.
			continue
		}
		start, err := parseLegacyTime(record.StartTime)
		if err != nil {
			return nil, fmt.Errorf("legacy entry %d: %w", i, err)
		}
		end, err := parseLegacyTime(*record.EndTime)
		if err != nil {
			return nil, fmt.Errorf("legacy entry %d: %w", i, err)
		}
		if _, err := entries.Insert(ctx, &domain.TimeEntry{
			Start:       start,
			End:         &end,
			Description: record.Description,
		}); err != nil {
			return nil, fmt.Errorf("importing legacy entry %d: %w", i, err)
		}
		result.Entries++
	}

	if legacy.CurrentSession != nil {
		start, err := parseLegacyTime(legacy.CurrentSession.StartTime)
		if err != nil {
			return nil, fmt.Errorf("legacy session: %w", err)
		}
		// The legacy start time is preserved, not replaced with now.
		if err := active.Start(ctx, &domain.ActiveSession{
			Start:       start,
			Description: legacy.CurrentSession.Description,
		}); err != nil {
			return nil, fmt.Errorf("restoring legacy session: %w", err)
		}
		result.SessionRestored = true
	}

	backup := path + BackupSuffix
	if err := os.Rename(path, backup); err != nil {
		return nil, fmt.Errorf("moving legacy file aside: %w", err)
	}
	result.BackupPath = backup
	return result, nil
}
