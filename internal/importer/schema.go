package importer

import (
	"fmt"
	"time"
)

// LegacyFile is the flat-file JSON layout used before the SQLite store:
// a list of entries plus an optional in-progress session.
type LegacyFile struct {
	Entries        []LegacyEntry `json:"entries"`
	CurrentSession *LegacyEntry  `json:"current_session"`
}

// LegacyEntry is one record in the legacy file. EndTime is null for the
// in-progress session; a missing description defaults to empty text.
type LegacyEntry struct {
	StartTime   string  `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Description string  `json:"description"`
}

// legacyTimeLayouts covers the timestamp encodings found in legacy
// files, with and without fractional seconds or a UTC offset.
var legacyTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
}

func parseLegacyTime(s string) (time.Time, error) {
	for _, layout := range legacyTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized legacy timestamp %q", s)
}
