package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"timesheet/internal/domain"
	"timesheet/internal/repository"
	"timesheet/internal/service"
)

const clockLayout = "15:04"

var errInvalidYearMonth = errors.New("invalid year/month")

type entryPayload struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time,omitempty"`
	Description   string  `json:"description"`
	DurationHours float64 `json:"duration_hours"`
}

func entryJSON(e *domain.TimeEntry) entryPayload {
	p := entryPayload{
		ID:            e.ID,
		Date:          e.Start.Format(repository.DateLayout),
		StartTime:     e.Start.Format(clockLayout),
		Description:   e.Description,
		DurationHours: e.DurationHours(),
	}
	if e.End != nil {
		p.EndTime = e.End.Format(clockLayout)
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type sessionRequest struct {
	Description string `json:"description"`
}

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ok, err := s.svc.StartSession(r.Context(), req.Description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusConflict, "a session is already active")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"status":      "started",
		"description": req.Description,
	})
}

func (s *Server) handleSessionStop(w http.ResponseWriter, r *http.Request) {
	entry, err := s.svc.StopSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entry == nil {
		writeError(w, http.StatusConflict, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, entryJSON(entry))
}

func (s *Server) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	sess, err := s.svc.CurrentSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sess == nil {
		writeJSON(w, http.StatusOK, map[string]any{"active": false})
		return
	}
	minutes := sess.ElapsedMinutes(time.Now())
	writeJSON(w, http.StatusOK, map[string]any{
		"active":           true,
		"start_time":       sess.Start.Format(repository.TimeLayout),
		"description":      sess.Description,
		"duration_minutes": minutes,
		"duration_hours":   float64(minutes) / 60,
	})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		entries []*domain.TimeEntry
		err     error
	)
	switch {
	case q.Get("date") != "":
		day, perr := time.ParseInLocation(repository.DateLayout, q.Get("date"), time.Local)
		if perr != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		entries, err = s.svc.EntriesForDate(ctx, day)
	case q.Get("month") != "" || q.Get("year") != "":
		year, month, perr := parseYearMonth(q.Get("year"), q.Get("month"))
		if perr != nil {
			writeError(w, http.StatusBadRequest, perr.Error())
			return
		}
		entries, err = s.svc.EntriesForMonth(ctx, year, month)
	case q.Get("limit") != "":
		limit, perr := strconv.Atoi(q.Get("limit"))
		if perr != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		entries, err = s.svc.RecentEntries(ctx, limit)
	default:
		var indexed []service.IndexedEntry
		indexed, err = s.svc.EntriesWithIndex(ctx)
		for _, ie := range indexed {
			entries = append(entries, ie.Entry)
		}
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payload := make([]entryPayload, 0, len(entries))
	for _, e := range entries {
		payload = append(payload, entryJSON(e))
	}
	writeJSON(w, http.StatusOK, payload)
}

type addEntryRequest struct {
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	day, err := time.ParseInLocation(repository.DateLayout, req.Date, time.Local)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	var ok bool
	if req.Duration != "" {
		start := req.StartTime
		if start == "" {
			start = service.DefaultStartTime
		}
		ok, err = s.svc.AddDurationEntry(r.Context(), day, req.Duration, start, req.Description)
	} else {
		ok, err = s.svc.AddManualEntry(r.Context(), day, req.StartTime, req.EndTime, req.Description)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid entry input")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	entry, err := s.svc.GetEntryByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entryJSON(entry))
}

type updateEntryRequest struct {
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	var req updateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	day, err := time.ParseInLocation(repository.DateLayout, req.Date, time.Local)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}
	startClock, err := time.Parse(clockLayout, req.StartTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start_time, expected HH:MM")
		return
	}
	endClock, err := time.Parse(clockLayout, req.EndTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end_time, expected HH:MM")
		return
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), startClock.Hour(), startClock.Minute(), 0, 0, time.Local)
	end := time.Date(day.Year(), day.Month(), day.Day(), endClock.Hour(), endClock.Minute(), 0, 0, time.Local)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	ok, err := s.svc.UpdateEntryByID(r.Context(), id, start, end, req.Description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	ok, err := s.svc.DeleteEntryByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if q.Get("year") != "" || q.Get("month") != "" {
		var err error
		year, month, err = parseYearMonth(q.Get("year"), q.Get("month"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	total, err := s.svc.TotalHoursForMonth(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	daily, err := s.svc.DailySummaryForMonth(r.Context(), year, month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	dailyHours := make(map[string]float64, len(daily))
	for day, hours := range daily {
		dailyHours[strconv.Itoa(day)] = hours
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"year":        year,
		"month":       month,
		"total_hours": total,
		"daily_hours": dailyHours,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_entries": stats.TotalEntries,
		"total_hours":   stats.TotalHours,
		"month_entries": stats.MonthEntries,
		"month_hours":   stats.MonthHours,
		"current_month": stats.CurrentMonth,
		"current_year":  stats.CurrentYear,
	})
}

func parseYearMonth(yearText, monthText string) (int, int, error) {
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return 0, 0, errInvalidYearMonth
	}
	month, err := strconv.Atoi(monthText)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errInvalidYearMonth
	}
	return year, month, nil
}
