package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"timesheet/internal/domain"
)

// MonthReader is the read-only slice of the timesheet manager the
// renderer needs. The report never mutates the store.
type MonthReader interface {
	EntriesForMonth(ctx context.Context, year, month int) ([]*domain.TimeEntry, error)
	TotalHoursForMonth(ctx context.Context, year, month int) (float64, error)
	DailySummaryForMonth(ctx context.Context, year, month int) (map[int]float64, error)
}

// GenerateMonthly writes a PDF report for the given month to outputPath:
// a summary block, the per-day breakdown, and the detailed entry table.
func GenerateMonthly(ctx context.Context, reader MonthReader, year, month int, outputPath string) error {
	entries, err := reader.EntriesForMonth(ctx, year, month)
	if err != nil {
		return fmt.Errorf("loading month entries: %w", err)
	}
	totalHours, err := reader.TotalHoursForMonth(ctx, year, month)
	if err != nil {
		return fmt.Errorf("loading month total: %w", err)
	}
	daily, err := reader.DailySummaryForMonth(ctx, year, month)
	if err != nil {
		return fmt.Errorf("loading daily summary: %w", err)
	}

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	monthName := time.Month(month).String()
	m.Row(12, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Timesheet Report - %s %d", monthName, year), props.Text{
				Top:   3,
				Style: consts.Bold,
				Align: consts.Center,
				Size:  16,
			})
		})
	})

	renderSummary(m, totalHours, len(daily))
	renderDailyBreakdown(m, year, month, daily)
	renderEntryTable(m, entries)

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Report generated on %s", time.Now().Format("2006-01-02 15:04:05")), props.Text{
				Top:   5,
				Size:  8,
				Align: consts.Left,
			})
		})
	})

	if err := m.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("writing pdf report: %w", err)
	}
	return nil
}

func renderSummary(m pdf.Maroto, totalHours float64, daysWorked int) {
	avg := 0.0
	if daysWorked > 0 {
		avg = totalHours / float64(daysWorked)
	}

	sectionTitle(m, "Summary")
	rows := [][]string{
		{"Total Hours Worked", fmt.Sprintf("%.2f", totalHours)},
		{"Total Days Worked", fmt.Sprintf("%d", daysWorked)},
		{"Average Hours/Day", fmt.Sprintf("%.2f", avg)},
	}
	m.TableList([]string{"", ""}, rows, props.TableList{
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{6, 6},
		},
		Align:              consts.Left,
		HeaderContentSpace: 1,
		Line:               false,
	})
}

func renderDailyBreakdown(m pdf.Maroto, year, month int, daily map[int]float64) {
	if len(daily) == 0 {
		return
	}

	days := make([]int, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Ints(days)

	rows := make([][]string, 0, len(days))
	for _, day := range days {
		rows = append(rows, []string{
			fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			fmt.Sprintf("%.2f", daily[day]),
		})
	}

	sectionTitle(m, "Daily Breakdown")
	m.TableList([]string{"Date", "Hours Worked"}, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{6, 6},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{6, 6},
		},
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})
}

func renderEntryTable(m pdf.Maroto, entries []*domain.TimeEntry) {
	if len(entries) == 0 {
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.Start.Format("2006-01-02"),
			entry.Start.Format("15:04"),
			entry.End.Format("15:04"),
			fmt.Sprintf("%.2f", entry.DurationHours()),
			truncate(entry.Description, 30),
		})
	}

	sectionTitle(m, "Detailed Time Entries")
	m.TableList([]string{"Date", "Start", "End", "Hours", "Description"}, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{3, 2, 2, 2, 3},
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{3, 2, 2, 2, 3},
		},
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})
}

func sectionTitle(m pdf.Maroto, title string) {
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Top:   5,
				Style: consts.Bold,
				Size:  14,
			})
		})
	})
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
