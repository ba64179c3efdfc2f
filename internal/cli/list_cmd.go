package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"timesheet/internal/cli/formatter"
	"timesheet/internal/domain"
)

func newListCmd(app *App) *cobra.Command {
	var month, year, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List completed entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			switch {
			case limit > 0:
				entries, err := app.Timesheet.RecentEntries(ctx, limit)
				if err != nil {
					return err
				}
				printEntryTable(cmd, entries, "ID", func(e *domain.TimeEntry) string {
					return strconv.FormatInt(e.ID, 10)
				})
			case month > 0 || year > 0:
				if month == 0 {
					month = int(time.Now().Month())
				}
				if year == 0 {
					year = time.Now().Year()
				}
				if month < 1 || month > 12 {
					return fmt.Errorf("invalid month %d", month)
				}
				entries, err := app.Timesheet.EntriesForMonth(ctx, year, month)
				if err != nil {
					return err
				}
				printEntryTable(cmd, entries, "ID", func(e *domain.TimeEntry) string {
					return strconv.FormatInt(e.ID, 10)
				})
			default:
				indexed, err := app.Timesheet.EntriesWithIndex(ctx)
				if err != nil {
					return err
				}
				entries := make([]*domain.TimeEntry, 0, len(indexed))
				index := make(map[int64]int, len(indexed))
				for _, ie := range indexed {
					entries = append(entries, ie.Entry)
					index[ie.Entry.ID] = ie.Index
				}
				printEntryTable(cmd, entries, "#", func(e *domain.TimeEntry) string {
					return strconv.Itoa(index[e.ID])
				})
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "List entries for this month (1-12)")
	cmd.Flags().IntVar(&year, "year", 0, "Year for --month (default current)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the N most recent entries")

	return cmd
}

func printEntryTable(cmd *cobra.Command, entries []*domain.TimeEntry, keyHeader string, keyOf func(*domain.TimeEntry) string) {
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
		return
	}

	headers := []string{keyHeader, "DATE", "START", "END", "DURATION", "DESCRIPTION"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		end := ""
		if e.End != nil {
			end = formatter.Clock(*e.End)
		}
		rows = append(rows, []string{
			keyOf(e),
			formatter.Day(e.Start),
			formatter.Clock(e.Start),
			end,
			formatter.HoursMinutes(e.DurationMinutes()),
			e.Description,
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
}
