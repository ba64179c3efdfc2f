package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"timesheet/internal/cli/formatter"
)

func newSummaryCmd(app *App) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show hours per day and the month total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if month == 0 {
				month = int(now.Month())
			}
			if year == 0 {
				year = now.Year()
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d", month)
			}

			total, err := app.Timesheet.TotalHoursForMonth(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			daily, err := app.Timesheet.DailySummaryForMonth(cmd.Context(), year, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.StyleHeader.Render(fmt.Sprintf("%s %d", time.Month(month), year)))

			if len(daily) == 0 {
				fmt.Fprintln(out, "No entries this month.")
				return nil
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
					formatter.Hours(daily[day]),
				})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"DATE", "HOURS"}, rows))
			fmt.Fprintf(out, "\nTotal: %s over %d day(s)\n", formatter.Hours(total), len(days))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month to summarize (1-12, default current)")
	cmd.Flags().IntVar(&year, "year", 0, "Year to summarize (default current)")

	return cmd
}
