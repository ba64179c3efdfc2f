package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"timesheet/internal/cli/formatter"
	"timesheet/internal/report"
)

func newReportCmd(app *App) *cobra.Command {
	var month, year int
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a monthly PDF report",
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
			if output == "" {
				output = fmt.Sprintf("timesheet_report_%04d_%02d.pdf", year, month)
			}

			if err := report.GenerateMonthly(cmd.Context(), app.Timesheet, year, month, output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Report written to "+output))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month to report (1-12, default current)")
	cmd.Flags().IntVar(&year, "year", 0, "Year to report (default current)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PDF path")

	return cmd
}
