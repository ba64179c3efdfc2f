package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"timesheet/internal/cli/formatter"
	"timesheet/internal/service"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <start> <end> [description...]",
		Short: "Add a completed entry with explicit start and end times",
		Long: `Add a completed entry for a calendar date. Date is YYYY-MM-DD, "today"
or "yesterday"; times are HH:MM. An end at or before the start is taken
to mean the shift ran past midnight.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			description := strings.Join(args[3:], " ")

			ok, err := app.Timesheet.AddManualEntry(cmd.Context(), day, args[1], args[2], description)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn("Invalid time, expected HH:MM."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Entry added for %s", formatter.Day(day))))
			return nil
		},
	}
}

func newAddHoursCmd(app *App) *cobra.Command {
	var dateFlag, startFlag string

	cmd := &cobra.Command{
		Use:   "addhours <duration> [description...]",
		Short: "Add an entry by duration, e.g. \"5h 30m\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(dateFlag)
			if err != nil {
				return err
			}
			description := strings.Join(args[1:], " ")

			ok, err := app.Timesheet.AddDurationEntry(cmd.Context(), day, args[0], startFlag, description)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn("Invalid duration, expected something like \"5h 30m\"."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Entry added for %s", formatter.Day(day))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "today", "Date for the entry (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&startFlag, "start", service.DefaultStartTime, "Start time (HH:MM)")

	return cmd
}
