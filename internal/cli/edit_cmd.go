package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"timesheet/internal/cli/formatter"
)

func newEditCmd(app *App) *cobra.Command {
	var dateFlag, startFlag, endFlag, descFlag string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace an entry's times and description",
		Long: `Edit the entry with the given stable id. Interactively this opens a
form prefilled with the current values; otherwise the --date, --start,
--end and --description flags override the stored values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}

			entry, err := app.Timesheet.GetEntryByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if entry == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn(fmt.Sprintf("No entry %d.", id)))
				return nil
			}

			date := formatter.Day(entry.Start)
			start := formatter.Clock(entry.Start)
			end := ""
			if entry.End != nil {
				end = formatter.Clock(*entry.End)
			}
			desc := entry.Description

			if cmd.Flags().Changed("date") {
				date = dateFlag
			}
			if cmd.Flags().Changed("start") {
				start = startFlag
			}
			if cmd.Flags().Changed("end") {
				end = endFlag
			}
			if cmd.Flags().Changed("description") {
				desc = descFlag
			}

			flagsGiven := cmd.Flags().Changed("date") || cmd.Flags().Changed("start") ||
				cmd.Flags().Changed("end") || cmd.Flags().Changed("description")
			if !flagsGiven && app.interactive() {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&date),
					huh.NewInput().Title("Start (HH:MM)").Value(&start),
					huh.NewInput().Title("End (HH:MM)").Value(&end),
					huh.NewInput().Title("Description").Value(&desc),
				)).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
			}

			day, err := parseDay(date)
			if err != nil {
				return err
			}
			newStart, err := parseClockOn(day, start)
			if err != nil {
				return err
			}
			newEnd, err := parseClockOn(day, end)
			if err != nil {
				return err
			}
			if !newEnd.After(newStart) {
				newEnd = newEnd.AddDate(0, 0, 1)
			}

			ok, err := app.Timesheet.UpdateEntryByID(cmd.Context(), id, newStart, newEnd, desc)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn(fmt.Sprintf("No entry %d.", id)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Entry %d updated (%s %s-%s).",
				id, formatter.Day(newStart), formatter.Clock(newStart), formatter.Clock(newEnd))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startFlag, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&endFlag, "end", "", "New end time (HH:MM)")
	cmd.Flags().StringVar(&descFlag, "description", "", "New description")

	return cmd
}
