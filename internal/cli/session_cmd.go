package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"timesheet/internal/cli/formatter"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start [description...]",
		Short: "Start a work session",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			ok, err := app.Timesheet.StartSession(cmd.Context(), description)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn("A session is already active. Stop it first."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Session started at %s", formatter.Clock(time.Now()))))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the active work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Timesheet.StopSession(cmd.Context())
			if err != nil {
				return err
			}
			if entry == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn("No active session."))
				return nil
			}
			msg := fmt.Sprintf("Session stopped (%s)", formatter.HoursMinutes(entry.DurationMinutes()))
			if entry.Description != "" {
				msg += ": " + entry.Description
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(msg))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && app.interactive() {
				p := tea.NewProgram(newWatchModel(app.Timesheet))
				_, err := p.Run()
				return err
			}

			sess, err := app.Timesheet.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}
			if sess == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No active session.")
				return nil
			}
			minutes := sess.ElapsedMinutes(time.Now())
			fmt.Fprintf(cmd.OutOrStdout(), "Active session since %s (%s elapsed)\n",
				formatter.Clock(sess.Start), formatter.HoursMinutes(minutes))
			if sess.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Description: %s\n", sess.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Keep the status on screen, refreshing every second")

	return cmd
}
