package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"timesheet/internal/service"
)

// App holds everything the CLI commands need: the timesheet service,
// an interactivity probe for prompts, and serve-mode settings.
type App struct {
	Timesheet     service.TimesheetService
	IsInteractive func() bool
	HTTPAddr      string
	Logger        *slog.Logger
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timesheet" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timesheet",
		Short:         "Track work sessions and timesheet entries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newListCmd(app),
		newAddCmd(app),
		newAddHoursCmd(app),
		newDeleteCmd(app),
		newEditCmd(app),
		newSummaryCmd(app),
		newReportCmd(app),
		newServeCmd(app),
	)

	return root
}
