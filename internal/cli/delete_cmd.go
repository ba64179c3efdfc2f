package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"timesheet/internal/cli/formatter"
)

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool
	var byID bool

	cmd := &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete an entry by its list position",
		Long: `Delete the entry shown at the given position in "timesheet list".
Positions shift after every insert or delete; run list again before
deleting. With --id the argument is the stable entry id instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid entry reference %q", args[0])
			}

			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete without confirmation; pass --yes")
				}
				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete entry %d?", n)).
						Value(&confirmed),
				)).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			var ok bool
			if byID {
				ok, err = app.Timesheet.DeleteEntryByID(cmd.Context(), n)
			} else {
				ok, err = app.Timesheet.DeleteEntry(cmd.Context(), int(n))
			}
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn(fmt.Sprintf("No entry %d.", n)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Entry %d deleted.", n)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&byID, "id", false, "Treat the argument as a stable entry id")

	return cmd
}
