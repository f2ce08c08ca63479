package cli

import (
	"fmt"

	"github.com/alexanderramin/cronograma/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFreeDayCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "freeday",
		Aliases: []string{"free"},
		Short:   "Manage days without study",
		Long: `Manage days without study.

Changes are saved to the configuration. Run recalculate or generate
to apply them to the plan.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <date>",
			Short: "Mark a date as a free day",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Plans.AddFreeDay(cmd.Context(), a.userID(cmd), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added free day %s\n", formatter.DayLabel(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:     "remove <date>",
			Aliases: []string{"rm"},
			Short:   "Make a free day a study day again",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Plans.RemoveFreeDay(cmd.Context(), a.userID(cmd), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed free day %s\n", formatter.DayLabel(args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List free days",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				days, err := a.Plans.ListFreeDays(cmd.Context(), a.userID(cmd))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFreeDays(days))
				return nil
			},
		},
	)
	return cmd
}
