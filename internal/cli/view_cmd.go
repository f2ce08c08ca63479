package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newViewCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the current plan and check tasks interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := a.today(cmd)
			if err != nil {
				return err
			}
			userID := a.userID(cmd)
			if _, err := a.Plans.Current(cmd.Context(), userID); err != nil {
				return err
			}
			if !a.interactive() {
				return newShowCmd(a).RunE(cmd, nil)
			}

			m := newPlanViewModel(a.Plans, userID, today)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
