package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/cli/formatter"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Build a new plan from the stored configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := a.today(cmd)
			if err != nil {
				return err
			}
			req := app.NewGenerateRequest(a.userID(cmd))
			req.Today = &today

			plan, err := a.Plans.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatPlanSummary(plan))
			fmt.Fprintln(out, formatter.Dim("Run `cronograma show` to see the days."))
			return nil
		},
	}
}

func newShowCmd(a *App) *cobra.Command {
	var from string
	var days int
	var all bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := a.Plans.Current(cmd.Context(), a.userID(cmd))
			if err != nil {
				return err
			}
			if from == "" {
				today, err := a.today(cmd)
				if err != nil {
					return err
				}
				from = today.Format(domain.DateLayout)
			} else if err := validateDateArg(from); err != nil {
				return err
			}
			if all {
				days = 0
				if len(plan.Result.Schedule) > 0 {
					from = plan.Result.Schedule[0].Date
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatPlanSummary(plan))
			shown := daysFrom(plan.Result.Schedule, from, days)
			if len(shown) == 0 {
				fmt.Fprintln(out, formatter.Dim("No plan days from "+from+"."))
				return nil
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatDays(shown, plan.Checked))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date to show (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to show")
	cmd.Flags().BoolVar(&all, "all", false, "Show the whole plan")
	return cmd
}

func newRecalculateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "recalculate",
		Aliases: []string{"recalc"},
		Short:   "Mark checked study tasks as completed and rebuild the plan from today",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := a.today(cmd)
			if err != nil {
				return err
			}
			req := app.NewRecalculateRequest(a.userID(cmd))
			req.Today = &today

			res, err := a.Plans.Recalculate(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d topics newly completed, %d in total.\n",
				formatter.StyleGreen.Render("✔"), len(res.NewlyCompleted), res.TotalCompleted)
			fmt.Fprintln(out, formatter.FormatPlanSummary(res.Plan))
			return nil
		},
	}
}

func newResetCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget completed topics and checked tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !a.interactive() {
					return fmt.Errorf("reset discards all progress; pass --yes to confirm")
				}
				if err := wizardConfirm("Discard all completed topics and checks?", &yes).Run(); err != nil {
					return err
				}
				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := a.Plans.ResetProgress(cmd.Context(), a.userID(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared. Run `cronograma generate` for a fresh plan.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newHistoryCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generated plans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			revisions, err := a.Plans.History(cmd.Context(), a.userID(cmd), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(revisions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of plans to list")
	return cmd
}

func newCheckCmd(a *App, checked bool) *cobra.Command {
	use, short, verb := "check", "Mark a task as done", "Checked"
	if !checked {
		use, short, verb = "uncheck", "Clear the done mark of a task", "Unchecked"
	}

	return &cobra.Command{
		Use:   use + " <date> <index>",
		Short: short,
		Long: short + `.

The index is the task number shown by ` + "`cronograma show`" + `, starting at 0.
Checked study topics count as completed on the next recalculate.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid task index %q", args[1])
			}
			req := app.CheckRequest{
				UserID:  a.userID(cmd),
				Date:    args[0],
				Index:   index,
				Checked: checked,
			}
			if err := a.Plans.SetChecked(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, domain.TaskKey(args[0], index))
			return nil
		},
	}
}
