package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/cronograma/internal/cli/formatter"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the plan configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(a),
		newConfigSetCmd(a),
		newConfigImportCmd(a),
		newConfigExportCmd(a),
	)
	return cmd
}

func newConfigShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.Plans.LoadConfig(cmd.Context(), a.userID(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConfig(cfg))
			return nil
		},
	}
}

func newConfigSetCmd(a *App) *cobra.Command {
	var scheduleType, end string
	var clearEnd bool
	hours := &weeklyHoursValue{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change basic settings of the configuration",
		Example: `  cronograma config set --type intensive
  cronograma config set --hours 0,2,2,2,2,2,4
  cronograma config set --hours 6:5 --end 2027-11-07`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID := a.userID(cmd)
			cfg, err := loadConfigOrDefault(ctx, a, userID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("type") {
				st := domain.ScheduleType(scheduleType)
				if !domain.ValidScheduleTypes[scheduleType] {
					return fmt.Errorf("unknown schedule type %q (use extensive or intensive)", scheduleType)
				}
				if st != cfg.ScheduleType && len(cfg.TopicPrefs) > 0 {
					cfg.TopicPrefs = make(domain.TopicPrefs)
					fmt.Fprintln(out, formatter.StyleYellow.Render("Topic preferences reset for the new catalog."))
				}
				cfg.ScheduleType = st
			}
			if cfg.WeeklyHours, err = hours.Apply(cfg.WeeklyHours); err != nil {
				return err
			}
			if clearEnd {
				cfg.EndDate = nil
			} else if end != "" {
				t, err := time.Parse(domain.DateLayout, end)
				if err != nil {
					return fmt.Errorf("invalid --end %q: use YYYY-MM-DD", end)
				}
				cfg.EndDate = &t
			}

			if err := a.Plans.SaveConfig(ctx, userID, cfg); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatConfig(cfg))
			return nil
		},
	}

	cmd.Flags().StringVar(&scheduleType, "type", "", "Schedule type: extensive or intensive")
	cmd.Flags().Var(hours, "hours", "Study hours per weekday: 7 values from Sunday, or day:hours pairs")
	cmd.Flags().StringVar(&end, "end", "", "Plan end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearEnd, "clear-end", false, "Remove the plan end date")
	cmd.MarkFlagsMutuallyExclusive("end", "clear-end")
	return cmd
}

func newConfigImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the configuration with a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Plans.ImportConfig(cmd.Context(), a.userID(cmd), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %s configuration: %d topic overrides, %d free days.\n",
				res.Config.ScheduleType, res.TopicOverrides, res.FreeDays)
			fmt.Fprintln(out, formatter.Dim("Run `cronograma generate` to build the plan."))
			return nil
		},
	}
}

func newConfigExportCmd(a *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := a.Plans.ExportConfig(cmd.Context(), a.userID(cmd))
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			data = append(data, '\n')

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}
