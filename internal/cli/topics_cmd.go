package cli

import (
	"fmt"

	"github.com/alexanderramin/cronograma/internal/catalog"
	"github.com/alexanderramin/cronograma/internal/cli/formatter"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/spf13/cobra"
)

func newTopicsCmd(a *App) *cobra.Command {
	var scheduleType, subject string

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List the topic catalog with your preferences",
		Long: `List the topic catalog with your preferences.

The # column is the topic index used by "topics" entries of a config file.
Without --type the catalog of the stored configuration is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID := a.userID(cmd)

			cfg, err := loadConfigOrDefault(ctx, a, userID)
			if err != nil {
				return err
			}
			st := cfg.ScheduleType
			if scheduleType != "" {
				if !domain.ValidScheduleTypes[scheduleType] {
					return fmt.Errorf("unknown schedule type %q (use extensive or intensive)", scheduleType)
				}
				st = domain.ScheduleType(scheduleType)
			}

			prefs := domain.TopicPrefs{}
			if st == cfg.ScheduleType {
				prefs = cfg.TopicPrefs
			}
			completed, err := a.Plans.CompletedTopics(ctx, userID, st)
			if err != nil {
				return err
			}

			topics := catalog.Topics(st)
			if subject != "" {
				topics = catalog.BySubject(topics, subject)
				if len(topics) == 0 {
					return fmt.Errorf("no %s topics for subject %q; subjects: %v", st, subject, catalog.Subjects(catalog.Topics(st)))
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(fmt.Sprintf("%s catalog", st)))
			fmt.Fprint(out, formatter.FormatTopics(topics, prefs, completed))
			fmt.Fprintf(out, "\n%d topics\n", len(topics))
			return nil
		},
	}

	cmd.Flags().StringVar(&scheduleType, "type", "", "Catalog to list: extensive or intensive")
	cmd.Flags().StringVar(&subject, "subject", "", "Only list topics of this subject")
	return cmd
}
