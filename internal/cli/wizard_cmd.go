package cli

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/catalog"
	"github.com/alexanderramin/cronograma/internal/cli/formatter"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/wizard"
	"github.com/spf13/cobra"
)

const (
	defaultRevisionMinutes = 30
	defaultWritingMinutes  = 60
)

type subjectDifficulty struct {
	Subject string
	Level   string // "" keeps the per-topic values
}

// wizardAnswers collects raw form values. The forms bind to its fields and
// apply* functions turn them into controller calls.
type wizardAnswers struct {
	ScheduleType      string
	Topics            []int
	SubjectDifficulty []subjectDifficulty

	Hours    [7]string
	EndDate  string
	FreeDays string

	CompleteSim       bool
	CompleteSimDays   []int
	FragmentedSim     bool
	FragmentedSimDays []int

	Revision        bool
	RevisionDays    []int
	RevisionMinutes string
	Writing         bool
	WritingDays     []int
	WritingMinutes  string
}

// topicAnswers prefills the topic step from the controller.
func topicAnswers(c *wizard.Controller, ans *wizardAnswers) {
	cfg := c.Config()
	ans.ScheduleType = string(cfg.ScheduleType)
	ans.Topics = ans.Topics[:0]
	for _, t := range c.Topics() {
		if cfg.TopicPrefs.For(t.OriginalIndex).Included {
			ans.Topics = append(ans.Topics, t.OriginalIndex)
		}
	}
	ans.SubjectDifficulty = ans.SubjectDifficulty[:0]
	for _, s := range catalog.Subjects(c.Topics()) {
		ans.SubjectDifficulty = append(ans.SubjectDifficulty, subjectDifficulty{Subject: s})
	}
}

// applyTopicAnswers writes the topic step into the controller. The schedule
// type must already be set.
func applyTopicAnswers(c *wizard.Controller, ans *wizardAnswers) error {
	selected := make(map[int]bool, len(ans.Topics))
	for _, idx := range ans.Topics {
		selected[idx] = true
	}
	for _, t := range c.Topics() {
		if err := c.SetTopicIncluded(t.OriginalIndex, selected[t.OriginalIndex]); err != nil {
			return err
		}
	}
	for _, sd := range ans.SubjectDifficulty {
		if sd.Level == "" {
			continue
		}
		level, err := strconv.Atoi(sd.Level)
		if err != nil {
			return fmt.Errorf("difficulty for %s: %q is not a number", sd.Subject, sd.Level)
		}
		for _, t := range catalog.BySubject(c.Topics(), sd.Subject) {
			if err := c.SetDifficulty(t.OriginalIndex, level); err != nil {
				return err
			}
		}
	}
	return nil
}

func baselineDays(intens []domain.Intensification) []int {
	if len(intens) == 0 {
		return nil
	}
	days := make([]int, 0, len(intens[0].Days))
	for _, d := range intens[0].Days {
		days = append(days, int(d))
	}
	sort.Ints(days)
	return days
}

// simpleActivityAnswer derives the day set and a single per-day duration
// from a revision or writing config.
func simpleActivityAnswer(a domain.SimpleActivityConfig, fallback int) ([]int, string) {
	var days []int
	minutes := 0
	for d := 0; d < 7; d++ {
		if m := a.Durations[weekday(d)]; m > 0 {
			days = append(days, d)
			if minutes == 0 {
				minutes = m
			}
		}
	}
	if minutes == 0 {
		minutes = fallback
	}
	return days, strconv.Itoa(minutes)
}

// settingsAnswers prefills the settings step from the controller.
func settingsAnswers(c *wizard.Controller, ans *wizardAnswers) {
	cfg := c.Config()
	for d := 0; d < 7; d++ {
		ans.Hours[d] = ""
		if cfg.WeeklyHours[d] > 0 {
			ans.Hours[d] = formatter.FormatHours(cfg.WeeklyHours[d])
		}
	}
	ans.EndDate = ""
	if cfg.EndDate != nil {
		ans.EndDate = cfg.EndDate.Format(domain.DateLayout)
	}
	ans.FreeDays = strings.Join(cfg.FreeDays, ", ")

	ans.CompleteSim = cfg.Simulations.Complete.Enabled
	ans.CompleteSimDays = baselineDays(cfg.Simulations.Complete.Intensifications)
	ans.FragmentedSim = cfg.Simulations.Fragmented.Enabled
	ans.FragmentedSimDays = baselineDays(cfg.Simulations.Fragmented.Intensifications)

	ans.Revision = cfg.Revision.Enabled
	ans.RevisionDays, ans.RevisionMinutes = simpleActivityAnswer(cfg.Revision, defaultRevisionMinutes)
	ans.Writing = cfg.Writing.Enabled
	ans.WritingDays, ans.WritingMinutes = simpleActivityAnswer(cfg.Writing, defaultWritingMinutes)
}

// applySimulation replaces the baseline day set and keeps later
// intensifications and dates.
func applySimulation(s domain.SimulationSchedule, enabled bool, days []int, label string) (domain.SimulationSchedule, error) {
	s.Enabled = enabled
	if !enabled {
		return s, nil
	}
	if len(days) == 0 {
		return s, fmt.Errorf("pick at least one day for %s", label)
	}
	base := domain.Intensification{}
	if len(s.Intensifications) > 0 {
		base = s.Intensifications[0]
	}
	base.Days = toWeekdays(days)
	intens := append([]domain.Intensification{base}, tail(s.Intensifications)...)
	s.Intensifications = intens
	return s, nil
}

func tail(in []domain.Intensification) []domain.Intensification {
	if len(in) <= 1 {
		return nil
	}
	return in[1:]
}

func toWeekdays(days []int) []time.Weekday {
	sorted := slices.Clone(days)
	sort.Ints(sorted)
	sorted = slices.Compact(sorted)
	out := make([]time.Weekday, len(sorted))
	for i, d := range sorted {
		out[i] = weekday(d)
	}
	return out
}

// applySimpleActivity rebuilds the durations unless the answer matches the
// prefill, in which case per-day durations are kept as stored.
func applySimpleActivity(a domain.SimpleActivityConfig, enabled bool, days []int, minutes string, fallback int, label string) (domain.SimpleActivityConfig, error) {
	a.Enabled = enabled
	if !enabled {
		return a, nil
	}
	if len(days) == 0 {
		return a, fmt.Errorf("pick at least one day for %s", label)
	}
	prevDays, prevMinutes := simpleActivityAnswer(a, fallback)
	sorted := slices.Clone(days)
	sort.Ints(sorted)
	if slices.Equal(sorted, prevDays) && strings.TrimSpace(minutes) == prevMinutes {
		return a, nil
	}
	m := parsePositiveInt(minutes, fallback)
	a.Durations = make(domain.DayDurations, len(days))
	for _, d := range days {
		a.Durations[weekday(d)] = m
	}
	return a, nil
}

// applySettingsAnswers writes the settings step into the controller.
func applySettingsAnswers(c *wizard.Controller, ans *wizardAnswers) error {
	cfg := c.Config()

	var hours domain.WeeklyHours
	for d, raw := range ans.Hours {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		h, err := parseDayHours(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", formatter.WeekdayShort(weekday(d)), err)
		}
		hours[d] = h
	}
	if err := c.SetWeeklyHours(hours); err != nil {
		return err
	}

	var end *time.Time
	if s := strings.TrimSpace(ans.EndDate); s != "" {
		t, err := time.Parse(domain.DateLayout, s)
		if err != nil {
			return fmt.Errorf("end date %q: use YYYY-MM-DD", s)
		}
		end = &t
	}
	if err := c.SetEndDate(end); err != nil {
		return err
	}

	wanted := make(map[string]bool)
	for _, d := range splitList(ans.FreeDays) {
		wanted[d] = true
		if err := c.AddFreeDay(d); err != nil {
			return err
		}
	}
	for _, d := range cfg.FreeDays {
		if !wanted[d] {
			if err := c.RemoveFreeDay(d); err != nil {
				return err
			}
		}
	}

	sims := cfg.Simulations
	var err error
	if sims.Complete, err = applySimulation(sims.Complete, ans.CompleteSim, ans.CompleteSimDays, "complete mock exams"); err != nil {
		return err
	}
	if sims.Fragmented, err = applySimulation(sims.Fragmented, ans.FragmentedSim, ans.FragmentedSimDays, "fragmented mock exams"); err != nil {
		return err
	}
	if err := c.SetSimulations(sims); err != nil {
		return err
	}

	revision, err := applySimpleActivity(cfg.Revision, ans.Revision, ans.RevisionDays, ans.RevisionMinutes, defaultRevisionMinutes, "revision")
	if err != nil {
		return err
	}
	if err := c.SetRevision(revision); err != nil {
		return err
	}
	writing, err := applySimpleActivity(cfg.Writing, ans.Writing, ans.WritingDays, ans.WritingMinutes, defaultWritingMinutes, "essay writing")
	if err != nil {
		return err
	}
	return c.SetWriting(writing)
}

// startWizard opens a controller on the topic step, seeded with the stored
// configuration and the completed topics of the current plan.
func startWizard(cmd *cobra.Command, a *App, today time.Time) (*wizard.Controller, error) {
	ctx := cmd.Context()
	userID := a.userID(cmd)
	loadCompleted := func(st domain.ScheduleType) (domain.CompletedTopics, error) {
		return a.Plans.CompletedTopics(ctx, userID, st)
	}

	cfg, err := loadConfigOrDefault(ctx, a, userID)
	if err != nil {
		return nil, err
	}
	completed, err := loadCompleted(cfg.ScheduleType)
	if err != nil {
		return nil, err
	}

	c := wizard.Restore(&domain.PlanState{Config: *cfg, CompletedTopics: completed}, today)
	if err := c.Back(); err != nil {
		return nil, err
	}
	c.SetCompletedLoader(loadCompleted)
	return c, nil
}

func newWizardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Build the configuration step by step and generate a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("the wizard needs an interactive terminal; use `config import` instead")
			}
			today, err := a.today(cmd)
			if err != nil {
				return err
			}
			c, err := startWizard(cmd, a, today)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ans := &wizardAnswers{}

			topicAnswers(c, ans)
			if err := scheduleTypeForm(ans).Run(); err != nil {
				return err
			}
			if err := c.SetScheduleType(domain.ScheduleType(ans.ScheduleType)); err != nil {
				return err
			}
			topicAnswers(c, ans)
			if err := topicsForm(c.Topics(), ans).Run(); err != nil {
				return err
			}
			if err := applyTopicAnswers(c, ans); err != nil {
				return err
			}
			if err := c.Next(); err != nil {
				return err
			}

			settingsAnswers(c, ans)
			for {
				if err := settingsForm(ans).Run(); err != nil {
					return err
				}
				err := applySettingsAnswers(c, ans)
				if err == nil {
					err = c.Next()
				}
				if err == nil {
					break
				}
				fmt.Fprintln(out, formatter.StyleRed.Render(err.Error()))
			}

			if _, err := c.Generate(); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatPlanSummary(c.Snapshot(a.userID(cmd))))

			save := true
			if err := wizardConfirm("Save this configuration and plan?", &save).Run(); err != nil {
				return err
			}
			if !save {
				fmt.Fprintln(out, "Nothing saved.")
				return nil
			}
			return persistWizard(cmd, a, c, today)
		},
	}
}

// persistWizard stores the wizard's configuration and generates the plan
// through the service so it becomes the current revision.
func persistWizard(cmd *cobra.Command, a *App, c *wizard.Controller, today time.Time) error {
	ctx := cmd.Context()
	userID := a.userID(cmd)
	cfg := c.Config()
	if err := a.Plans.SaveConfig(ctx, userID, &cfg); err != nil {
		return err
	}
	req := app.NewGenerateRequest(userID)
	req.Today = &today
	plan, err := a.Plans.Generate(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved plan %s. Run `cronograma view` to start checking tasks.\n", formatter.TruncID(plan.ID))
	return nil
}
