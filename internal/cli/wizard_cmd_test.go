package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/cronograma/internal/catalog"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/testutil"
	"github.com/alexanderramin/cronograma/internal/wizard"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wizardTestCmd(t *testing.T, app *App) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := NewRootCmd(app)
	root.SetContext(context.Background())
	require.NoError(t, root.PersistentFlags().Set(flagUser, testUser))
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	return root, buf
}

// settingsStep returns a controller on the settings step with topics 0-2
// selected.
func settingsStep(t *testing.T) (*wizard.Controller, *wizardAnswers) {
	t.Helper()
	c := wizard.New(testutil.Monday)
	ans := &wizardAnswers{}
	topicAnswers(c, ans)
	ans.Topics = []int{0, 1, 2}
	require.NoError(t, applyTopicAnswers(c, ans))
	require.NoError(t, c.Next())
	settingsAnswers(c, ans)
	return c, ans
}

func TestTopicAnswers_Prefill(t *testing.T) {
	c := wizard.New(testutil.Monday)
	ans := &wizardAnswers{}

	topicAnswers(c, ans)

	assert.Equal(t, "extensive", ans.ScheduleType)
	assert.Len(t, ans.Topics, len(c.Topics()), "every topic starts included")
	subjects := catalog.Subjects(c.Topics())
	require.Len(t, ans.SubjectDifficulty, len(subjects))
	assert.Equal(t, subjects[0], ans.SubjectDifficulty[0].Subject)
	assert.Empty(t, ans.SubjectDifficulty[0].Level)
}

func TestApplyTopicAnswers(t *testing.T) {
	c := wizard.New(testutil.Monday)
	ans := &wizardAnswers{}
	topicAnswers(c, ans)
	ans.Topics = []int{0, 1}
	for i := range ans.SubjectDifficulty {
		if ans.SubjectDifficulty[i].Subject == c.Topics()[0].Subject {
			ans.SubjectDifficulty[i].Level = "4"
		}
	}

	require.NoError(t, applyTopicAnswers(c, ans))

	cfg := c.Config()
	assert.True(t, cfg.TopicPrefs.For(0).Included)
	assert.True(t, cfg.TopicPrefs.For(1).Included)
	assert.False(t, cfg.TopicPrefs.For(2).Included)
	assert.Equal(t, 4, cfg.TopicPrefs.For(0).Difficulty)
	last := c.Topics()[len(c.Topics())-1]
	if last.Subject != c.Topics()[0].Subject {
		assert.Equal(t, domain.DefaultDifficulty, cfg.TopicPrefs.For(last.OriginalIndex).Difficulty)
	}
}

func TestApplyTopicAnswers_BadLevel(t *testing.T) {
	c := wizard.New(testutil.Monday)
	ans := &wizardAnswers{}
	topicAnswers(c, ans)
	ans.SubjectDifficulty[0].Level = "hard"

	err := applyTopicAnswers(c, ans)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestApplySettingsAnswers(t *testing.T) {
	c, ans := settingsStep(t)
	ans.Hours = [7]string{"", "2", "2.5", "2", "2", "2", "4"}
	ans.EndDate = "2027-11-07"
	ans.FreeDays = "2026-12-25, 2026-11-02"
	ans.CompleteSim = true
	ans.CompleteSimDays = []int{6, 0, 6}
	ans.Writing = true
	ans.WritingDays = []int{3}
	ans.WritingMinutes = "45"

	require.NoError(t, applySettingsAnswers(c, ans))

	cfg := c.Config()
	assert.Equal(t, domain.WeeklyHours{0, 2, 2.5, 2, 2, 2, 4}, cfg.WeeklyHours)
	require.NotNil(t, cfg.EndDate)
	assert.Equal(t, "2027-11-07", cfg.EndDate.Format(domain.DateLayout))
	assert.Equal(t, []string{"2026-11-02", "2026-12-25"}, cfg.FreeDays)
	require.Len(t, cfg.Simulations.Complete.Intensifications, 1)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, cfg.Simulations.Complete.Intensifications[0].Days)
	assert.False(t, cfg.Simulations.Fragmented.Enabled)
	assert.Equal(t, domain.DayDurations{time.Wednesday: 45}, cfg.Writing.Durations)

	require.NoError(t, c.Next())
	result, err := c.Generate()
	require.NoError(t, err)
	assert.NotEmpty(t, result.Schedule)
}

func TestApplySettingsAnswers_RemovesDroppedFreeDays(t *testing.T) {
	c, ans := settingsStep(t)
	ans.Hours[1] = "2"
	ans.FreeDays = "2026-12-25 2026-11-02"
	require.NoError(t, applySettingsAnswers(c, ans))

	ans.FreeDays = "2026-11-02"
	require.NoError(t, applySettingsAnswers(c, ans))
	assert.Equal(t, []string{"2026-11-02"}, c.Config().FreeDays)
}

func TestApplySettingsAnswers_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*wizardAnswers)
		want   string
	}{
		{"hours out of range", func(a *wizardAnswers) { a.Hours[2] = "30" }, "Ter"},
		{"bad end date", func(a *wizardAnswers) { a.EndDate = "07/11/2027" }, "end date"},
		{"bad free day", func(a *wizardAnswers) { a.FreeDays = "christmas" }, "YYYY-MM-DD"},
		{"simulation without days", func(a *wizardAnswers) { a.FragmentedSim = true; a.FragmentedSimDays = nil }, "fragmented mock exams"},
		{"revision without days", func(a *wizardAnswers) { a.Revision = true; a.RevisionDays = nil }, "revision"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ans := settingsStep(t)
			tt.mutate(ans)
			err := applySettingsAnswers(c, ans)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplySimulation_KeepsLaterIntensifications(t *testing.T) {
	start := testutil.Monday.AddDate(0, 2, 0)
	sim := domain.SimulationSchedule{
		Enabled: true,
		Intensifications: []domain.Intensification{
			{Days: []time.Weekday{time.Saturday}},
			{StartDate: &start, Days: []time.Weekday{time.Wednesday, time.Saturday}},
		},
	}

	got, err := applySimulation(sim, true, []int{0}, "complete mock exams")
	require.NoError(t, err)
	require.Len(t, got.Intensifications, 2)
	assert.Equal(t, []time.Weekday{time.Sunday}, got.Intensifications[0].Days)
	assert.Equal(t, sim.Intensifications[1], got.Intensifications[1])

	off, err := applySimulation(sim, false, nil, "complete mock exams")
	require.NoError(t, err)
	assert.False(t, off.Enabled)
	assert.Len(t, off.Intensifications, 2, "disabling keeps the pattern for later")
}

func TestApplySimpleActivity_UnchangedKeepsPerDayDurations(t *testing.T) {
	stored := domain.SimpleActivityConfig{
		Enabled:   true,
		Durations: domain.DayDurations{time.Monday: 30, time.Saturday: 90},
	}
	days, minutes := simpleActivityAnswer(stored, defaultWritingMinutes)
	assert.Equal(t, []int{1, 6}, days)
	assert.Equal(t, "30", minutes)

	kept, err := applySimpleActivity(stored, true, days, minutes, defaultWritingMinutes, "essay writing")
	require.NoError(t, err)
	assert.Equal(t, stored.Durations, kept.Durations)

	changed, err := applySimpleActivity(stored, true, []int{1, 6}, "40", defaultWritingMinutes, "essay writing")
	require.NoError(t, err)
	assert.Equal(t, domain.DayDurations{time.Monday: 40, time.Saturday: 40}, changed.Durations)
}

func TestSettingsAnswers_Prefill(t *testing.T) {
	end := time.Date(2027, 11, 7, 0, 0, 0, 0, time.UTC)
	cfg := testutil.NewTestConfig(
		testutil.WithEndDate(end),
		testutil.WithFreeDays("2026-12-25"),
		testutil.WithCompleteSimulations(time.Saturday),
	)
	c := wizard.Restore(&domain.PlanState{Config: *cfg}, testutil.Monday)
	ans := &wizardAnswers{}

	settingsAnswers(c, ans)

	assert.Equal(t, [7]string{"", "3", "3", "3", "3", "3", ""}, ans.Hours)
	assert.Equal(t, "2027-11-07", ans.EndDate)
	assert.Equal(t, "2026-12-25", ans.FreeDays)
	assert.True(t, ans.CompleteSim)
	assert.Equal(t, []int{6}, ans.CompleteSimDays)
	assert.False(t, ans.Writing)
	assert.Equal(t, "60", ans.WritingMinutes)
	assert.Equal(t, "30", ans.RevisionMinutes)
}

func TestStartWizard_WithoutConfig(t *testing.T) {
	app := testApp(t)
	cmd, _ := wizardTestCmd(t, app)

	c, err := startWizard(cmd, app, testutil.Monday)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepTopics, c.Step())
	assert.Equal(t, domain.ScheduleExtensive, c.Config().ScheduleType)
}

func TestStartWizard_SeedsFromStoredState(t *testing.T) {
	app := testApp(t)
	plan := seedPlan(t, app)
	date, idx := firstStudyArgs(t, plan)
	_, err := executeCmd(t, app, "check", date, idx)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "recalculate")
	require.NoError(t, err)

	cmd, _ := wizardTestCmd(t, app)
	c, err := startWizard(cmd, app, testutil.Monday)
	require.NoError(t, err)

	assert.Equal(t, wizard.StepTopics, c.Step())
	assert.False(t, c.Config().TopicPrefs.For(10).Included, "stored preferences carry over")
	assert.Len(t, c.Completed(), 1)
}

func studyIndices(res domain.ScheduleResult) []int {
	var out []int
	for _, d := range res.Schedule {
		for _, task := range d.Tasks {
			if task.IsStudy() {
				out = append(out, *task.OriginalIndex)
			}
		}
	}
	return out
}

func TestStartWizard_SwitchingTypeKeepsStoredCompletion(t *testing.T) {
	app := testApp(t)
	plan := seedPlan(t, app, testutil.WithScheduleType(domain.ScheduleIntensive))
	date, idx := firstStudyArgs(t, plan)
	_, err := executeCmd(t, app, "check", date, idx)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "recalculate")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "config", "set", "--type", "extensive")
	require.NoError(t, err)

	cmd, _ := wizardTestCmd(t, app)
	c, err := startWizard(cmd, app, testutil.Monday)
	require.NoError(t, err)
	assert.Empty(t, c.Completed(), "nothing completed in the extensive catalog")

	require.NoError(t, c.SetScheduleType(domain.ScheduleIntensive))
	assert.Equal(t, domain.CompletedTopics{0: true}, c.Completed())

	ans := &wizardAnswers{}
	topicAnswers(c, ans)
	ans.Topics = []int{0, 1, 2, 3}
	require.NoError(t, applyTopicAnswers(c, ans))
	require.NoError(t, c.Next())
	settingsAnswers(c, ans)
	require.NoError(t, applySettingsAnswers(c, ans))
	require.NoError(t, c.Next())
	preview, err := c.Generate()
	require.NoError(t, err)
	assert.NotContains(t, studyIndices(preview), 0)

	require.NoError(t, persistWizard(cmd, app, c, testutil.Monday))
	stored, err := app.Plans.Current(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, studyIndices(preview), studyIndices(stored.Result), "saved plan matches the preview")
}

func TestPersistWizard_SavesAndGenerates(t *testing.T) {
	app := testApp(t)
	cmd, buf := wizardTestCmd(t, app)
	c, ans := settingsStep(t)
	ans.Hours[1] = "3"
	require.NoError(t, applySettingsAnswers(c, ans))
	require.NoError(t, c.Next())
	_, err := c.Generate()
	require.NoError(t, err)

	require.NoError(t, persistWizard(cmd, app, c, testutil.Monday))
	assert.Contains(t, buf.String(), "Saved plan")

	ctx := context.Background()
	cfg, err := app.Plans.LoadConfig(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyHours{0, 3}, cfg.WeeklyHours)

	plan, err := app.Plans.Current(ctx, testUser)
	require.NoError(t, err)
	preview, _ := c.Result()
	assert.Equal(t, len(preview.Schedule), len(plan.Result.Schedule), "stored plan matches the preview")
}

func TestWizardCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "wizard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2026-10-19"))
	assert.Error(t, validateOptionalDate("19/10/2026"))

	assert.NoError(t, validateDateList("2026-10-19, 2026-12-25"))
	assert.Error(t, validateDateList("2026-10-19, natal"))

	assert.NoError(t, validateHours(""))
	assert.NoError(t, validateHours("2.5"))
	assert.Error(t, validateHours("-1"))
	assert.Error(t, validateHours("25"))

	assert.NoError(t, validatePositiveInt(""))
	assert.NoError(t, validatePositiveInt("30"))
	assert.Error(t, validatePositiveInt("0"))

	assert.Equal(t, 45, parsePositiveInt("45", 60))
	assert.Equal(t, 60, parsePositiveInt("", 60))
}
