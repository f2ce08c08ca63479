package cli

import (
	"context"
	"strconv"
	"testing"

	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstStudyArgs(t *testing.T, plan *domain.PlanState) (string, string) {
	t.Helper()
	key, _, ok := testutil.FirstStudyTask(plan)
	require.True(t, ok, "plan has no study task")
	date, idx, err := domain.ParseTaskKey(key)
	require.NoError(t, err)
	return date, strconv.Itoa(idx)
}

func TestGenerateCmd_WithoutConfig(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_CONFIG")
}

func TestGenerateCmd_PrintsSummary(t *testing.T) {
	app := testApp(t)
	seedConfig(t, app)

	output, err := executeCmd(t, app, "generate")
	require.NoError(t, err)
	assert.Contains(t, output, "CRONOGRAMA")
	assert.Contains(t, output, "All topics fit")
	assert.Contains(t, output, "Seg 19/10/2026")
}

func TestShowCmd_DefaultsToToday(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	output, err := executeCmd(t, app, "show", "--days", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Seg 19/10/2026")
}

func TestShowCmd_FromLaterDate(t *testing.T) {
	app := testApp(t)
	plan := seedPlan(t, app)
	require.Greater(t, len(plan.Result.Schedule), 1)
	second := plan.Result.Schedule[1].Date

	output, err := executeCmd(t, app, "show", "--from", second, "--days", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Ter 20/10/2026")
}

func TestShowCmd_PastTheEnd(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	output, err := executeCmd(t, app, "show", "--from", "2030-01-01")
	require.NoError(t, err)
	assert.Contains(t, output, "No plan days from 2030-01-01")
}

func TestShowCmd_InvalidFrom(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "show", "--from", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestShowCmd_WithoutPlan(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_PLAN")
}

func TestCheckCmd_MarksTask(t *testing.T) {
	app := testApp(t)
	plan := seedPlan(t, app)
	date, idx := firstStudyArgs(t, plan)

	output, err := executeCmd(t, app, "check", date, idx)
	require.NoError(t, err)
	assert.Contains(t, output, "Checked "+date+"#"+idx)

	current, err := app.Plans.Current(context.Background(), testUser)
	require.NoError(t, err)
	assert.True(t, current.Checked[date+"#"+idx])

	shown, err := executeCmd(t, app, "show", "--days", "1")
	require.NoError(t, err)
	assert.Contains(t, shown, "[x]")

	_, err = executeCmd(t, app, "uncheck", date, idx)
	require.NoError(t, err)
	current, err = app.Plans.Current(context.Background(), testUser)
	require.NoError(t, err)
	assert.Empty(t, current.Checked)
}

func TestCheckCmd_Errors(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"non-numeric index", []string{"check", "2026-10-19", "first"}, "invalid task index"},
		{"bad date", []string{"check", "19-10-2026", "0"}, "INVALID_DATE"},
		{"index out of range", []string{"check", "2026-10-19", "99"}, "INVALID_TASK"},
		{"date outside plan", []string{"check", "2031-01-01", "0"}, "INVALID_TASK"},
		{"missing args", []string{"check", "2026-10-19"}, "accepts 2 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, app, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRecalculateCmd_FoldsCheckedTopic(t *testing.T) {
	app := testApp(t)
	plan := seedPlan(t, app)
	date, idx := firstStudyArgs(t, plan)
	_, err := executeCmd(t, app, "check", date, idx)
	require.NoError(t, err)

	output, err := executeCmd(t, app, "recalculate")
	require.NoError(t, err)
	assert.Contains(t, output, "1 topics newly completed, 1 in total")

	output, err = executeCmd(t, app, "recalc")
	require.NoError(t, err)
	assert.Contains(t, output, "0 topics newly completed, 1 in total")
}

func TestResetCmd_RequiresConfirmation(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestResetCmd_ClearsProgress(t *testing.T) {
	app := testApp(t)
	plan := seedPlan(t, app)
	date, idx := firstStudyArgs(t, plan)
	_, err := executeCmd(t, app, "check", date, idx)
	require.NoError(t, err)
	_, err = executeCmd(t, app, "recalculate")
	require.NoError(t, err)

	output, err := executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Progress cleared")

	current, err := app.Plans.Current(context.Background(), testUser)
	require.NoError(t, err)
	assert.Empty(t, current.CompletedTopics)
}

func TestHistoryCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, output, "No plans generated yet")

	first := seedPlan(t, app)
	_, err = executeCmd(t, app, "generate")
	require.NoError(t, err)

	output, err = executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, output, "extensive")
	assert.Contains(t, output, first.ID[:8])

	output, err = executeCmd(t, app, "history", "--limit", "1")
	require.NoError(t, err)
	assert.NotContains(t, output, first.ID[:8])
}

func TestViewCmd_FallsBackToShowWhenNotInteractive(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	output, err := executeCmd(t, app, "view")
	require.NoError(t, err)
	assert.Contains(t, output, "Seg 19/10/2026")
}

func TestViewCmd_WithoutPlan(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "view")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_PLAN")
}
