package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSaveConfig_RejectsUnknownScheduleType(t *testing.T) {
	env := newTestEnv(t)
	cfg := testutil.NewTestConfig(testutil.WithScheduleType("weekly"))

	err := env.svc.SaveConfig(context.Background(), testUser, cfg)
	requirePlanError(t, err, app.PlanErrInvalid)
}

func TestSaveAndLoadConfig(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.LoadConfig(ctx, testUser)
	requirePlanError(t, err, app.PlanErrNoConfig)

	cfg := testutil.NewTestConfig(testutil.WithDifficulty(3, 4))
	require.NoError(t, env.svc.SaveConfig(ctx, testUser, cfg))

	loaded, err := env.svc.LoadConfig(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, cfg.WeeklyHours, loaded.WeeklyHours)
	assert.Equal(t, 4, loaded.TopicPrefs.For(3).Difficulty)
}

func TestImportConfig_FromFile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	path := writeConfigFile(t, `{
		"schedule_type": "intensive",
		"weekly_hours": {"1": 2, "2": 2, "3": 2, "4": 2, "5": 2},
		"topics": [{"index": 0, "included": false}, {"index": 1, "difficulty": 4}],
		"writing": {"enabled": true, "durations": {"6": 60}},
		"free_days": ["2026-12-25"]
	}`)

	res, err := env.svc.ImportConfig(ctx, testUser, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.TopicOverrides)
	assert.Equal(t, 1, res.FreeDays)

	cfg, err := env.svc.LoadConfig(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduleIntensive, cfg.ScheduleType)
	assert.False(t, cfg.TopicPrefs.For(0).Included)
	assert.Equal(t, 60, cfg.Writing.Durations[6])
}

func TestImportConfig_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	path := writeConfigFile(t, `{
		"schedule_type": "weekly",
		"weekly_hours": {"9": 30}
	}`)

	_, err := env.svc.ImportConfig(ctx, testUser, path)
	requirePlanError(t, err, app.PlanErrInvalid)
	assert.Contains(t, err.Error(), "schedule_type")
	assert.Contains(t, err.Error(), "weekly_hours")

	_, err = env.svc.LoadConfig(ctx, testUser)
	requirePlanError(t, err, app.PlanErrNoConfig)
}

func TestImportConfig_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.ImportConfig(context.Background(), testUser, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestExportConfig_ReimportsUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cfg := testutil.NewTestConfig(
		testutil.WithDifficulty(5, 0),
		testutil.WithFreeDays("2027-01-01"),
		testutil.WithWriting(domain.DayDurations{6: 45}),
	)
	require.NoError(t, env.svc.SaveConfig(ctx, testUser, cfg))

	schema, err := env.svc.ExportConfig(ctx, testUser)
	require.NoError(t, err)

	_, err = env.svc.ImportConfigFromSchema(ctx, "bruno", schema)
	require.NoError(t, err)

	original, err := env.svc.LoadConfig(ctx, testUser)
	require.NoError(t, err)
	copied, err := env.svc.LoadConfig(ctx, "bruno")
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestFreeDays_AddRemoveList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	days, err := env.svc.ListFreeDays(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, days)

	requirePlanError(t, env.svc.AddFreeDay(ctx, testUser, "2026-12-25"), app.PlanErrNoConfig)

	require.NoError(t, env.svc.SaveConfig(ctx, testUser, testutil.NewTestConfig()))
	require.NoError(t, env.svc.AddFreeDay(ctx, testUser, "2026-12-25"))
	require.NoError(t, env.svc.AddFreeDay(ctx, testUser, "2026-11-02"))
	require.NoError(t, env.svc.AddFreeDay(ctx, testUser, "2026-12-25"), "adding twice is a no-op")

	days, err = env.svc.ListFreeDays(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-11-02", "2026-12-25"}, days)

	require.NoError(t, env.svc.RemoveFreeDay(ctx, testUser, "2026-11-02"))
	requirePlanError(t, env.svc.RemoveFreeDay(ctx, testUser, "2026-11-02"), app.PlanErrInvalidDate)
	requirePlanError(t, env.svc.AddFreeDay(ctx, testUser, "Christmas"), app.PlanErrInvalidDate)

	days, err = env.svc.ListFreeDays(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-12-25"}, days)
}
