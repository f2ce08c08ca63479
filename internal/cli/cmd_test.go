package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/repository"
	"github.com/alexanderramin/cronograma/internal/service"
	"github.com/alexanderramin/cronograma/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "ana"

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	svc := service.NewPlanService(
		repository.NewSQLitePlanConfigRepo(database),
		repository.NewSQLitePlanResultRepo(database),
		repository.NewSQLiteCompletedTopicRepo(database),
		repository.NewSQLiteCheckedTaskRepo(database),
		testutil.NewTestUoW(database),
	)
	return &App{
		Plans:         svc,
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command as testUser on testutil.Monday and
// captures stdout/stderr. Flags in args override those defaults.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	defaults := []string{"--user=" + testUser, "--today=" + testutil.Monday.Format(domain.DateLayout)}
	root.SetArgs(append(defaults, args...))
	err := root.Execute()
	return buf.String(), err
}

// seedConfig stores a small extensive config for testUser.
func seedConfig(t *testing.T, app *App, opts ...testutil.ConfigOption) *domain.PlanConfig {
	t.Helper()
	opts = append([]testutil.ConfigOption{testutil.WithOnlyTopics(0, 1, 2, 3)}, opts...)
	cfg := testutil.NewTestConfig(opts...)
	require.NoError(t, app.Plans.SaveConfig(context.Background(), testUser, cfg))
	return cfg
}

// seedPlan stores a config and generates a plan through the CLI.
func seedPlan(t *testing.T, app *App, opts ...testutil.ConfigOption) *domain.PlanState {
	t.Helper()
	seedConfig(t, app, opts...)
	_, err := executeCmd(t, app, "generate")
	require.NoError(t, err)
	plan, err := app.Plans.Current(context.Background(), testUser)
	require.NoError(t, err)
	return plan
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "cronograma")
	assert.Contains(t, output, "recalculate")
}

func TestRootCmd_InvalidToday(t *testing.T) {
	app := testApp(t)
	root := NewRootCmd(app)
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"generate", "--today", "19/10/2026"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--today")
}

func TestRootCmd_UserFlagIsolatesProfiles(t *testing.T) {
	app := testApp(t)
	seedPlan(t, app)

	_, err := executeCmd(t, app, "show", "--user", "bruno")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NO_PLAN")
}

func TestApp_UserIDDefaultsWhenBlank(t *testing.T) {
	app := testApp(t)
	root := NewRootCmd(app)
	require.NoError(t, root.PersistentFlags().Set(flagUser, "  "))

	assert.Equal(t, "default", app.userID(root))
}
