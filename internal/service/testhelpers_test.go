package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/db"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/repository"
	"github.com/alexanderramin/cronograma/internal/testutil"
	"github.com/stretchr/testify/require"
)

const testUser = "ana"

type testEnv struct {
	db        *sql.DB
	configs   repository.PlanConfigRepo
	plans     repository.PlanResultRepo
	completed repository.CompletedTopicRepo
	checks    repository.CheckedTaskRepo
	svc       PlanService
}

func newTestEnv(t *testing.T, observers ...UseCaseObserver) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:        database,
		configs:   repository.NewSQLitePlanConfigRepo(database),
		plans:     repository.NewSQLitePlanResultRepo(database),
		completed: repository.NewSQLiteCompletedTopicRepo(database),
		checks:    repository.NewSQLiteCheckedTaskRepo(database),
	}
	env.svc = env.serviceWith(testutil.NewTestUoW(database), observers...)
	return env
}

func (e *testEnv) serviceWith(uow db.UnitOfWork, observers ...UseCaseObserver) PlanService {
	return NewPlanService(e.configs, e.plans, e.completed, e.checks, uow, observers...)
}

func monday() *time.Time {
	d := testutil.Monday
	return &d
}

func generateReq(userID string) app.GenerateRequest {
	req := app.NewGenerateRequest(userID)
	req.Today = monday()
	return req
}

func recalcReq(userID string) app.RecalculateRequest {
	req := app.NewRecalculateRequest(userID)
	req.Today = monday()
	return req
}

// saveAndGenerate stores cfg for the test user and generates a plan from it.
func saveAndGenerate(t *testing.T, env *testEnv, cfg *domain.PlanConfig) *domain.PlanState {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, env.svc.SaveConfig(ctx, testUser, cfg))
	plan, err := env.svc.Generate(ctx, generateReq(testUser))
	require.NoError(t, err)
	return plan
}

// checkFirstStudyTask checks the first study task of plan and returns its
// topic index.
func checkFirstStudyTask(t *testing.T, env *testEnv, plan *domain.PlanState) int {
	t.Helper()
	key, topicIdx, ok := testutil.FirstStudyTask(plan)
	require.True(t, ok, "plan has no study task")
	date, idx, err := domain.ParseTaskKey(key)
	require.NoError(t, err)
	require.NoError(t, env.svc.SetChecked(context.Background(), app.CheckRequest{
		UserID: testUser, Date: date, Index: idx, Checked: true,
	}))
	return topicIdx
}

func requirePlanError(t *testing.T, err error, code app.PlanErrorCode) {
	t.Helper()
	require.Error(t, err)
	var pe *app.PlanError
	require.True(t, errors.As(err, &pe), "expected PlanError, got %T: %v", err, err)
	require.Equal(t, code, pe.Code, pe.Message)
}

func scheduledTopics(result domain.ScheduleResult) map[int]bool {
	out := make(map[int]bool)
	for _, day := range result.Schedule {
		for _, task := range day.Tasks {
			if task.IsStudy() {
				out[*task.OriginalIndex] = true
			}
		}
	}
	return out
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	names := make([]string, 0, len(o.events))
	for _, e := range o.events {
		names = append(names, e.Name)
	}
	return names
}
