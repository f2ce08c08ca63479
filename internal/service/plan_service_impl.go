package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/db"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/logger"
	"github.com/alexanderramin/cronograma/internal/repository"
	"github.com/alexanderramin/cronograma/internal/scheduler"
	"github.com/google/uuid"
)

type planService struct {
	configs   repository.PlanConfigRepo
	plans     repository.PlanResultRepo
	completed repository.CompletedTopicRepo
	checks    repository.CheckedTaskRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

func NewPlanService(
	configs repository.PlanConfigRepo,
	plans repository.PlanResultRepo,
	completed repository.CompletedTopicRepo,
	checks repository.CheckedTaskRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		configs:   configs,
		plans:     plans,
		completed: completed,
		checks:    checks,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *planService) newPlanState(userID string, cfg domain.PlanConfig, result domain.ScheduleResult, completed domain.CompletedTopics) *domain.PlanState {
	if completed == nil {
		completed = make(domain.CompletedTopics)
	}
	return &domain.PlanState{
		ID:              uuid.New().String(),
		UserID:          userID,
		Config:          cfg,
		Result:          result,
		CompletedTopics: completed,
		Checked:         make(map[string]bool),
		GeneratedAt:     s.now(),
	}
}

func warnIfCeilingHit(userID string, result domain.ScheduleResult) {
	if !result.HitSafetyCeiling {
		return
	}
	logger.Warn("generation stopped at the day ceiling",
		"user", userID,
		"days", len(result.Schedule),
		"remaining_topics", result.RemainingTopicsCount)
}

func (s *planService) Generate(ctx context.Context, req app.GenerateRequest) (plan *domain.PlanState, err error) {
	fields := map[string]any{"user": req.UserID}
	defer s.observe(ctx, "generate", fields, &err)()

	cfg, err := s.configs.Get(ctx, req.UserID)
	if err != nil {
		return nil, noConfig(err)
	}
	completed, err := s.completed.List(ctx, req.UserID, cfg.ScheduleType)
	if err != nil {
		return nil, err
	}

	result := scheduler.Generate(scheduler.NewInput(*cfg, completed, s.today(req.Today)))
	warnIfCeilingHit(req.UserID, result)

	plan = s.newPlanState(req.UserID, *cfg, result, completed)
	if err = s.plans.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}

	fields["schedule_type"] = string(cfg.ScheduleType)
	fields["days"] = len(result.Schedule)
	fields["remaining_topics"] = result.RemainingTopicsCount
	return plan, nil
}

func (s *planService) Current(ctx context.Context, userID string) (*domain.PlanState, error) {
	plan, err := s.plans.Latest(ctx, userID)
	if err != nil {
		return nil, noPlan(err)
	}
	if plan.Checked, err = s.checks.List(ctx, plan.ID); err != nil {
		return nil, err
	}
	if plan.CompletedTopics, err = s.completed.List(ctx, userID, plan.Config.ScheduleType); err != nil {
		return nil, err
	}
	return plan, nil
}

// SetChecked marks or unmarks one task of the current plan. The task must
// exist; free days have no tasks to check.
func (s *planService) SetChecked(ctx context.Context, req app.CheckRequest) (err error) {
	fields := map[string]any{"user": req.UserID, "date": req.Date, "index": req.Index, "checked": req.Checked}
	defer s.observe(ctx, "set-checked", fields, &err)()

	if _, err = parseDate(req.Date); err != nil {
		return err
	}
	plan, err := s.plans.Latest(ctx, req.UserID)
	if err != nil {
		return noPlan(err)
	}

	day, ok := plan.Result.FindDay(req.Date)
	if !ok {
		return &app.PlanError{Code: app.PlanErrInvalidTask, Message: fmt.Sprintf("%s is not part of the plan", req.Date)}
	}
	if day.IsFree() {
		return &app.PlanError{Code: app.PlanErrInvalidTask, Message: fmt.Sprintf("%s is a free day", req.Date)}
	}
	if req.Index < 0 || req.Index >= len(day.Tasks) {
		return &app.PlanError{
			Code:    app.PlanErrInvalidTask,
			Message: fmt.Sprintf("%s has %d tasks, no task %d", req.Date, len(day.Tasks), req.Index),
		}
	}

	return s.checks.Set(ctx, plan.ID, domain.TaskKey(req.Date, req.Index), req.Checked)
}

// Recalculate folds the checked study tasks of the current plan into the
// completed set and stores a regenerated plan. Both writes share one
// transaction.
func (s *planService) Recalculate(ctx context.Context, req app.RecalculateRequest) (out *app.RecalculateResult, err error) {
	fields := map[string]any{"user": req.UserID}
	defer s.observe(ctx, "recalculate", fields, &err)()

	today := s.today(req.Today)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txConfigs := repository.NewSQLitePlanConfigRepo(tx)
		txPlans := repository.NewSQLitePlanResultRepo(tx)
		txCompleted := repository.NewSQLiteCompletedTopicRepo(tx)
		txChecks := repository.NewSQLiteCheckedTaskRepo(tx)

		prev, err := txPlans.Latest(ctx, req.UserID)
		if err != nil {
			return noPlan(err)
		}
		if prev.Checked, err = txChecks.List(ctx, prev.ID); err != nil {
			return err
		}

		// Regenerate from the stored configuration so edits made since the
		// last run apply; fall back to the plan's own snapshot.
		cfg, err := txConfigs.Get(ctx, req.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			cfg = &prev.Config
		} else if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		prevType := prev.Config.ScheduleType
		before, err := txCompleted.List(ctx, req.UserID, prevType)
		if err != nil {
			return err
		}

		var (
			result    domain.ScheduleResult
			grown     domain.CompletedTopics
			completed domain.CompletedTopics
		)
		if cfg.ScheduleType == prevType {
			result, grown = scheduler.Recalculate(scheduler.NewInput(*cfg, before, today), prev.Result, prev.CheckedKeys())
			completed = grown
		} else {
			grown = scheduler.Reconcile(prev.Result.Schedule, prev.CheckedKeys(), before)
		}

		added := newlyCompleted(before, grown)
		if err := txCompleted.Add(ctx, req.UserID, prevType, added); err != nil {
			return err
		}

		if cfg.ScheduleType != prevType {
			// Completed topics are catalog positions; the other catalog keeps
			// its own set.
			if completed, err = txCompleted.List(ctx, req.UserID, cfg.ScheduleType); err != nil {
				return err
			}
			result = scheduler.Generate(scheduler.NewInput(*cfg, completed, today))
		}
		warnIfCeilingHit(req.UserID, result)

		plan := s.newPlanState(req.UserID, *cfg, result, completed)
		if err := txPlans.Create(ctx, plan); err != nil {
			return fmt.Errorf("storing plan: %w", err)
		}

		fields["newly_completed"] = len(added)
		fields["remaining_topics"] = result.RemainingTopicsCount
		out = &app.RecalculateResult{Plan: plan, NewlyCompleted: added, TotalCompleted: len(completed)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ResetProgress forgets every completed topic of the user, for both
// catalogs, and the checks of the current plan.
func (s *planService) ResetProgress(ctx context.Context, userID string) (err error) {
	defer s.observe(ctx, "reset-progress", map[string]any{"user": userID}, &err)()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txCompleted := repository.NewSQLiteCompletedTopicRepo(tx)
		for _, st := range []domain.ScheduleType{domain.ScheduleExtensive, domain.ScheduleIntensive} {
			if err := txCompleted.Clear(ctx, userID, st); err != nil {
				return err
			}
		}

		plan, err := repository.NewSQLitePlanResultRepo(tx).Latest(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading plan: %w", err)
		}
		return repository.NewSQLiteCheckedTaskRepo(tx).Clear(ctx, plan.ID)
	})
}

// CompletedTopics returns the topics folded into the given catalog so far.
func (s *planService) CompletedTopics(ctx context.Context, userID string, scheduleType domain.ScheduleType) (domain.CompletedTopics, error) {
	completed, err := s.completed.List(ctx, userID, scheduleType)
	if err != nil {
		return nil, fmt.Errorf("loading completed topics: %w", err)
	}
	return completed, nil
}

func (s *planService) History(ctx context.Context, userID string, limit int) ([]repository.PlanRevision, error) {
	return s.plans.ListByUser(ctx, userID, limit)
}
