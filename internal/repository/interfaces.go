package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/cronograma/internal/domain"
)

// PlanRevision is a lightweight view of one stored generation run.
type PlanRevision struct {
	ID               string
	ScheduleType     domain.ScheduleType
	RemainingCount   int
	AllTopicsFit     bool
	HitSafetyCeiling bool
	GeneratedAt      time.Time
}

type PlanConfigRepo interface {
	Get(ctx context.Context, userID string) (*domain.PlanConfig, error)
	Upsert(ctx context.Context, userID string, cfg *domain.PlanConfig) error
	Delete(ctx context.Context, userID string) error
}

// PlanResultRepo stores generated plans as immutable revisions. Only the
// latest revision of a user is shown; older ones are kept as history.
type PlanResultRepo interface {
	Create(ctx context.Context, p *domain.PlanState) error
	Latest(ctx context.Context, userID string) (*domain.PlanState, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]PlanRevision, error)
	DeleteByUser(ctx context.Context, userID string) error
}

// CompletedTopicRepo tracks topics folded in by reconciliation. Indices are
// catalog positions, so the set is scoped by schedule type.
type CompletedTopicRepo interface {
	List(ctx context.Context, userID string, scheduleType domain.ScheduleType) (domain.CompletedTopics, error)
	Add(ctx context.Context, userID string, scheduleType domain.ScheduleType, indices []int) error
	Clear(ctx context.Context, userID string, scheduleType domain.ScheduleType) error
}

type CheckedTaskRepo interface {
	List(ctx context.Context, planID string) (map[string]bool, error)
	Set(ctx context.Context, planID, taskKey string, checked bool) error
	Clear(ctx context.Context, planID string) error
}
