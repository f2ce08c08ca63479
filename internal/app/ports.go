package app

import (
	"context"

	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/importer"
	"github.com/alexanderramin/cronograma/internal/repository"
)

type ConfigUseCase interface {
	SaveConfig(ctx context.Context, userID string, cfg *domain.PlanConfig) error
	LoadConfig(ctx context.Context, userID string) (*domain.PlanConfig, error)
}

type ImportConfigUseCase interface {
	ImportConfig(ctx context.Context, userID string, filePath string) (*ImportResult, error)
	ImportConfigFromSchema(ctx context.Context, userID string, schema *importer.ConfigSchema) (*ImportResult, error)
	ExportConfig(ctx context.Context, userID string) (*importer.ConfigSchema, error)
}

type GenerateUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*domain.PlanState, error)
}

type RecalculateUseCase interface {
	Recalculate(ctx context.Context, req RecalculateRequest) (*RecalculateResult, error)
}

type ProgressUseCase interface {
	Current(ctx context.Context, userID string) (*domain.PlanState, error)
	SetChecked(ctx context.Context, req CheckRequest) error
	ResetProgress(ctx context.Context, userID string) error
	History(ctx context.Context, userID string, limit int) ([]repository.PlanRevision, error)
	CompletedTopics(ctx context.Context, userID string, scheduleType domain.ScheduleType) (domain.CompletedTopics, error)
}

type FreeDayUseCase interface {
	AddFreeDay(ctx context.Context, userID, date string) error
	RemoveFreeDay(ctx context.Context, userID, date string) error
	ListFreeDays(ctx context.Context, userID string) ([]string, error)
}
