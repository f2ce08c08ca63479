package service

import (
	"github.com/alexanderramin/cronograma/internal/app"
)

// PlanService is the full set of plan use cases offered to the CLI.
type PlanService interface {
	app.ConfigUseCase
	app.ImportConfigUseCase
	app.GenerateUseCase
	app.RecalculateUseCase
	app.ProgressUseCase
	app.FreeDayUseCase
}
