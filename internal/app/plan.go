package app

import (
	"time"

	"github.com/alexanderramin/cronograma/internal/domain"
)

// GenerateRequest asks for a fresh plan built from the stored configuration.
// Today defaults to the current UTC date.
type GenerateRequest struct {
	UserID string
	Today  *time.Time
}

func NewGenerateRequest(userID string) GenerateRequest {
	return GenerateRequest{UserID: userID}
}

// RecalculateRequest folds the checked study tasks of the current plan into
// the completed set and regenerates from Today.
type RecalculateRequest struct {
	UserID string
	Today  *time.Time
}

func NewRecalculateRequest(userID string) RecalculateRequest {
	return RecalculateRequest{UserID: userID}
}

type RecalculateResult struct {
	Plan           *domain.PlanState
	NewlyCompleted []int
	TotalCompleted int
}

type CheckRequest struct {
	UserID  string
	Date    string
	Index   int
	Checked bool
}

type ImportResult struct {
	Config         *domain.PlanConfig
	TopicOverrides int
	FreeDays       int
}

type PlanErrorCode string

const (
	PlanErrNoConfig    PlanErrorCode = "NO_CONFIG"
	PlanErrNoPlan      PlanErrorCode = "NO_PLAN"
	PlanErrInvalidTask PlanErrorCode = "INVALID_TASK"
	PlanErrInvalidDate PlanErrorCode = "INVALID_DATE"
	PlanErrInvalid     PlanErrorCode = "INVALID_CONFIG"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
