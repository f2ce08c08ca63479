package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/repository"
)

// truncateDay drops the clock part of t, keeping the calendar date in UTC.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *planService) today(override *time.Time) time.Time {
	if override != nil {
		return truncateDay(*override)
	}
	return truncateDay(s.now())
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return time.Time{}, &app.PlanError{
			Code:    app.PlanErrInvalidDate,
			Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", date),
		}
	}
	return t, nil
}

// noConfig translates a missing configuration into a typed plan error.
func noConfig(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &app.PlanError{Code: app.PlanErrNoConfig, Message: "no configuration saved; run the wizard or import one"}
	}
	return fmt.Errorf("loading config: %w", err)
}

func noPlan(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &app.PlanError{Code: app.PlanErrNoPlan, Message: "no plan generated yet"}
	}
	return fmt.Errorf("loading plan: %w", err)
}

// newlyCompleted returns the indices in grown that are missing from before,
// sorted ascending.
func newlyCompleted(before, grown domain.CompletedTopics) []int {
	var out []int
	for idx, ok := range grown {
		if ok && !before[idx] {
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("config validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return &app.PlanError{Code: app.PlanErrInvalid, Message: msg}
}
