package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cronograma/internal/app"
	"github.com/alexanderramin/cronograma/internal/domain"
)

func weekday(d int) time.Weekday {
	return time.Weekday(((d % 7) + 7) % 7)
}

// isPlanError reports whether err carries the given plan error code.
func isPlanError(err error, code app.PlanErrorCode) bool {
	var pe *app.PlanError
	return errors.As(err, &pe) && pe.Code == code
}

// loadConfigOrDefault returns the stored config, or a fresh one when the
// user has none yet.
func loadConfigOrDefault(ctx context.Context, a *App, userID string) (*domain.PlanConfig, error) {
	cfg, err := a.Plans.LoadConfig(ctx, userID)
	if isPlanError(err, app.PlanErrNoConfig) {
		fresh := domain.NewPlanConfig()
		return &fresh, nil
	}
	return cfg, err
}

// daysFrom returns the plan days starting at from, at most n of them
// (n <= 0 means all).
func daysFrom(days []domain.StudyDay, from string, n int) []domain.StudyDay {
	start := len(days)
	for i, d := range days {
		if d.Date >= from {
			start = i
			break
		}
	}
	out := days[start:]
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func validateDateArg(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return nil
}
