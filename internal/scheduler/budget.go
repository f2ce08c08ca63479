package scheduler

import (
	"math"

	"github.com/alexanderramin/cronograma/internal/catalog"
)

// WeeklyScale returns the factor applied to the target table for a week with
// the given available minutes.
func WeeklyScale(weeklyMinutes, baseline int) float64 {
	if weeklyMinutes <= 0 || baseline <= 0 {
		return 0
	}
	return float64(weeklyMinutes) / float64(baseline)
}

// WeeklyBudget computes the per-subject minute budget for one week. The
// budget is a fairness signal, not a cap: it may go negative as topics are
// scheduled.
func WeeklyBudget(subjects []string, weeklyMinutes, baseline int) map[string]int {
	scale := WeeklyScale(weeklyMinutes, baseline)
	budget := make(map[string]int, len(subjects))
	for _, s := range subjects {
		budget[s] = int(math.Floor(float64(catalog.WeeklyTarget(s)) * scale))
	}
	return budget
}
