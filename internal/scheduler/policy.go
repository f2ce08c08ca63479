package scheduler

import "github.com/alexanderramin/cronograma/internal/domain"

// ScoringWeights scale the subject scoring factors.
type ScoringWeights struct {
	Recency float64
	Budget  float64
}

func defaultWeights() ScoringWeights {
	return ScoringWeights{
		Recency: 10.0,
		Budget:  5.0,
	}
}

// Policy holds the tunable constants of the generator. The zero value is
// not usable; start from DefaultPolicy.
type Policy struct {
	WeekdaySubjectCap int
	WeekendSubjectCap int

	// Subjects that never appear on weekends or on complete mock exam days.
	WeekendBlocked []string
	ExamDayBlocked []string

	// Activation gates, as fractions of the total plan duration.
	LanguagesStartFrac           float64
	PhilosophyStartFrac          float64
	SociologyAfterPhilosophyDays int

	// DefaultPlanDays is the total plan duration used for activation gates
	// when no end date is set.
	DefaultPlanDays int

	// MaxDays bounds the simulation for unsatisfiable configurations.
	MaxDays int

	BaselineWeeklyMinutes int
	Weights               ScoringWeights
}

// DefaultPolicy returns the policy used by the application.
func DefaultPolicy() Policy {
	return Policy{
		WeekdaySubjectCap:            5,
		WeekendSubjectCap:            3,
		WeekendBlocked:               []string{domain.SubjectMath, domain.SubjectPhysics},
		ExamDayBlocked:               []string{domain.SubjectMath, domain.SubjectPhysics},
		LanguagesStartFrac:           0.10,
		PhilosophyStartFrac:          0.20,
		SociologyAfterPhilosophyDays: 30,
		DefaultPlanDays:              365,
		MaxDays:                      2000,
		BaselineWeeklyMinutes:        2160,
		Weights:                      defaultWeights(),
	}
}

func containsSubject(list []string, subject string) bool {
	for _, s := range list {
		if s == subject {
			return true
		}
	}
	return false
}
