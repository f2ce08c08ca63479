package catalog

import "github.com/alexanderramin/cronograma/internal/domain"

var (
	humanitiesDurations    = [5]int{50, 70, 90, 120, 150}
	exactSciencesDurations = [5]int{70, 90, 120, 160, 210}
)

var humanitiesSubjects = map[string]bool{
	domain.SubjectHistory:    true,
	domain.SubjectGeography:  true,
	domain.SubjectPhilosophy: true,
	domain.SubjectSociology:  true,
	domain.SubjectLanguages:  true,
}

// Category returns the duration category of a subject. Anything that is not
// a humanities subject is timed as an exact science.
func Category(subject string) domain.SubjectCategory {
	if humanitiesSubjects[subject] {
		return domain.CategoryHumanities
	}
	return domain.CategoryExactSciences
}

// TopicDuration returns the study minutes for a topic of the given subject
// at the given difficulty. Difficulty is clamped to [0, 4].
func TopicDuration(subject string, difficulty int) int {
	d := domain.ClampInt(difficulty, domain.MinDifficulty, domain.MaxDifficulty)
	if Category(subject) == domain.CategoryHumanities {
		return humanitiesDurations[d]
	}
	return exactSciencesDurations[d]
}

// BaselineWeeklyMinutes is the weekly minute total the target table is
// expressed against.
const BaselineWeeklyMinutes = 2160

// DefaultWeeklyTarget applies to subjects missing from the target table.
const DefaultWeeklyTarget = 120

var weeklyTargets = map[string]int{
	domain.SubjectMath:       420,
	domain.SubjectPhysics:    240,
	domain.SubjectChemistry:  240,
	domain.SubjectBiology:    240,
	domain.SubjectHistory:    240,
	domain.SubjectGeography:  210,
	domain.SubjectPhilosophy: 120,
	domain.SubjectSociology:  120,
	domain.SubjectLanguages:  330,
}

// WeeklyTarget returns the ideal weekly minutes for a subject at the
// baseline weekly total.
func WeeklyTarget(subject string) int {
	if v, ok := weeklyTargets[subject]; ok {
		return v
	}
	return DefaultWeeklyTarget
}
