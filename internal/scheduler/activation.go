package scheduler

import (
	"time"

	"github.com/alexanderramin/cronograma/internal/domain"
)

// dateOnly truncates t to midnight UTC of its calendar day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ResolveIntensification returns the pattern in force on date. The list is
// scanned newest to oldest and the first entry whose start date has been
// reached wins; entry 0 applies unconditionally. Patterns never merge.
func ResolveIntensification(list []domain.Intensification, date time.Time) (domain.Intensification, bool) {
	day := dateOnly(date)
	for i := len(list) - 1; i >= 0; i-- {
		if i == 0 {
			return list[0], true
		}
		start := list[i].StartDate
		if start != nil && !dateOnly(*start).After(day) {
			return list[i], true
		}
	}
	return domain.Intensification{}, false
}

func inWindow(start, end *time.Time, date time.Time) bool {
	day := dateOnly(date)
	if start != nil && day.Before(dateOnly(*start)) {
		return false
	}
	if end != nil && day.After(dateOnly(*end)) {
		return false
	}
	return true
}

// SimulationActive reports whether a mock exam of this kind falls on date.
// Only fragmented exams honor an end date.
func SimulationActive(s domain.SimulationSchedule, date time.Time, fragmented bool) bool {
	if !s.Enabled {
		return false
	}
	var end *time.Time
	if fragmented {
		end = s.EndDate
	}
	if !inWindow(s.StartDate, end, date) {
		return false
	}
	pattern, ok := ResolveIntensification(s.Intensifications, date)
	return ok && pattern.HasDay(date.Weekday())
}

// FixedActivityMinutes returns the minutes of a correction or gap-filling
// activity on date, or 0 when it is not active.
func FixedActivityMinutes(c domain.FixedActivityConfig, date time.Time, fragmented bool) int {
	if !c.Enabled {
		return 0
	}
	var end *time.Time
	if fragmented {
		end = c.EndDate
	}
	if !inWindow(c.StartDate, end, date) {
		return 0
	}
	pattern, ok := ResolveIntensification(c.Intensifications, date)
	if !ok || !pattern.HasDay(date.Weekday()) {
		return 0
	}
	minutes := pattern.Durations[date.Weekday()]
	if minutes < 0 {
		return 0
	}
	return minutes
}

// SimpleActivityMinutes returns the minutes of revision or essay practice
// on date.
func SimpleActivityMinutes(c domain.SimpleActivityConfig, date time.Time) int {
	if !c.Enabled {
		return 0
	}
	minutes := c.Durations[date.Weekday()]
	if minutes < 0 {
		return 0
	}
	return minutes
}

// ActivationDates computes the first day each gated subject may be studied.
// Offsets are fractions of the total plan duration counted from start.
func ActivationDates(start time.Time, end *time.Time, p Policy) map[string]time.Time {
	start = dateOnly(start)
	totalDays := p.DefaultPlanDays
	if end != nil {
		totalDays = int(dateOnly(*end).Sub(start).Hours() / 24)
		if totalDays < 0 {
			totalDays = 0
		}
	}
	languages := start.AddDate(0, 0, int(float64(totalDays)*p.LanguagesStartFrac))
	philosophy := start.AddDate(0, 0, int(float64(totalDays)*p.PhilosophyStartFrac))
	sociology := philosophy.AddDate(0, 0, p.SociologyAfterPhilosophyDays)
	return map[string]time.Time{
		domain.SubjectLanguages:  languages,
		domain.SubjectPhilosophy: philosophy,
		domain.SubjectSociology:  sociology,
	}
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
