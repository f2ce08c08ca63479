package domain

import "time"

// WeeklyHours holds available study hours per weekday, Sunday = 0.
type WeeklyHours [7]float64

// DayMinutes returns the available minutes for the given weekday.
func (w WeeklyHours) DayMinutes(day time.Weekday) int {
	h := w[int(day)]
	if h <= 0 {
		return 0
	}
	return int(h*60 + 0.5)
}

// TotalMinutes returns the sum of available minutes across the week.
func (w WeeklyHours) TotalMinutes() int {
	total := 0
	for d := time.Sunday; d <= time.Saturday; d++ {
		total += w.DayMinutes(d)
	}
	return total
}

// DayDurations maps weekday (0-6) to minutes.
type DayDurations map[time.Weekday]int

// Intensification is one frequency pattern of a recurring activity. A later
// entry replaces every earlier one once its StartDate has been reached.
// The first entry is the baseline and is never gated.
type Intensification struct {
	StartDate *time.Time     `json:"start_date,omitempty"`
	Days      []time.Weekday `json:"days"`
	Durations DayDurations   `json:"durations,omitempty"`
}

// HasDay reports whether the pattern includes the weekday.
func (i Intensification) HasDay(day time.Weekday) bool {
	for _, d := range i.Days {
		if d == day {
			return true
		}
	}
	return false
}

// FixedActivityConfig configures correction and gap-filling activities.
// EndDate is only meaningful for fragmented variants.
type FixedActivityConfig struct {
	Enabled          bool              `json:"enabled"`
	StartDate        *time.Time        `json:"start_date,omitempty"`
	EndDate          *time.Time        `json:"end_date,omitempty"`
	Intensifications []Intensification `json:"intensifications"`
}

// SimulationSchedule configures one kind of mock exam. Duration is fixed per
// kind, so intensifications only contribute their day sets.
type SimulationSchedule struct {
	Enabled          bool              `json:"enabled"`
	StartDate        *time.Time        `json:"start_date,omitempty"`
	EndDate          *time.Time        `json:"end_date,omitempty"`
	Intensifications []Intensification `json:"intensifications"`
}

// SimulationConfig holds the complete and fragmented mock exam schedules.
type SimulationConfig struct {
	Complete   SimulationSchedule `json:"complete"`
	Fragmented SimulationSchedule `json:"fragmented"`
}

const (
	CompleteSimulationMin   = 330
	FragmentedSimulationMin = 150
)

// SimpleActivityConfig configures revision and essay practice: no date
// gating, always active when enabled.
type SimpleActivityConfig struct {
	Enabled   bool         `json:"enabled"`
	Durations DayDurations `json:"durations,omitempty"`
}

// PlanConfig is the full user-supplied configuration for a generation run.
type PlanConfig struct {
	ScheduleType         ScheduleType         `json:"schedule_type"`
	TopicPrefs           TopicPrefs           `json:"topic_prefs,omitempty"`
	EndDate              *time.Time           `json:"end_date,omitempty"`
	WeeklyHours          WeeklyHours          `json:"weekly_hours"`
	Simulations          SimulationConfig     `json:"simulations"`
	Revision             SimpleActivityConfig `json:"revision"`
	Writing              SimpleActivityConfig `json:"writing"`
	CorrectionComplete   FixedActivityConfig  `json:"correction_complete"`
	CorrectionFragmented FixedActivityConfig  `json:"correction_fragmented"`
	GapsComplete         FixedActivityConfig  `json:"gaps_complete"`
	GapsFragmented       FixedActivityConfig  `json:"gaps_fragmented"`
	FreeDays             []string             `json:"free_days,omitempty"`
}

// NewPlanConfig returns an empty extensive configuration.
func NewPlanConfig() PlanConfig {
	return PlanConfig{
		ScheduleType: ScheduleExtensive,
		TopicPrefs:   make(TopicPrefs),
	}
}

// HasFreeDay reports whether the date (YYYY-MM-DD) is a free day.
func (c *PlanConfig) HasFreeDay(date string) bool {
	for _, d := range c.FreeDays {
		if d == date {
			return true
		}
	}
	return false
}
