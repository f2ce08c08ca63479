package testutil

import (
	"time"

	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/scheduler"
	"github.com/google/uuid"
)

// Monday is the fixed "today" used by fixtures.
var Monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

// PlanConfig options
type ConfigOption func(*domain.PlanConfig)

func WithScheduleType(st domain.ScheduleType) ConfigOption {
	return func(c *domain.PlanConfig) {
		c.ScheduleType = st
	}
}

func WithWeeklyHours(h domain.WeeklyHours) ConfigOption {
	return func(c *domain.PlanConfig) {
		c.WeeklyHours = h
	}
}

func WithEndDate(d time.Time) ConfigOption {
	return func(c *domain.PlanConfig) {
		c.EndDate = &d
	}
}

// WithOnlyTopics excludes every catalog topic except the given indices.
func WithOnlyTopics(indices ...int) ConfigOption {
	return func(c *domain.PlanConfig) {
		keep := make(map[int]bool, len(indices))
		for _, i := range indices {
			keep[i] = true
		}
		c.TopicPrefs = make(domain.TopicPrefs)
		for i := 0; i < 200; i++ {
			pref := domain.DefaultTopicPreference()
			pref.Included = keep[i]
			c.TopicPrefs[i] = pref
		}
	}
}

func WithDifficulty(idx, difficulty int) ConfigOption {
	return func(c *domain.PlanConfig) {
		pref := c.TopicPrefs.For(idx)
		pref.Difficulty = difficulty
		if c.TopicPrefs == nil {
			c.TopicPrefs = make(domain.TopicPrefs)
		}
		c.TopicPrefs[idx] = pref
	}
}

func WithFreeDays(dates ...string) ConfigOption {
	return func(c *domain.PlanConfig) {
		c.FreeDays = append(c.FreeDays, dates...)
	}
}

func WithCompleteSimulations(days ...time.Weekday) ConfigOption {
	return func(c *domain.PlanConfig) {
		c.Simulations.Complete = domain.SimulationSchedule{
			Enabled:          true,
			Intensifications: []domain.Intensification{{Days: days}},
		}
	}
}

func WithWriting(durations domain.DayDurations) ConfigOption {
	return func(c *domain.PlanConfig) {
		c.Writing = domain.SimpleActivityConfig{Enabled: true, Durations: durations}
	}
}

// NewTestConfig returns an extensive configuration with three hours every
// weekday and weekends off.
func NewTestConfig(opts ...ConfigOption) *domain.PlanConfig {
	cfg := domain.NewPlanConfig()
	cfg.WeeklyHours = domain.WeeklyHours{0, 3, 3, 3, 3, 3, 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// NewTestPlanState generates a plan for cfg starting on Monday and wraps it
// in a fresh revision.
func NewTestPlanState(userID string, cfg *domain.PlanConfig) *domain.PlanState {
	result := scheduler.Generate(scheduler.NewInput(*cfg, nil, Monday))
	return &domain.PlanState{
		ID:              uuid.New().String(),
		UserID:          userID,
		Config:          *cfg,
		Result:          result,
		CompletedTopics: make(domain.CompletedTopics),
		Checked:         make(map[string]bool),
		GeneratedAt:     time.Now().UTC(),
	}
}

// FirstStudyTask returns the key and topic index of the first regular study
// task in the plan.
func FirstStudyTask(p *domain.PlanState) (string, int, bool) {
	for _, day := range p.Result.Schedule {
		for i, task := range day.Tasks {
			if task.IsStudy() {
				return domain.TaskKey(day.Date, i), *task.OriginalIndex, true
			}
		}
	}
	return "", 0, false
}
