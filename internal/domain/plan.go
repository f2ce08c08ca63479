package domain

import (
	"fmt"
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

const FreeDayMarker = "Dia Livre"

// Task is a single entry of a study day. OriginalIndex is set only for
// regular study tasks.
type Task struct {
	Name          string   `json:"name"`
	Duration      int      `json:"duration"`
	Subject       string   `json:"subject"`
	Front         string   `json:"front,omitempty"`
	Type          TaskType `json:"type"`
	OriginalIndex *int     `json:"original_index,omitempty"`
}

// IsStudy reports whether the task is a regular topic study task.
func (t Task) IsStudy() bool {
	return t.Type == TaskStudy && t.OriginalIndex != nil
}

// StudyDay is one calendar day of a generated plan.
type StudyDay struct {
	Date  string `json:"date"`
	Tasks []Task `json:"tasks"`
}

// TotalMinutes sums the task durations of the day.
func (d StudyDay) TotalMinutes() int {
	total := 0
	for _, t := range d.Tasks {
		total += t.Duration
	}
	return total
}

// IsFree reports whether the day is a free-day placeholder.
func (d StudyDay) IsFree() bool {
	return len(d.Tasks) == 1 && d.Tasks[0].Type == TaskFree
}

// UnscheduledTopic explains why a topic did not make it into the plan.
type UnscheduledTopic struct {
	Topic  Topic             `json:"topic"`
	Reason UnscheduledReason `json:"reason"`
}

// ScheduleResult is the output of a generation run.
type ScheduleResult struct {
	Schedule             []StudyDay         `json:"schedule"`
	RemainingTopicsCount int                `json:"remaining_topics_count"`
	RemainingTopicsList  []Topic            `json:"remaining_topics_list"`
	AllTopicsFit         bool               `json:"all_topics_fit"`
	Unscheduled          []UnscheduledTopic `json:"unscheduled,omitempty"`
	HitSafetyCeiling     bool               `json:"hit_safety_ceiling,omitempty"`
}

// FindDay returns the day for the given date, if present.
func (r *ScheduleResult) FindDay(date string) (*StudyDay, bool) {
	for i := range r.Schedule {
		if r.Schedule[i].Date == date {
			return &r.Schedule[i], true
		}
	}
	return nil, false
}

// TaskKey identifies a task inside a plan as "<date>#<index>".
func TaskKey(date string, index int) string {
	return fmt.Sprintf("%s#%d", date, index)
}

// ParseTaskKey splits a key produced by TaskKey.
func ParseTaskKey(key string) (string, int, error) {
	var idx int
	if len(key) < len(DateLayout)+2 || key[len(DateLayout)] != '#' {
		return "", 0, fmt.Errorf("invalid task key %q", key)
	}
	date := key[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", 0, fmt.Errorf("invalid task key %q: %w", key, err)
	}
	if _, err := fmt.Sscanf(key[len(DateLayout)+1:], "%d", &idx); err != nil {
		return "", 0, fmt.Errorf("invalid task key %q: %w", key, err)
	}
	return date, idx, nil
}

// PlanState is the persisted snapshot of a user's plan: the configuration
// that produced it, the result, and the UI progress on top of it.
type PlanState struct {
	ID              string
	UserID          string
	Config          PlanConfig
	Result          ScheduleResult
	CompletedTopics CompletedTopics
	Checked         map[string]bool
	GeneratedAt     time.Time
}

// CheckedKeys returns the checked task keys in sorted order.
func (s *PlanState) CheckedKeys() []string {
	keys := make([]string, 0, len(s.Checked))
	for k, v := range s.Checked {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
