// Package wizard holds the state machine behind the interactive plan
// builder: topic selection, settings, generation and the checklist view.
// It has no I/O; the CLI drives it with forms and persists snapshots.
package wizard

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/cronograma/internal/catalog"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/alexanderramin/cronograma/internal/scheduler"
)

type Step int

const (
	StepTopics Step = iota
	StepSettings
	StepGenerate
	StepView
)

func (s Step) String() string {
	switch s {
	case StepTopics:
		return "topics"
	case StepSettings:
		return "settings"
	case StepGenerate:
		return "generate"
	case StepView:
		return "view"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrNoTopics     = errors.New("select at least one topic that is not completed")
	ErrNoStudyHours = errors.New("at least one weekday needs study hours")
	ErrWrongStep    = errors.New("action not available in this step")
	ErrUnknownTopic = errors.New("topic is not in the current catalog")
	ErrUnknownTask  = errors.New("task does not exist in the plan")
	ErrFreeDay      = errors.New("free days have no tasks to check")
	ErrInvalidHours = errors.New("hours per day must be between 0 and 24")
	ErrInvalidDate  = errors.New("dates use YYYY-MM-DD")
	ErrUnknownType  = errors.New("unknown schedule type")
)

// Controller tracks one wizard session. Today is day 0 of every plan it
// generates.
type Controller struct {
	step      Step
	cfg       domain.PlanConfig
	topics    []domain.Topic
	completed domain.CompletedTopics
	today     time.Time

	result  *domain.ScheduleResult
	checked map[string]bool
	planID  string

	loadCompleted CompletedLoader
}

// CompletedLoader returns the stored completed topics of a catalog.
type CompletedLoader func(domain.ScheduleType) (domain.CompletedTopics, error)

// New starts a wizard on the topic step with an empty extensive config.
func New(today time.Time) *Controller {
	c := &Controller{
		cfg:       domain.NewPlanConfig(),
		completed: make(domain.CompletedTopics),
		today:     today,
		checked:   make(map[string]bool),
	}
	c.topics = catalog.Topics(c.cfg.ScheduleType)
	return c
}

// Restore resumes a persisted plan. With a result it lands on the view step;
// without one it reopens the settings of the stored config.
func Restore(p *domain.PlanState, today time.Time) *Controller {
	c := New(today)
	c.cfg = p.Config
	if c.cfg.TopicPrefs == nil {
		c.cfg.TopicPrefs = make(domain.TopicPrefs)
	}
	c.topics = catalog.Topics(c.cfg.ScheduleType)
	c.completed = p.CompletedTopics.Clone()
	c.planID = p.ID
	for k, v := range p.Checked {
		if v {
			c.checked[k] = true
		}
	}
	if p.Result.Schedule != nil {
		result := p.Result
		c.result = &result
		c.step = StepView
	} else {
		c.step = StepSettings
	}
	return c
}

// Snapshot converts the session into a persistable plan state.
func (c *Controller) Snapshot(userID string) *domain.PlanState {
	p := &domain.PlanState{
		ID:              c.planID,
		UserID:          userID,
		Config:          c.Config(),
		CompletedTopics: c.completed.Clone(),
		Checked:         make(map[string]bool, len(c.checked)),
		GeneratedAt:     c.today,
	}
	if c.result != nil {
		p.Result = *c.result
	}
	for k := range c.checked {
		p.Checked[k] = true
	}
	return p
}

func (c *Controller) Step() Step { return c.step }

// Config returns a copy of the configuration being edited.
func (c *Controller) Config() domain.PlanConfig {
	cfg := c.cfg
	cfg.TopicPrefs = make(domain.TopicPrefs, len(c.cfg.TopicPrefs))
	for k, v := range c.cfg.TopicPrefs {
		cfg.TopicPrefs[k] = v
	}
	cfg.FreeDays = append([]string(nil), c.cfg.FreeDays...)
	return cfg
}

func (c *Controller) Topics() []domain.Topic { return c.topics }

func (c *Controller) Completed() domain.CompletedTopics { return c.completed.Clone() }

func (c *Controller) Result() (domain.ScheduleResult, bool) {
	if c.result == nil {
		return domain.ScheduleResult{}, false
	}
	return *c.result, true
}

// Next advances one step after validating the current one. The generate
// step only advances through Generate.
func (c *Controller) Next() error {
	switch c.step {
	case StepTopics:
		if c.selectableCount() == 0 {
			return ErrNoTopics
		}
	case StepSettings:
		if c.cfg.WeeklyHours.TotalMinutes() == 0 {
			return ErrNoStudyHours
		}
	default:
		return ErrWrongStep
	}
	c.step++
	return nil
}

func (c *Controller) Back() error {
	if c.step == StepTopics {
		return ErrWrongStep
	}
	c.step--
	return nil
}

func (c *Controller) selectableCount() int {
	n := 0
	for _, t := range c.topics {
		if c.cfg.TopicPrefs.For(t.OriginalIndex).Included && !c.completed[t.OriginalIndex] {
			n++
		}
	}
	return n
}

// SetCompletedLoader lets SetScheduleType pick up the completion already
// stored for the catalog it switches to.
func (c *Controller) SetCompletedLoader(fn CompletedLoader) {
	c.loadCompleted = fn
}

// SetScheduleType swaps the catalog. Indices of one catalog mean nothing in
// the other, so preferences and any generated plan are reset and completion
// comes from the loader, or starts empty without one.
func (c *Controller) SetScheduleType(st domain.ScheduleType) error {
	if c.step != StepTopics {
		return ErrWrongStep
	}
	if !domain.ValidScheduleTypes[string(st)] {
		return fmt.Errorf("%w: %q", ErrUnknownType, st)
	}
	if st == c.cfg.ScheduleType {
		return nil
	}
	completed := make(domain.CompletedTopics)
	if c.loadCompleted != nil {
		loaded, err := c.loadCompleted(st)
		if err != nil {
			return fmt.Errorf("loading completed %s topics: %w", st, err)
		}
		completed = loaded.Clone()
	}
	c.cfg.ScheduleType = st
	c.cfg.TopicPrefs = make(domain.TopicPrefs)
	c.topics = catalog.Topics(st)
	c.completed = completed
	c.clearPlan()
	return nil
}

func (c *Controller) clearPlan() {
	c.result = nil
	c.planID = ""
	c.checked = make(map[string]bool)
}

func (c *Controller) topicExists(idx int) bool {
	return idx >= 0 && idx < len(c.topics)
}

func (c *Controller) SetTopicIncluded(idx int, included bool) error {
	if c.step != StepTopics {
		return ErrWrongStep
	}
	if !c.topicExists(idx) {
		return fmt.Errorf("%w: %d", ErrUnknownTopic, idx)
	}
	pref := c.cfg.TopicPrefs.For(idx)
	pref.Included = included
	c.cfg.TopicPrefs[idx] = pref
	return nil
}

// SetDifficulty clamps d into the supported range.
func (c *Controller) SetDifficulty(idx, d int) error {
	if c.step != StepTopics {
		return ErrWrongStep
	}
	if !c.topicExists(idx) {
		return fmt.Errorf("%w: %d", ErrUnknownTopic, idx)
	}
	pref := c.cfg.TopicPrefs.For(idx)
	pref.Difficulty = domain.ClampInt(d, domain.MinDifficulty, domain.MaxDifficulty)
	c.cfg.TopicPrefs[idx] = pref
	return nil
}

// SetSubjectIncluded toggles every topic of a subject at once and returns
// how many topics it touched.
func (c *Controller) SetSubjectIncluded(subject string, included bool) (int, error) {
	if c.step != StepTopics {
		return 0, ErrWrongStep
	}
	topics := catalog.BySubject(c.topics, subject)
	for _, t := range topics {
		pref := c.cfg.TopicPrefs.For(t.OriginalIndex)
		pref.Included = included
		c.cfg.TopicPrefs[t.OriginalIndex] = pref
	}
	return len(topics), nil
}

func (c *Controller) SetWeeklyHours(h domain.WeeklyHours) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	for _, v := range h {
		if v < 0 || v > 24 {
			return ErrInvalidHours
		}
	}
	c.cfg.WeeklyHours = h
	return nil
}

func (c *Controller) SetEndDate(end *time.Time) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	c.cfg.EndDate = end
	return nil
}

func (c *Controller) SetSimulations(s domain.SimulationConfig) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	c.cfg.Simulations = s
	return nil
}

func (c *Controller) SetRevision(r domain.SimpleActivityConfig) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	c.cfg.Revision = r
	return nil
}

func (c *Controller) SetWriting(w domain.SimpleActivityConfig) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	c.cfg.Writing = w
	return nil
}

func (c *Controller) SetCorrections(complete, fragmented domain.FixedActivityConfig) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	c.cfg.CorrectionComplete = complete
	c.cfg.CorrectionFragmented = fragmented
	return nil
}

func (c *Controller) SetGaps(complete, fragmented domain.FixedActivityConfig) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	c.cfg.GapsComplete = complete
	c.cfg.GapsFragmented = fragmented
	return nil
}

func (c *Controller) AddFreeDay(date string) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if c.cfg.HasFreeDay(date) {
		return nil
	}
	c.cfg.FreeDays = append(c.cfg.FreeDays, date)
	sort.Strings(c.cfg.FreeDays)
	return nil
}

func (c *Controller) RemoveFreeDay(date string) error {
	if c.step != StepSettings {
		return ErrWrongStep
	}
	kept := make([]string, 0, len(c.cfg.FreeDays))
	for _, d := range c.cfg.FreeDays {
		if d != date {
			kept = append(kept, d)
		}
	}
	c.cfg.FreeDays = kept
	return nil
}

// Generate runs the generator on the current config and moves to the view.
// Checks from an earlier plan do not carry over.
func (c *Controller) Generate() (domain.ScheduleResult, error) {
	if c.step != StepGenerate {
		return domain.ScheduleResult{}, ErrWrongStep
	}
	c.clearPlan()
	result := scheduler.Generate(scheduler.NewInput(c.Config(), c.completed, c.today))
	c.result = &result
	c.step = StepView
	return result, nil
}

// ToggleCheck flips the check of the task at (date, index) and returns the
// new state.
func (c *Controller) ToggleCheck(date string, index int) (bool, error) {
	if c.step != StepView || c.result == nil {
		return false, ErrWrongStep
	}
	day, ok := c.result.FindDay(date)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownTask, date)
	}
	if day.IsFree() {
		return false, ErrFreeDay
	}
	if index < 0 || index >= len(day.Tasks) {
		return false, fmt.Errorf("%w: %s #%d", ErrUnknownTask, date, index)
	}
	key := domain.TaskKey(date, index)
	if c.checked[key] {
		delete(c.checked, key)
		return false, nil
	}
	c.checked[key] = true
	return true, nil
}

func (c *Controller) IsChecked(date string, index int) bool {
	return c.checked[domain.TaskKey(date, index)]
}

func (c *Controller) CheckedCount() int { return len(c.checked) }

// Recalculate folds the checked study tasks into the completed set, clears
// every check and regenerates from today. It returns the topics newly
// marked as completed.
func (c *Controller) Recalculate() ([]int, error) {
	if c.step != StepView || c.result == nil {
		return nil, ErrWrongStep
	}
	keys := make([]string, 0, len(c.checked))
	for k := range c.checked {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	before := c.completed
	result, grown := scheduler.Recalculate(scheduler.NewInput(c.Config(), before, c.today), *c.result, keys)

	var added []int
	for idx := range grown {
		if !before[idx] {
			added = append(added, idx)
		}
	}
	sort.Ints(added)

	c.completed = grown
	c.checked = make(map[string]bool)
	c.planID = ""
	c.result = &result
	return added, nil
}
