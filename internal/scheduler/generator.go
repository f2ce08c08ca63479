package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/cronograma/internal/catalog"
	"github.com/alexanderramin/cronograma/internal/domain"
)

const (
	simulationSubject = "Simulado"
	writingSubject    = "Redação"
	revisionSubject   = "Revisão"
)

// Input is a fully materialized snapshot of everything a generation run
// reads. Generate never mutates it.
type Input struct {
	Topics               []domain.Topic
	TopicPrefs           domain.TopicPrefs
	EndDate              *time.Time
	WeeklyHours          domain.WeeklyHours
	Simulations          domain.SimulationConfig
	Revision             domain.SimpleActivityConfig
	Writing              domain.SimpleActivityConfig
	CorrectionComplete   domain.FixedActivityConfig
	CorrectionFragmented domain.FixedActivityConfig
	GapsComplete         domain.FixedActivityConfig
	GapsFragmented       domain.FixedActivityConfig
	FreeDays             []string
	CompletedTopics      domain.CompletedTopics

	// Today is day 0 of the plan.
	Today time.Time
	// Policy overrides DefaultPolicy when set.
	Policy *Policy
}

// NewInput assembles an Input from a stored configuration and the catalog
// the configuration selects.
func NewInput(cfg domain.PlanConfig, completed domain.CompletedTopics, today time.Time) Input {
	return Input{
		Topics:               catalog.Topics(cfg.ScheduleType),
		TopicPrefs:           cfg.TopicPrefs,
		EndDate:              cfg.EndDate,
		WeeklyHours:          cfg.WeeklyHours,
		Simulations:          cfg.Simulations,
		Revision:             cfg.Revision,
		Writing:              cfg.Writing,
		CorrectionComplete:   cfg.CorrectionComplete,
		CorrectionFragmented: cfg.CorrectionFragmented,
		GapsComplete:         cfg.GapsComplete,
		GapsFragmented:       cfg.GapsFragmented,
		FreeDays:             cfg.FreeDays,
		CompletedTopics:      completed,
		Today:                today,
	}
}

type generator struct {
	in     Input
	policy Policy
	start  time.Time
	end    *time.Time

	subjects    []string
	queues      map[string]*topicQueue
	budget      map[string]int
	lastStudied map[string]int
	gates       map[string]time.Time
	freeDays    map[string]bool
	remaining   int
}

func newGenerator(in Input) *generator {
	policy := DefaultPolicy()
	if in.Policy != nil {
		policy = *in.Policy
	}
	g := &generator{
		in:          in,
		policy:      policy,
		start:       dateOnly(in.Today),
		queues:      make(map[string]*topicQueue),
		lastStudied: make(map[string]int),
		freeDays:    make(map[string]bool, len(in.FreeDays)),
	}
	if in.EndDate != nil {
		end := dateOnly(*in.EndDate)
		g.end = &end
	}
	g.gates = ActivationDates(g.start, g.end, policy)
	for _, d := range in.FreeDays {
		g.freeDays[d] = true
	}

	for _, t := range in.Topics {
		pref := in.TopicPrefs.For(t.OriginalIndex)
		if !pref.Included || in.CompletedTopics[t.OriginalIndex] {
			continue
		}
		q, ok := g.queues[t.Subject]
		if !ok {
			q = &topicQueue{}
			g.queues[t.Subject] = q
			g.subjects = append(g.subjects, t.Subject)
		}
		q.push(queuedTopic{topic: t, duration: catalog.TopicDuration(t.Subject, pref.Difficulty)})
		g.remaining++
	}
	return g
}

// Generate builds a day-by-day study plan. It always terminates with a
// best-effort plan: an unreachable deadline or a contradictory
// configuration is reported in the result rather than as an error.
func Generate(in Input) domain.ScheduleResult {
	g := newGenerator(in)

	days := make([]domain.StudyDay, 0)
	hitCeiling := false
	for dayIndex := 0; g.remaining > 0; dayIndex++ {
		if dayIndex >= g.policy.MaxDays {
			hitCeiling = true
			break
		}
		date := g.start.AddDate(0, 0, dayIndex)
		if g.end != nil && date.After(*g.end) {
			break
		}
		if dayIndex == 0 || date.Weekday() == time.Sunday {
			g.budget = WeeklyBudget(g.subjects, g.in.WeeklyHours.TotalMinutes(), g.policy.BaselineWeeklyMinutes)
		}

		key := date.Format(domain.DateLayout)
		if g.freeDays[key] {
			days = append(days, freeDay(key))
			continue
		}
		days = append(days, g.buildDay(dayIndex, date))
	}

	return g.result(days, hitCeiling)
}

func freeDay(date string) domain.StudyDay {
	return domain.StudyDay{
		Date: date,
		Tasks: []domain.Task{{
			Name:     domain.FreeDayMarker,
			Duration: 0,
			Subject:  domain.FreeDayMarker,
			Type:     domain.TaskFree,
		}},
	}
}

// dayBuilder accumulates the tasks of one day. remaining never goes below
// zero, but committed tasks are always recorded in full.
type dayBuilder struct {
	tasks     []domain.Task
	remaining int
}

func (d *dayBuilder) fits(minutes int) bool {
	return minutes <= d.remaining
}

// admit records a task that was checked against the remaining minutes.
func (d *dayBuilder) admit(t domain.Task) {
	d.tasks = append(d.tasks, t)
	d.remaining -= t.Duration
}

// commit records an externally committed task regardless of the budget.
func (d *dayBuilder) commit(t domain.Task) {
	d.tasks = append(d.tasks, t)
	d.remaining -= t.Duration
	if d.remaining < 0 {
		d.remaining = 0
	}
}

func (g *generator) buildDay(dayIndex int, date time.Time) domain.StudyDay {
	d := &dayBuilder{
		tasks:     make([]domain.Task, 0),
		remaining: g.in.WeeklyHours.DayMinutes(date.Weekday()),
	}

	examDay := false
	sims := g.in.Simulations
	if SimulationActive(sims.Complete, date, false) && d.fits(domain.CompleteSimulationMin) {
		d.admit(domain.Task{
			Name:     "Simulado Completo",
			Duration: domain.CompleteSimulationMin,
			Subject:  simulationSubject,
			Type:     domain.TaskSimulation,
		})
		examDay = true
	} else if SimulationActive(sims.Fragmented, date, true) && d.fits(domain.FragmentedSimulationMin) {
		d.admit(domain.Task{
			Name:     "Simulado Fragmentado",
			Duration: domain.FragmentedSimulationMin,
			Subject:  simulationSubject,
			Type:     domain.TaskSimulation,
		})
	}

	g.commitFixed(d, g.in.CorrectionComplete, date, false, "Correção de Simulado Completo", domain.TaskCorrection)
	g.commitFixed(d, g.in.CorrectionFragmented, date, true, "Correção de Simulado Fragmentado", domain.TaskCorrection)

	if !examDay {
		if m := SimpleActivityMinutes(g.in.Writing, date); m > 0 && d.fits(m) {
			d.admit(domain.Task{Name: "Redação", Duration: m, Subject: writingSubject, Type: domain.TaskWriting})
		}
		if m := SimpleActivityMinutes(g.in.Revision, date); m > 0 && d.fits(m) {
			d.admit(domain.Task{Name: "Revisão", Duration: m, Subject: revisionSubject, Type: domain.TaskRevision})
		}
	}

	g.commitFixed(d, g.in.GapsComplete, date, false, "Lacunas de Simulado Completo", domain.TaskGaps)
	g.commitFixed(d, g.in.GapsFragmented, date, true, "Lacunas de Simulado Fragmentado", domain.TaskGaps)

	g.fillStudy(d, dayIndex, date, examDay)

	return domain.StudyDay{Date: date.Format(domain.DateLayout), Tasks: d.tasks}
}

func (g *generator) commitFixed(d *dayBuilder, c domain.FixedActivityConfig, date time.Time, fragmented bool, name string, typ domain.TaskType) {
	minutes := FixedActivityMinutes(c, date, fragmented)
	if minutes <= 0 {
		return
	}
	d.commit(domain.Task{Name: name, Duration: minutes, Subject: simulationSubject, Type: typ})
}

func (g *generator) fillStudy(d *dayBuilder, dayIndex int, date time.Time, examDay bool) {
	subjectCap := g.policy.WeekdaySubjectCap
	if isWeekend(date) {
		subjectCap = g.policy.WeekendSubjectCap
	}

	used := make(map[string]bool)
	for d.remaining > 0 && len(used) < subjectCap {
		subject, ok := g.pickSubject(dayIndex, date, examDay, used, d.remaining)
		if !ok {
			break
		}
		qt, _ := g.queues[subject].pop()
		idx := qt.topic.OriginalIndex
		d.admit(domain.Task{
			Name:          qt.topic.Name,
			Duration:      qt.duration,
			Subject:       subject,
			Front:         qt.topic.Front,
			Type:          domain.TaskStudy,
			OriginalIndex: &idx,
		})
		g.budget[subject] -= qt.duration
		g.lastStudied[subject] = dayIndex
		used[subject] = true
		g.remaining--
	}
}

// pickSubject returns the highest-scoring eligible subject. Ties go to the
// subject that appears first in the catalog.
func (g *generator) pickSubject(dayIndex int, date time.Time, examDay bool, used map[string]bool, minutes int) (string, bool) {
	best := ""
	var bestScore float64
	for _, subject := range g.subjects {
		if used[subject] || g.blocked(subject, date, examDay) {
			continue
		}
		head, ok := g.queues[subject].peek()
		if !ok || head.duration > minutes {
			continue
		}
		if g.budget[subject] <= 0 {
			continue
		}
		last, studied := g.lastStudied[subject]
		if !studied {
			last = -1
		}
		score := ScoreSubject(SubjectScoringInput{
			Subject:              subject,
			DaysSinceLastStudied: dayIndex - last,
			RemainingBudget:      g.budget[subject],
			WeeklyTarget:         catalog.WeeklyTarget(subject),
			Weights:              g.policy.Weights,
		})
		if best == "" || score > bestScore {
			best = subject
			bestScore = score
		}
	}
	return best, best != ""
}

func (g *generator) blocked(subject string, date time.Time, examDay bool) bool {
	if isWeekend(date) && containsSubject(g.policy.WeekendBlocked, subject) {
		return true
	}
	if examDay && containsSubject(g.policy.ExamDayBlocked, subject) {
		return true
	}
	if gate, ok := g.gates[subject]; ok && date.Before(gate) {
		return true
	}
	return false
}

func (g *generator) result(days []domain.StudyDay, hitCeiling bool) domain.ScheduleResult {
	var left []domain.UnscheduledTopic
	for _, subject := range g.subjects {
		reason := domain.ReasonDeadline
		if hitCeiling {
			reason = domain.ReasonSafetyCeiling
		} else if gate, ok := g.gates[subject]; ok && g.end != nil && gate.After(*g.end) {
			reason = domain.ReasonActivationGate
		}
		for _, qt := range g.queues[subject].rest() {
			left = append(left, domain.UnscheduledTopic{Topic: qt.topic, Reason: reason})
		}
	}
	sort.SliceStable(left, func(i, j int) bool {
		return left[i].Topic.OriginalIndex < left[j].Topic.OriginalIndex
	})

	list := make([]domain.Topic, len(left))
	for i, u := range left {
		list[i] = u.Topic
	}

	return domain.ScheduleResult{
		Schedule:             days,
		RemainingTopicsCount: len(list),
		RemainingTopicsList:  list,
		AllTopicsFit:         len(list) == 0,
		Unscheduled:          left,
		HitSafetyCeiling:     hitCeiling,
	}
}
