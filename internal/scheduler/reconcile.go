package scheduler

import "github.com/alexanderramin/cronograma/internal/domain"

// Reconcile folds checked study tasks into the completed set. Keys that do
// not resolve to a regular study task (simulations, fixed activities, free
// days, stale keys) are ignored. The input set is not modified.
func Reconcile(schedule []domain.StudyDay, checked []string, completed domain.CompletedTopics) domain.CompletedTopics {
	out := completed.Clone()
	byDate := make(map[string]int, len(schedule))
	for i, d := range schedule {
		byDate[d.Date] = i
	}
	for _, key := range checked {
		date, idx, err := domain.ParseTaskKey(key)
		if err != nil {
			continue
		}
		di, ok := byDate[date]
		if !ok {
			continue
		}
		tasks := schedule[di].Tasks
		if idx < 0 || idx >= len(tasks) || !tasks[idx].IsStudy() {
			continue
		}
		out[*tasks[idx].OriginalIndex] = true
	}
	return out
}

// Recalculate reconciles the checked tasks of a previous result and
// regenerates the whole plan from scratch with the grown completed set.
func Recalculate(in Input, previous domain.ScheduleResult, checked []string) (domain.ScheduleResult, domain.CompletedTopics) {
	completed := Reconcile(previous.Schedule, checked, in.CompletedTopics)
	in.CompletedTopics = completed
	return Generate(in), completed
}
