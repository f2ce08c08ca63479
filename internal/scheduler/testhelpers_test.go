package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/cronograma/internal/catalog"
	"github.com/alexanderramin/cronograma/internal/domain"
	"github.com/stretchr/testify/require"
)

// monday is a fixed Monday used as day 0 in most tests.
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func daysFrom(base time.Time, n int) *time.Time {
	t := base.AddDate(0, 0, n)
	return &t
}

func subjectTopics(subject string, n, firstIndex int) []domain.Topic {
	topics := make([]domain.Topic, n)
	for i := range topics {
		topics[i] = domain.Topic{
			Subject:       subject,
			Front:         "Frente",
			Name:          subject + " " + string(rune('A'+i)),
			OriginalIndex: firstIndex + i,
		}
	}
	return topics
}

func evenHours(h float64) domain.WeeklyHours {
	return domain.WeeklyHours{h, h, h, h, h, h, h}
}

func catalogInput(n int, hours domain.WeeklyHours) Input {
	topics := catalog.Topics(domain.ScheduleExtensive)
	if n < len(topics) {
		topics = topics[:n]
	}
	return Input{
		Topics:      topics,
		WeeklyHours: hours,
		Today:       monday,
	}
}

// scheduledIndices counts how many times each topic appears in the plan.
func scheduledIndices(res domain.ScheduleResult) map[int]int {
	counts := make(map[int]int)
	for _, d := range res.Schedule {
		for _, t := range d.Tasks {
			if t.IsStudy() {
				counts[*t.OriginalIndex]++
			}
		}
	}
	return counts
}

func parseDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func hasTask(day domain.StudyDay, name string) bool {
	for _, t := range day.Tasks {
		if t.Name == name {
			return true
		}
	}
	return false
}

func admittedMinutes(day domain.StudyDay) int {
	total := 0
	for _, t := range day.Tasks {
		switch t.Type {
		case domain.TaskStudy, domain.TaskSimulation, domain.TaskWriting, domain.TaskRevision:
			total += t.Duration
		}
	}
	return total
}
