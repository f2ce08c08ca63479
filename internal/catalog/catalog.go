package catalog

import "github.com/alexanderramin/cronograma/internal/domain"

type entry struct {
	subject string
	front   string
	name    string
}

// Topics returns a fresh copy of the catalog for the schedule type.
// Unknown types fall back to the extensive catalog.
func Topics(scheduleType domain.ScheduleType) []domain.Topic {
	src := extensiveEntries
	if scheduleType == domain.ScheduleIntensive {
		src = intensiveEntries
	}
	topics := make([]domain.Topic, len(src))
	for i, e := range src {
		topics[i] = domain.Topic{
			Subject:       e.subject,
			Front:         e.front,
			Name:          e.name,
			OriginalIndex: i,
		}
	}
	return topics
}

// Subjects returns the distinct subjects of topics in order of first
// appearance.
func Subjects(topics []domain.Topic) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range topics {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

// BySubject filters topics to a single subject, preserving order.
func BySubject(topics []domain.Topic, subject string) []domain.Topic {
	var out []domain.Topic
	for _, t := range topics {
		if t.Subject == subject {
			out = append(out, t)
		}
	}
	return out
}
