package scheduler

import "github.com/alexanderramin/cronograma/internal/domain"

type queuedTopic struct {
	topic    domain.Topic
	duration int
}

// topicQueue is a per-subject FIFO. Items are only ever popped from the
// head; nothing is re-inserted during a generation run.
type topicQueue struct {
	items []queuedTopic
	head  int
}

func (q *topicQueue) push(t queuedTopic) {
	q.items = append(q.items, t)
}

func (q *topicQueue) len() int {
	return len(q.items) - q.head
}

func (q *topicQueue) peek() (queuedTopic, bool) {
	if q.len() == 0 {
		return queuedTopic{}, false
	}
	return q.items[q.head], true
}

func (q *topicQueue) pop() (queuedTopic, bool) {
	t, ok := q.peek()
	if ok {
		q.head++
	}
	return t, ok
}

func (q *topicQueue) rest() []queuedTopic {
	return q.items[q.head:]
}
