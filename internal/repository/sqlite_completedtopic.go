package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cronograma/internal/db"
	"github.com/alexanderramin/cronograma/internal/domain"
)

// SQLiteCompletedTopicRepo implements CompletedTopicRepo using a SQLite database.
type SQLiteCompletedTopicRepo struct {
	db db.DBTX
}

func NewSQLiteCompletedTopicRepo(conn db.DBTX) *SQLiteCompletedTopicRepo {
	return &SQLiteCompletedTopicRepo{db: conn}
}

func (r *SQLiteCompletedTopicRepo) List(ctx context.Context, userID string, scheduleType domain.ScheduleType) (domain.CompletedTopics, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT original_index FROM completed_topics
		WHERE user_id = ? AND schedule_type = ? ORDER BY original_index`,
		userID, string(scheduleType))
	if err != nil {
		return nil, fmt.Errorf("listing completed topics: %w", err)
	}
	defer rows.Close()

	completed := make(domain.CompletedTopics)
	for rows.Next() {
		var idx int
		if err := rows.Scan(&idx); err != nil {
			return nil, fmt.Errorf("scanning completed topic: %w", err)
		}
		completed[idx] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completed topics: %w", err)
	}
	return completed, nil
}

// Add marks the topics as completed. Already completed topics keep their
// original completion time.
func (r *SQLiteCompletedTopicRepo) Add(ctx context.Context, userID string, scheduleType domain.ScheduleType, indices []int) error {
	now := nowUTC()
	for _, idx := range indices {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO completed_topics (user_id, schedule_type, original_index, completed_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(user_id, schedule_type, original_index) DO NOTHING`,
			userID, string(scheduleType), idx, now)
		if err != nil {
			return fmt.Errorf("inserting completed topic %d: %w", idx, err)
		}
	}
	return nil
}

func (r *SQLiteCompletedTopicRepo) Clear(ctx context.Context, userID string, scheduleType domain.ScheduleType) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM completed_topics WHERE user_id = ? AND schedule_type = ?`,
		userID, string(scheduleType))
	if err != nil {
		return fmt.Errorf("clearing completed topics: %w", err)
	}
	return nil
}
