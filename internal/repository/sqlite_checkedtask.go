package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cronograma/internal/db"
)

// SQLiteCheckedTaskRepo implements CheckedTaskRepo. Only checked keys are
// stored; unchecking deletes the row.
type SQLiteCheckedTaskRepo struct {
	db db.DBTX
}

func NewSQLiteCheckedTaskRepo(conn db.DBTX) *SQLiteCheckedTaskRepo {
	return &SQLiteCheckedTaskRepo{db: conn}
}

func (r *SQLiteCheckedTaskRepo) List(ctx context.Context, planID string) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_key FROM checked_tasks WHERE plan_id = ?`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing checked tasks: %w", err)
	}
	defer rows.Close()

	checked := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning checked task: %w", err)
		}
		checked[key] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checked tasks: %w", err)
	}
	return checked, nil
}

func (r *SQLiteCheckedTaskRepo) Set(ctx context.Context, planID, taskKey string, checked bool) error {
	if !checked {
		if _, err := r.db.ExecContext(ctx,
			`DELETE FROM checked_tasks WHERE plan_id = ? AND task_key = ?`, planID, taskKey); err != nil {
			return fmt.Errorf("unchecking task: %w", err)
		}
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO checked_tasks (plan_id, task_key, checked_at) VALUES (?, ?, ?)
		ON CONFLICT(plan_id, task_key) DO NOTHING`,
		planID, taskKey, nowUTC())
	if err != nil {
		return fmt.Errorf("checking task: %w", err)
	}
	return nil
}

func (r *SQLiteCheckedTaskRepo) Clear(ctx context.Context, planID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM checked_tasks WHERE plan_id = ?`, planID); err != nil {
		return fmt.Errorf("clearing checked tasks: %w", err)
	}
	return nil
}
