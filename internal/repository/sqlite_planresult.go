package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cronograma/internal/db"
	"github.com/alexanderramin/cronograma/internal/domain"
)

// SQLitePlanResultRepo implements PlanResultRepo using a SQLite database.
type SQLitePlanResultRepo struct {
	db db.DBTX
}

func NewSQLitePlanResultRepo(conn db.DBTX) *SQLitePlanResultRepo {
	return &SQLitePlanResultRepo{db: conn}
}

func (r *SQLitePlanResultRepo) Create(ctx context.Context, p *domain.PlanState) error {
	cfg, err := marshalColumn("plan config", p.Config)
	if err != nil {
		return err
	}
	res, err := marshalColumn("plan result", p.Result)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO plan_results (id, user_id, schedule_type, config_json, result_json,
			remaining_count, all_topics_fit, hit_safety_ceiling, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.UserID,
		string(p.Config.ScheduleType),
		cfg,
		res,
		p.Result.RemainingTopicsCount,
		boolToInt(p.Result.AllTopicsFit),
		boolToInt(p.Result.HitSafetyCeiling),
		p.GeneratedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting plan result: %w", err)
	}
	return nil
}

// Latest returns the most recent revision without its checks or completed
// topics; callers combine those from their own repositories.
func (r *SQLitePlanResultRepo) Latest(ctx context.Context, userID string) (*domain.PlanState, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, config_json, result_json, generated_at
		FROM plan_results WHERE user_id = ?
		ORDER BY generated_at DESC, rowid DESC LIMIT 1`, userID)

	var (
		p           domain.PlanState
		cfg, res    string
		generatedAt string
	)
	if err := row.Scan(&p.ID, &p.UserID, &cfg, &res, &generatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan result: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan result: %w", err)
	}
	if err := unmarshalColumn("plan config", cfg, &p.Config); err != nil {
		return nil, err
	}
	if err := unmarshalColumn("plan result", res, &p.Result); err != nil {
		return nil, err
	}
	t, err := time.Parse(timestampLayout, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing generated_at: %w", err)
	}
	p.GeneratedAt = t
	return &p, nil
}

func (r *SQLitePlanResultRepo) ListByUser(ctx context.Context, userID string, limit int) ([]PlanRevision, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, schedule_type, remaining_count, all_topics_fit, hit_safety_ceiling, generated_at
		FROM plan_results WHERE user_id = ?
		ORDER BY generated_at DESC, rowid DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plan results: %w", err)
	}
	defer rows.Close()

	var revisions []PlanRevision
	for rows.Next() {
		var (
			rev          PlanRevision
			scheduleType string
			fit, ceiling int
			generatedAt  string
		)
		if err := rows.Scan(&rev.ID, &scheduleType, &rev.RemainingCount, &fit, &ceiling, &generatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan revision: %w", err)
		}
		rev.ScheduleType = domain.ScheduleType(scheduleType)
		rev.AllTopicsFit = intToBool(fit)
		rev.HitSafetyCeiling = intToBool(ceiling)
		if rev.GeneratedAt, err = time.Parse(timestampLayout, generatedAt); err != nil {
			return nil, fmt.Errorf("parsing generated_at: %w", err)
		}
		revisions = append(revisions, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan revisions: %w", err)
	}
	return revisions, nil
}

// DeleteByUser removes every revision of the user together with its checks.
func (r *SQLitePlanResultRepo) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM checked_tasks WHERE plan_id IN (SELECT id FROM plan_results WHERE user_id = ?)`, userID); err != nil {
		return fmt.Errorf("deleting checked tasks: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_results WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting plan results: %w", err)
	}
	return nil
}
