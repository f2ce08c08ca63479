package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cronograma/internal/db"
	"github.com/alexanderramin/cronograma/internal/domain"
)

// SQLitePlanConfigRepo implements PlanConfigRepo. The configuration is stored
// as a JSON document; schedule_type is duplicated into its own column so the
// CHECK constraint guards it.
type SQLitePlanConfigRepo struct {
	db db.DBTX
}

func NewSQLitePlanConfigRepo(conn db.DBTX) *SQLitePlanConfigRepo {
	return &SQLitePlanConfigRepo{db: conn}
}

func (r *SQLitePlanConfigRepo) Get(ctx context.Context, userID string) (*domain.PlanConfig, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT config_json FROM plan_configs WHERE user_id = ?`, userID)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan config: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan config: %w", err)
	}

	var cfg domain.PlanConfig
	if err := unmarshalColumn("plan config", raw, &cfg); err != nil {
		return nil, err
	}
	if cfg.TopicPrefs == nil {
		cfg.TopicPrefs = make(domain.TopicPrefs)
	}
	return &cfg, nil
}

func (r *SQLitePlanConfigRepo) Upsert(ctx context.Context, userID string, cfg *domain.PlanConfig) error {
	raw, err := marshalColumn("plan config", cfg)
	if err != nil {
		return err
	}
	now := nowUTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO plan_configs (user_id, schedule_type, config_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE
		SET schedule_type = excluded.schedule_type,
		    config_json = excluded.config_json,
		    updated_at = excluded.updated_at`,
		userID, string(cfg.ScheduleType), raw, now, now)
	if err != nil {
		return fmt.Errorf("upserting plan config: %w", err)
	}
	return nil
}

func (r *SQLitePlanConfigRepo) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plan_configs WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("deleting plan config: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted plan config: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan config: %w", ErrNotFound)
	}
	return nil
}
