package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plan_configs (
		user_id       TEXT PRIMARY KEY,
		schedule_type TEXT NOT NULL
		              CHECK(schedule_type IN ('extensive','intensive')),
		config_json   TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS plan_results (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		schedule_type   TEXT NOT NULL
		                CHECK(schedule_type IN ('extensive','intensive')),
		config_json     TEXT NOT NULL,
		result_json     TEXT NOT NULL,
		remaining_count INTEGER NOT NULL DEFAULT 0 CHECK(remaining_count >= 0),
		all_topics_fit  INTEGER NOT NULL DEFAULT 0,
		generated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plan_results_user ON plan_results(user_id, generated_at)`,
	`CREATE TABLE IF NOT EXISTS completed_topics (
		user_id        TEXT NOT NULL,
		schedule_type  TEXT NOT NULL
		               CHECK(schedule_type IN ('extensive','intensive')),
		original_index INTEGER NOT NULL CHECK(original_index >= 0),
		completed_at   TEXT NOT NULL,
		PRIMARY KEY (user_id, schedule_type, original_index)
	)`,
	`CREATE TABLE IF NOT EXISTS checked_tasks (
		plan_id    TEXT NOT NULL REFERENCES plan_results(id) ON DELETE CASCADE,
		task_key   TEXT NOT NULL,
		checked_at TEXT NOT NULL,
		PRIMARY KEY (plan_id, task_key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_checked_tasks_plan ON checked_tasks(plan_id)`,
	// Added after the first release; older databases pick it up here.
	`ALTER TABLE plan_results ADD COLUMN hit_safety_ceiling INTEGER NOT NULL DEFAULT 0`,
}
