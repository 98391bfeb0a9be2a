package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
)

type dailyLogRepo struct {
	db dbConn
}

func newDailyLogRepo(db dbConn) contract.DailyLogRepo {
	return &dailyLogRepo{db: db}
}

func (r *dailyLogRepo) Get(ctx context.Context, taskName string) (*entity.DailyTaskLog, error) {
	log := &entity.DailyTaskLog{}
	query := `SELECT task_name, last_run_date FROM daily_task_log WHERE task_name = ?`

	err := r.db.QueryRowContext(ctx, query, taskName).Scan(&log.TaskName, &log.LastRunDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily task log: %w", err)
	}

	return log, nil
}

func (r *dailyLogRepo) Upsert(ctx context.Context, taskName, date string) error {
	query := `
		INSERT INTO daily_task_log (task_name, last_run_date)
		VALUES (?, ?)
		ON CONFLICT (task_name) DO UPDATE SET last_run_date = excluded.last_run_date
	`

	_, err := r.db.ExecContext(ctx, query, taskName, date)
	if err != nil {
		return fmt.Errorf("failed to upsert daily task log: %w", err)
	}

	return nil
}

// Claim records date for taskName only if it was not already recorded,
// reporting whether this call won the date.
func (r *dailyLogRepo) Claim(ctx context.Context, taskName, date string) (bool, error) {
	query := `
		INSERT INTO daily_task_log (task_name, last_run_date)
		VALUES (?, ?)
		ON CONFLICT (task_name) DO UPDATE SET last_run_date = excluded.last_run_date
		WHERE daily_task_log.last_run_date <> excluded.last_run_date
	`

	result, err := r.db.ExecContext(ctx, query, taskName, date)
	if err != nil {
		return false, fmt.Errorf("failed to claim daily task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected == 1, nil
}
