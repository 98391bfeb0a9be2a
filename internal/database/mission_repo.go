package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
)

const missionColumns = `tenant_id, codename, description, target_display, target_utc,
			location, ping_target, tag, notes, created_by, created_at, updated_at`

type missionRepo struct {
	db dbConn
}

func newMissionRepo(db dbConn) contract.MissionRepo {
	return &missionRepo{db: db}
}

func (r *missionRepo) Upsert(ctx context.Context, mission *entity.Mission) error {
	query := `
		INSERT INTO missions (tenant_id, codename, description, target_display, target_utc,
			location, ping_target, tag, notes, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (tenant_id, codename) DO UPDATE SET
			description = excluded.description,
			target_display = excluded.target_display,
			target_utc = excluded.target_utc,
			location = excluded.location,
			ping_target = excluded.ping_target,
			tag = excluded.tag,
			notes = excluded.notes,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		mission.TenantID,
		mission.Codename,
		mission.Description,
		mission.TargetDisplay,
		mission.TargetUTC.UTC().Format(domain.StoredTimeLayout),
		mission.Location,
		mission.PingTarget,
		mission.Tag,
		mission.Notes,
		mission.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert mission: %w", err)
	}

	return nil
}

func (r *missionRepo) Get(ctx context.Context, tenantID, codename string) (*entity.Mission, error) {
	query := `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE tenant_id = ? AND codename = ?
	`

	mission, err := scanMission(r.db.QueryRowContext(ctx, query, tenantID, codename))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}

	return mission, nil
}

func (r *missionRepo) GetAllActive(ctx context.Context) ([]*entity.Mission, error) {
	query := `
		SELECT ` + missionColumns + `
		FROM missions
		ORDER BY target_utc ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active missions: %w", err)
	}
	defer rows.Close()

	return scanMissions(rows)
}

func (r *missionRepo) GetUpcoming(ctx context.Context, tenantID string, now time.Time, limit int) ([]*entity.Mission, error) {
	query := `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE tenant_id = ? AND target_utc > ?
		ORDER BY target_utc ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, now.UTC().Format(domain.StoredTimeLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming missions: %w", err)
	}
	defer rows.Close()

	missions, err := scanMissions(rows)
	if err != nil {
		return nil, err
	}

	// rows with a corrupt target sort by text but have no instant to show
	upcoming := missions[:0]
	for _, m := range missions {
		if !m.TargetUTC.IsZero() {
			upcoming = append(upcoming, m)
		}
	}

	return upcoming, nil
}

func (r *missionRepo) Delete(ctx context.Context, tenantID, codename string) (bool, error) {
	query := `DELETE FROM missions WHERE tenant_id = ? AND codename = ?`

	result, err := r.db.ExecContext(ctx, query, tenantID, codename)
	if err != nil {
		return false, fmt.Errorf("failed to delete mission: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMission(row rowScanner) (*entity.Mission, error) {
	mission := &entity.Mission{}
	err := row.Scan(
		&mission.TenantID,
		&mission.Codename,
		&mission.Description,
		&mission.TargetDisplay,
		&mission.TargetRaw,
		&mission.Location,
		&mission.PingTarget,
		&mission.Tag,
		&mission.Notes,
		&mission.CreatedBy,
		&mission.CreatedAt,
		&mission.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Leave TargetUTC zero for unparseable rows, recovery reports them
	if target, err := time.Parse(domain.StoredTimeLayout, mission.TargetRaw); err == nil {
		mission.TargetUTC = target
	}

	return mission, nil
}

func scanMissions(rows *sql.Rows) ([]*entity.Mission, error) {
	var missions []*entity.Mission
	for rows.Next() {
		mission, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, mission)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate missions: %w", err)
	}

	return missions, nil
}
