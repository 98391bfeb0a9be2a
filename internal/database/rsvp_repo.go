package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
)

type rsvpRepo struct {
	db dbConn
}

func newRSVPRepo(db dbConn) contract.RSVPRepo {
	return &rsvpRepo{db: db}
}

func (r *rsvpRepo) CreatePrompt(ctx context.Context, prompt *entity.RSVPPrompt) error {
	query := `
		INSERT INTO rsvp_prompts (announcement_id, tenant_id, codename)
		VALUES (?, ?, ?)
		ON CONFLICT (announcement_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, prompt.AnnouncementID, prompt.TenantID, prompt.Codename)
	if err != nil {
		return fmt.Errorf("failed to create rsvp prompt: %w", err)
	}

	return nil
}

func (r *rsvpRepo) GetPrompt(ctx context.Context, announcementID string) (*entity.RSVPPrompt, error) {
	prompt := &entity.RSVPPrompt{}
	query := `
		SELECT announcement_id, tenant_id, codename, created_at
		FROM rsvp_prompts
		WHERE announcement_id = ?
	`

	err := r.db.QueryRowContext(ctx, query, announcementID).Scan(
		&prompt.AnnouncementID,
		&prompt.TenantID,
		&prompt.Codename,
		&prompt.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp prompt: %w", err)
	}

	return prompt, nil
}

func (r *rsvpRepo) SetStatus(ctx context.Context, status *entity.RSVPStatus) error {
	query := `
		INSERT INTO rsvp_status (tenant_id, codename, participant_id, status)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (tenant_id, codename, participant_id) DO UPDATE SET
			status = excluded.status,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		status.TenantID,
		status.Codename,
		status.ParticipantID,
		status.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to set rsvp status: %w", err)
	}

	return nil
}

func (r *rsvpRepo) DeleteStatus(ctx context.Context, tenantID, codename, participantID string) error {
	query := `DELETE FROM rsvp_status WHERE tenant_id = ? AND codename = ? AND participant_id = ?`

	_, err := r.db.ExecContext(ctx, query, tenantID, codename, participantID)
	if err != nil {
		return fmt.Errorf("failed to delete rsvp status: %w", err)
	}

	return nil
}

func (r *rsvpRepo) GetCounts(ctx context.Context, tenantID, codename string) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM rsvp_status
		WHERE tenant_id = ? AND codename = ?
		GROUP BY status
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, codename)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *rsvpRepo) GetMembers(ctx context.Context, tenantID, codename, status string) ([]string, error) {
	query := `
		SELECT participant_id
		FROM rsvp_status
		WHERE tenant_id = ? AND codename = ? AND status = ?
		ORDER BY updated_at ASC, participant_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID, codename, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var participantID string
		if err := rows.Scan(&participantID); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp member: %w", err)
		}
		members = append(members, participantID)
	}

	return members, rows.Err()
}

func (r *rsvpRepo) DeleteByMission(ctx context.Context, tenantID, codename string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM rsvp_status WHERE tenant_id = ? AND codename = ?`, tenantID, codename); err != nil {
		return fmt.Errorf("failed to delete rsvp status: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM rsvp_prompts WHERE tenant_id = ? AND codename = ?`, tenantID, codename); err != nil {
		return fmt.Errorf("failed to delete rsvp prompts: %w", err)
	}

	return nil
}
