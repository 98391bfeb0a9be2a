package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
)

type settingsRepo struct {
	db dbConn
}

func newSettingsRepo(db dbConn) contract.SettingsRepo {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context, tenantID string) (*entity.TenantSettings, error) {
	settings := &entity.TenantSettings{}
	query := `
		SELECT tenant_id, announce_channel_id, announce_ignored, updated_at
		FROM tenant_settings
		WHERE tenant_id = ?
	`

	err := r.db.QueryRowContext(ctx, query, tenantID).Scan(
		&settings.TenantID,
		&settings.AnnounceChannelID,
		&settings.AnnounceIgnored,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant settings: %w", err)
	}

	return settings, nil
}

func (r *settingsRepo) SetAnnounceChannel(ctx context.Context, tenantID, channelID string) error {
	query := `
		INSERT INTO tenant_settings (tenant_id, announce_channel_id)
		VALUES (?, ?)
		ON CONFLICT (tenant_id) DO UPDATE SET
			announce_channel_id = excluded.announce_channel_id,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query, tenantID, channelID)
	if err != nil {
		return fmt.Errorf("failed to set announce channel: %w", err)
	}

	return nil
}

func (r *settingsRepo) SetIgnored(ctx context.Context, tenantID string, ignored bool) error {
	query := `
		INSERT INTO tenant_settings (tenant_id, announce_ignored)
		VALUES (?, ?)
		ON CONFLICT (tenant_id) DO UPDATE SET
			announce_ignored = excluded.announce_ignored,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query, tenantID, ignored)
	if err != nil {
		return fmt.Errorf("failed to set announce ignored: %w", err)
	}

	return nil
}

func (r *settingsRepo) ListAnnouncing(ctx context.Context) ([]*entity.TenantSettings, error) {
	query := `
		SELECT tenant_id, announce_channel_id, announce_ignored, updated_at
		FROM tenant_settings
		WHERE announce_channel_id <> '' AND announce_ignored = 0
		ORDER BY tenant_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcing tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.TenantSettings
	for rows.Next() {
		settings := &entity.TenantSettings{}
		err := rows.Scan(
			&settings.TenantID,
			&settings.AnnounceChannelID,
			&settings.AnnounceIgnored,
			&settings.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant settings: %w", err)
		}
		list = append(list, settings)
	}

	return list, rows.Err()
}
