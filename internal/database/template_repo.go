package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
)

type templateRepo struct {
	db dbConn
}

func newTemplateRepo(db dbConn) contract.TemplateRepo {
	return &templateRepo{db: db}
}

func (r *templateRepo) Save(ctx context.Context, template *entity.Template) error {
	query := `
		INSERT INTO templates (tenant_id, name, description)
		VALUES (?, ?, ?)
		ON CONFLICT (tenant_id, name) DO UPDATE SET
			description = excluded.description
	`

	_, err := r.db.ExecContext(ctx, query, template.TenantID, template.Name, template.Description)
	if err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	return nil
}

func (r *templateRepo) Get(ctx context.Context, tenantID, name string) (*entity.Template, error) {
	template := &entity.Template{}
	query := `
		SELECT tenant_id, name, description, created_at
		FROM templates
		WHERE tenant_id = ? AND name = ?
	`

	err := r.db.QueryRowContext(ctx, query, tenantID, name).Scan(
		&template.TenantID,
		&template.Name,
		&template.Description,
		&template.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return template, nil
}

func (r *templateRepo) List(ctx context.Context, tenantID string) ([]*entity.Template, error) {
	query := `
		SELECT tenant_id, name, description, created_at
		FROM templates
		WHERE tenant_id = ?
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	defer rows.Close()

	var templates []*entity.Template
	for rows.Next() {
		template := &entity.Template{}
		err := rows.Scan(
			&template.TenantID,
			&template.Name,
			&template.Description,
			&template.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		templates = append(templates, template)
	}

	return templates, rows.Err()
}

func (r *templateRepo) Delete(ctx context.Context, tenantID, name string) (bool, error) {
	query := `DELETE FROM templates WHERE tenant_id = ? AND name = ?`

	result, err := r.db.ExecContext(ctx, query, tenantID, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete template: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected > 0, nil
}
