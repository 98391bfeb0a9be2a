package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Mission() MissionRepo
	Template() TemplateRepo
	RSVP() RSVPRepo
	DailyLog() DailyLogRepo
	Settings() SettingsRepo
}

// MissionRepo defines the contract for mission repository
type MissionRepo interface {
	Upsert(ctx context.Context, mission *entity.Mission) error
	Get(ctx context.Context, tenantID, codename string) (*entity.Mission, error)
	GetAllActive(ctx context.Context) ([]*entity.Mission, error)
	GetUpcoming(ctx context.Context, tenantID string, now time.Time, limit int) ([]*entity.Mission, error)
	Delete(ctx context.Context, tenantID, codename string) (bool, error)
}

// TemplateRepo defines the contract for template repository
type TemplateRepo interface {
	Save(ctx context.Context, template *entity.Template) error
	Get(ctx context.Context, tenantID, name string) (*entity.Template, error)
	List(ctx context.Context, tenantID string) ([]*entity.Template, error)
	Delete(ctx context.Context, tenantID, name string) (bool, error)
}

// RSVPRepo defines the contract for rsvp prompt and status repository
type RSVPRepo interface {
	CreatePrompt(ctx context.Context, prompt *entity.RSVPPrompt) error
	GetPrompt(ctx context.Context, announcementID string) (*entity.RSVPPrompt, error)
	SetStatus(ctx context.Context, status *entity.RSVPStatus) error
	DeleteStatus(ctx context.Context, tenantID, codename, participantID string) error
	GetCounts(ctx context.Context, tenantID, codename string) (map[string]int, error)
	GetMembers(ctx context.Context, tenantID, codename, status string) ([]string, error)
	DeleteByMission(ctx context.Context, tenantID, codename string) error
}

// DailyLogRepo defines the contract for the daily task log
type DailyLogRepo interface {
	Get(ctx context.Context, taskName string) (*entity.DailyTaskLog, error)
	Upsert(ctx context.Context, taskName, date string) error
	Claim(ctx context.Context, taskName, date string) (bool, error)
}

// SettingsRepo defines the contract for per-tenant settings
type SettingsRepo interface {
	Get(ctx context.Context, tenantID string) (*entity.TenantSettings, error)
	SetAnnounceChannel(ctx context.Context, tenantID, channelID string) error
	SetIgnored(ctx context.Context, tenantID string, ignored bool) error
	ListAnnouncing(ctx context.Context) ([]*entity.TenantSettings, error)
}
