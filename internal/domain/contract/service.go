package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
)

type MissionService interface {
	CreateMission(ctx context.Context, req entity.CreateMissionRequest) (*entity.Mission, error)
	CreateFromTemplate(ctx context.Context, templateName string, req entity.CreateMissionRequest) (*entity.Mission, error)
	DeleteMission(ctx context.Context, tenantID, codename string) (bool, error)
	ListUpcoming(ctx context.Context, tenantID string, limit int) ([]*entity.Mission, error)
	ListTemplates(ctx context.Context, tenantID string) ([]*entity.Template, error)
	SaveTemplate(ctx context.Context, tenantID, name, description string) error
	DeleteTemplate(ctx context.Context, tenantID, name string) (bool, error)
	RSVPCounts(ctx context.Context, tenantID, codename string) (map[string]int, error)
	GetSettings(ctx context.Context, tenantID string) (*entity.TenantSettings, error)
	SetAnnounceChannel(ctx context.Context, tenantID, channelID string) error
	SetAnnounceIgnored(ctx context.Context, tenantID string, ignored bool) error
	FormatGame(t time.Time) string
	NowGame() time.Time
}

type RSVPService interface {
	Join(ctx context.Context, signal entity.RSVPSignal) error
	Leave(ctx context.Context, signal entity.RSVPSignal) error
}

// Notifier delivers rendered content to a destination and returns the
// announcement id of the delivered message.
type Notifier interface {
	Deliver(ctx context.Context, n entity.Notification) (string, error)
}
