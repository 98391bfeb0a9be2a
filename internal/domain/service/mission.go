package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/ops-reminder-bot/internal/gameclock"
	"go.uber.org/zap"
)

type missionService struct {
	dm        contract.DataManager
	reminders *reminder
	gc        *gameclock.Translator
	log       *zap.SugaredLogger
}

func newMission(dm contract.DataManager, reminders *reminder, opts Options) *missionService {
	return &missionService{
		dm:        dm,
		reminders: reminders,
		gc:        opts.GameClock,
		log:       opts.Logger.Named("mission"),
	}
}

func normalizeCodename(codename string) string {
	return strings.ToUpper(strings.TrimSpace(codename))
}

func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *missionService) CreateMission(ctx context.Context, req entity.CreateMissionRequest) (*entity.Mission, error) {
	codename := normalizeCodename(req.Codename)
	if codename == "" {
		return nil, domain.NewValidationError("codename", domain.ErrEmptyCodename)
	}

	target, err := s.gc.Parse(req.TargetTime)
	if err != nil {
		return nil, domain.NewValidationError("time", err)
	}

	if !target.After(s.gc.Now()) {
		return nil, domain.NewValidationError("time", domain.ErrPastTime)
	}

	existing, err := s.dm.Mission().Get(ctx, req.TenantID, codename)
	if err != nil {
		return nil, fmt.Errorf("failed to check mission: %w", err)
	}

	if existing != nil {
		return nil, domain.NewValidationError("codename", domain.ErrDuplicateCodename)
	}

	mission := &entity.Mission{
		TenantID:      req.TenantID,
		Codename:      codename,
		Description:   strings.TrimSpace(req.Description),
		TargetDisplay: s.gc.Format(target),
		TargetUTC:     target,
		Location:      strings.TrimSpace(req.Location),
		PingTarget:    strings.TrimSpace(req.PingTarget),
		Tag:           strings.TrimSpace(req.Tag),
		Notes:         strings.TrimSpace(req.Notes),
		CreatedBy:     req.CreatedBy,
	}

	if err := s.dm.Mission().Upsert(ctx, mission); err != nil {
		return nil, fmt.Errorf("failed to save mission: %w", err)
	}

	s.reminders.Schedule(ctx, mission)

	s.log.Infow("mission created", "tenant", mission.TenantID, "codename", mission.Codename,
		"target", mission.TargetDisplay, "created_by", mission.CreatedBy)

	return mission, nil
}

// CreateFromTemplate creates a mission whose description comes from a saved
// template. Extra text in req.Description is appended.
func (s *missionService) CreateFromTemplate(ctx context.Context, templateName string, req entity.CreateMissionRequest) (*entity.Mission, error) {
	name := normalizeTemplateName(templateName)
	if name == "" {
		return nil, domain.NewValidationError("template", domain.ErrEmptyName)
	}

	template, err := s.dm.Template().Get(ctx, req.TenantID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if template == nil {
		return nil, domain.NewValidationError("template", domain.ErrTemplateNotFound)
	}

	description := template.Description
	if extra := strings.TrimSpace(req.Description); extra != "" {
		description += "\n" + extra
	}
	req.Description = description

	return s.CreateMission(ctx, req)
}

// DeleteMission removes the mission and stops its reminders. Deleting a
// mission that already finished is not an error; deleted reports whether a
// record existed.
func (s *missionService) DeleteMission(ctx context.Context, tenantID, codename string) (bool, error) {
	codename = normalizeCodename(codename)

	deleted, err := deleteMission(ctx, s.dm, tenantID, codename)
	if err != nil {
		return false, err
	}

	s.reminders.Cancel(entity.MissionKey{TenantID: tenantID, Codename: codename})

	if deleted {
		s.log.Infow("mission cancelled", "tenant", tenantID, "codename", codename)
	}

	return deleted, nil
}

func (s *missionService) ListUpcoming(ctx context.Context, tenantID string, limit int) ([]*entity.Mission, error) {
	if limit <= 0 {
		limit = domain.DefaultUpcomingLimit
	}
	if limit > domain.MaxUpcomingLimit {
		limit = domain.MaxUpcomingLimit
	}

	return s.dm.Mission().GetUpcoming(ctx, tenantID, s.gc.Now(), limit)
}

func (s *missionService) ListTemplates(ctx context.Context, tenantID string) ([]*entity.Template, error) {
	return s.dm.Template().List(ctx, tenantID)
}

func (s *missionService) SaveTemplate(ctx context.Context, tenantID, name, description string) error {
	name = normalizeTemplateName(name)
	if name == "" {
		return domain.NewValidationError("name", domain.ErrEmptyName)
	}

	return s.dm.Template().Save(ctx, &entity.Template{
		TenantID:    tenantID,
		Name:        name,
		Description: strings.TrimSpace(description),
	})
}

func (s *missionService) DeleteTemplate(ctx context.Context, tenantID, name string) (bool, error) {
	return s.dm.Template().Delete(ctx, tenantID, normalizeTemplateName(name))
}

func (s *missionService) RSVPCounts(ctx context.Context, tenantID, codename string) (map[string]int, error) {
	return s.dm.RSVP().GetCounts(ctx, tenantID, normalizeCodename(codename))
}

func (s *missionService) GetSettings(ctx context.Context, tenantID string) (*entity.TenantSettings, error) {
	return s.dm.Settings().Get(ctx, tenantID)
}

func (s *missionService) SetAnnounceChannel(ctx context.Context, tenantID, channelID string) error {
	return s.dm.Settings().SetAnnounceChannel(ctx, tenantID, channelID)
}

func (s *missionService) SetAnnounceIgnored(ctx context.Context, tenantID string, ignored bool) error {
	return s.dm.Settings().SetIgnored(ctx, tenantID, ignored)
}

// FormatGame renders an instant on the game clock, zone label included.
func (s *missionService) FormatGame(t time.Time) string {
	return s.gc.Format(t) + " " + s.gc.Label()
}

func (s *missionService) NowGame() time.Time {
	return s.gc.NowGame()
}
