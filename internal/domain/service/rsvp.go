package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// rsvpService turns reactions on an announcement into participation records
// for the mission the announcement was bound to.
type rsvpService struct {
	dm        contract.DataManager
	botUserID string
	emoji     string
	log       *zap.SugaredLogger
}

func newRSVP(dm contract.DataManager, opts Options) *rsvpService {
	return &rsvpService{
		dm:        dm,
		botUserID: opts.BotUserID,
		emoji:     opts.RSVPEmoji,
		log:       opts.Logger.Named("rsvp"),
	}
}

// Join marks the participant as going. Unknown announcements, other
// reactions and the bot's own reactions are ignored.
func (s *rsvpService) Join(ctx context.Context, signal entity.RSVPSignal) error {
	prompt, err := s.resolve(ctx, signal)
	if err != nil || prompt == nil {
		return err
	}

	err = s.dm.RSVP().SetStatus(ctx, &entity.RSVPStatus{
		TenantID:      prompt.TenantID,
		Codename:      prompt.Codename,
		ParticipantID: signal.ParticipantID,
		Status:        entity.RSVPStatusGoing,
	})
	if err != nil {
		return fmt.Errorf("failed to record rsvp: %w", err)
	}

	rsvpSignalsMetric.WithLabelValues("join").Inc()
	s.log.Infow("participant joined", "tenant", prompt.TenantID, "codename", prompt.Codename,
		"participant", signal.ParticipantID)
	return nil
}

// Leave removes the participant's record, if any.
func (s *rsvpService) Leave(ctx context.Context, signal entity.RSVPSignal) error {
	prompt, err := s.resolve(ctx, signal)
	if err != nil || prompt == nil {
		return err
	}

	if err := s.dm.RSVP().DeleteStatus(ctx, prompt.TenantID, prompt.Codename, signal.ParticipantID); err != nil {
		return fmt.Errorf("failed to remove rsvp: %w", err)
	}

	rsvpSignalsMetric.WithLabelValues("leave").Inc()
	s.log.Infow("participant left", "tenant", prompt.TenantID, "codename", prompt.Codename,
		"participant", signal.ParticipantID)
	return nil
}

func (s *rsvpService) Counts(ctx context.Context, tenantID, codename string) (map[string]int, error) {
	return s.dm.RSVP().GetCounts(ctx, tenantID, codename)
}

func (s *rsvpService) Members(ctx context.Context, tenantID, codename, status string) ([]string, error) {
	return s.dm.RSVP().GetMembers(ctx, tenantID, codename, status)
}

func (s *rsvpService) resolve(ctx context.Context, signal entity.RSVPSignal) (*entity.RSVPPrompt, error) {
	if signal.ParticipantID == "" || signal.ParticipantID == s.botUserID {
		return nil, nil
	}

	if s.emoji != "" && signal.Reaction != s.emoji {
		return nil, nil
	}

	prompt, err := s.dm.RSVP().GetPrompt(ctx, signal.AnnouncementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvp prompt: %w", err)
	}

	return prompt, nil
}
