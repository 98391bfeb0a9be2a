package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/ops-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/ops-reminder-bot/internal/gameclock"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// reminder runs one goroutine per active mission. Each goroutine walks the
// remaining stages in order, sleeping until every stage deadline.
type reminder struct {
	dm        contract.DataManager
	notifier  contract.Notifier
	clock     clockwork.Clock
	gc        *gameclock.Translator
	tasks     *taskRegistry
	log       *zap.SugaredLogger
	rsvpEmoji string

	baseCtx     context.Context
	stop        context.CancelFunc
	wg          sync.WaitGroup
	recoverOnce sync.Once
}

func newReminder(dm contract.DataManager, notifier contract.Notifier, opts Options) *reminder {
	ctx, cancel := context.WithCancel(context.Background())

	return &reminder{
		dm:        dm,
		notifier:  notifier,
		clock:     opts.Clock,
		gc:        opts.GameClock,
		tasks:     newTaskRegistry(),
		log:       opts.Logger.Named("reminder"),
		rsvpEmoji: opts.RSVPEmoji,
		baseCtx:   ctx,
		stop:      cancel,
	}
}

// Schedule arms every stage of a mission. Stages whose deadline already
// passed fire right away, in order. A mission that is already over is
// deleted without firing anything.
func (r *reminder) Schedule(ctx context.Context, m *entity.Mission) {
	if !m.TargetUTC.After(r.clock.Now()) {
		r.log.Infow("mission already past its target, deleting", "tenant", m.TenantID, "codename", m.Codename)
		r.finish(ctx, m)
		return
	}

	r.arm(m, domain.Stages)
}

// Cancel stops the in-memory task of a mission; false when none was running.
func (r *reminder) Cancel(key entity.MissionKey) bool {
	return r.tasks.cancel(key)
}

// Active reports how many reminder tasks are running.
func (r *reminder) Active() int {
	return r.tasks.len()
}

// Stop cancels every task and waits for them to return.
func (r *reminder) Stop() {
	r.log.Info("Reminder scheduler stopping...")
	r.stop()
	r.wg.Wait()
}

func (r *reminder) arm(m *entity.Mission, stages []domain.Stage) {
	if len(stages) == 0 {
		return
	}

	taskCtx, cancel := context.WithCancel(r.baseCtx)
	key := m.Key()
	id := r.tasks.add(key, cancel)

	reminderTasksMetric.Inc()
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer reminderTasksMetric.Dec()
		defer r.tasks.done(key, id)
		defer cancel()

		r.run(taskCtx, m, stages)
	}()

	r.log.Debugw("reminder armed", "tenant", m.TenantID, "codename", m.Codename,
		"first_stage", stages[0].Key, "target", m.TargetUTC)
}

func (r *reminder) run(ctx context.Context, m *entity.Mission, stages []domain.Stage) {
	log := r.log.With("tenant", m.TenantID, "codename", m.Codename)

	for _, stage := range stages {
		if !r.sleepUntil(ctx, m.TargetUTC.Add(-stage.Lead)) {
			log.Debugw("reminder task cancelled", "stage", stage.Key)
			return
		}

		current, err := r.dm.Mission().Get(ctx, m.TenantID, m.Codename)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			// transient, the next stage checks again
			log.Warnw("failed to check mission, skipping stage", "stage", stage.Key, "error", err)
			stageAttemptsMetric.WithLabelValues(stage.Key, resultStoreError).Inc()
			continue
		}

		if current == nil {
			log.Infow("mission no longer exists, stopping reminders", "stage", stage.Key)
			return
		}

		r.fire(ctx, current, stage)
	}

	r.finish(ctx, m)
}

// sleepUntil blocks until deadline; false when ctx ends first.
func (r *reminder) sleepUntil(ctx context.Context, deadline time.Time) bool {
	wait := deadline.Sub(r.clock.Now())
	if wait <= 0 {
		return ctx.Err() == nil
	}

	timer := r.clock.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}

func (r *reminder) fire(ctx context.Context, m *entity.Mission, stage domain.Stage) {
	log := r.log.With("tenant", m.TenantID, "codename", m.Codename, "stage", stage.Key)

	settings, err := r.dm.Settings().Get(ctx, m.TenantID)
	if err != nil {
		log.Warnw("failed to load tenant settings, skipping stage", "error", err)
		stageAttemptsMetric.WithLabelValues(stage.Key, resultStoreError).Inc()
		return
	}

	if !settings.CanAnnounce() {
		log.Debug("no announcement channel, skipping delivery")
		stageAttemptsMetric.WithLabelValues(stage.Key, resultSkipped).Inc()
		return
	}

	notification := entity.Notification{
		Destination: settings.AnnounceChannelID,
		Content:     renderStage(stage, m, r.gc, r.rsvpEmoji),
		PingTarget:  m.PingTarget,
		Mention:     mentionFor(stage),
	}
	if stage.Key == domain.StageT60 {
		notification.SeedReaction = r.rsvpEmoji
	}

	announcementID, err := r.notifier.Deliver(ctx, notification)
	if err != nil {
		log.Warnw("failed to deliver stage", "channel", settings.AnnounceChannelID, "error", err)
		stageAttemptsMetric.WithLabelValues(stage.Key, resultFailed).Inc()
	} else {
		log.Infow("stage delivered", "channel", settings.AnnounceChannelID)
		stageAttemptsMetric.WithLabelValues(stage.Key, resultDelivered).Inc()
	}

	if stage.Key == domain.StageT60 {
		if err == nil && announcementID != "" {
			r.bindPrompt(ctx, m, announcementID)
		}
		return
	}

	r.remindGoing(ctx, m, stage)
}

func (r *reminder) bindPrompt(ctx context.Context, m *entity.Mission, announcementID string) {
	err := r.dm.RSVP().CreatePrompt(ctx, &entity.RSVPPrompt{
		AnnouncementID: announcementID,
		TenantID:       m.TenantID,
		Codename:       m.Codename,
	})
	if err != nil {
		r.log.Warnw("failed to bind rsvp prompt", "tenant", m.TenantID, "codename", m.Codename,
			"announcement", announcementID, "error", err)
	}
}

func (r *reminder) remindGoing(ctx context.Context, m *entity.Mission, stage domain.Stage) {
	members, err := r.dm.RSVP().GetMembers(ctx, m.TenantID, m.Codename, entity.RSVPStatusGoing)
	if err != nil {
		r.log.Warnw("failed to load rsvp members", "tenant", m.TenantID, "codename", m.Codename, "error", err)
		return
	}

	content := renderDirect(stage, m, r.gc)
	for _, member := range members {
		_, err := r.notifier.Deliver(ctx, entity.Notification{
			Destination: member,
			Content:     content,
			Mention:     entity.MentionNone,
		})
		if err != nil {
			r.log.Warnw("failed to send direct reminder", "tenant", m.TenantID, "codename", m.Codename,
				"participant", member, "error", err)
			directRemindersMetric.WithLabelValues(resultFailed).Inc()
			continue
		}
		directRemindersMetric.WithLabelValues(resultDelivered).Inc()
	}
}

// finish removes a mission and its rsvp rows after its last stage.
func (r *reminder) finish(ctx context.Context, m *entity.Mission) {
	if _, err := deleteMission(ctx, r.dm, m.TenantID, m.Codename); err != nil {
		r.log.Errorw("failed to delete finished mission", "tenant", m.TenantID, "codename", m.Codename, "error", err)
		return
	}

	r.log.Infow("mission complete", "tenant", m.TenantID, "codename", m.Codename)
}

// deleteMission drops the mission and its rsvp data in one transaction.
func deleteMission(ctx context.Context, dm contract.DataManager, tenantID, codename string) (bool, error) {
	var deleted bool
	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		var err error
		deleted, err = tx.Mission().Delete(ctx, tenantID, codename)
		if err != nil {
			return err
		}

		return tx.RSVP().DeleteByMission(ctx, tenantID, codename)
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete mission %s/%s: %w", tenantID, codename, err)
	}

	return deleted, nil
}
