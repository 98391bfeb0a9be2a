package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
)

// Recover rebuilds reminder tasks from the store. It must run once, before
// new scheduling commands are accepted; later calls return
// domain.ErrAlreadyRecovered.
func (r *reminder) Recover(ctx context.Context) error {
	err := domain.ErrAlreadyRecovered
	r.recoverOnce.Do(func() {
		err = r.recover(ctx)
	})
	return err
}

func (r *reminder) recover(ctx context.Context) error {
	r.tasks.reset()

	missions, err := r.dm.Mission().GetAllActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active missions: %w", err)
	}

	now := r.clock.Now()
	var armed, expired, corrupt int
	for _, m := range missions {
		if m.TargetUTC.IsZero() {
			corrupt++
			r.log.Errorw("skipping mission during recovery", "error", &domain.RecoveryError{
				TenantID: m.TenantID,
				Codename: m.Codename,
				Raw:      m.TargetRaw,
			})
			continue
		}

		if !m.TargetUTC.After(now) {
			expired++
			r.log.Infow("mission expired while offline, deleting", "tenant", m.TenantID, "codename", m.Codename)
			r.finish(ctx, m)
			continue
		}

		armed++
		r.arm(m, remainingStages(m.TargetUTC, now))
	}

	r.log.Infow("recovery complete", "armed", armed, "expired", expired, "corrupt", corrupt)
	return nil
}

// remainingStages keeps the stages whose deadline is not before now.
func remainingStages(target, now time.Time) []domain.Stage {
	var stages []domain.Stage
	for _, stage := range domain.Stages {
		if !target.Add(-stage.Lead).Before(now) {
			stages = append(stages, stage)
		}
	}
	return stages
}
