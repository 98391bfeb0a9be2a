package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
)

// GateKey names a recurring task. Segments are escaped independently so
// neither a tenant id nor a family can run into another key.
type GateKey struct {
	Family string
	Tenant string
	Slot   string
}

func (k GateKey) String() string {
	return strings.Join([]string{
		url.PathEscape(k.Family),
		url.PathEscape(k.Tenant),
		url.PathEscape(k.Slot),
	}, "/")
}

// dailyGate lets a recurring task run at most once per game calendar date.
type dailyGate struct {
	dm contract.DataManager
}

func newDailyGate(dm contract.DataManager) *dailyGate {
	return &dailyGate{dm: dm}
}

// CanRun is true when the task has no record or last ran on another date.
func (g *dailyGate) CanRun(ctx context.Context, key GateKey, date string) (bool, error) {
	log, err := g.dm.DailyLog().Get(ctx, key.String())
	if err != nil {
		return false, fmt.Errorf("failed to check daily gate: %w", err)
	}

	return log == nil || log.LastRunDate != date, nil
}

func (g *dailyGate) MarkComplete(ctx context.Context, key GateKey, date string) error {
	if err := g.dm.DailyLog().Upsert(ctx, key.String(), date); err != nil {
		return fmt.Errorf("failed to mark daily task: %w", err)
	}
	return nil
}

// TryRun checks and marks in one statement, so two overlapping polls can
// never both win the same date.
func (g *dailyGate) TryRun(ctx context.Context, key GateKey, date string) (bool, error) {
	ok, err := g.dm.DailyLog().Claim(ctx, key.String(), date)
	if err != nil {
		return false, fmt.Errorf("failed to claim daily task: %w", err)
	}
	return ok, nil
}
