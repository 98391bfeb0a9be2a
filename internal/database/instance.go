package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	missionRepo  contract.MissionRepo
	templateRepo contract.TemplateRepo
	rsvpRepo     contract.RSVPRepo
	dailyLogRepo contract.DailyLogRepo
	settingsRepo contract.SettingsRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		missionRepo:  newMissionRepo(db),
		templateRepo: newTemplateRepo(db),
		rsvpRepo:     newRSVPRepo(db),
		dailyLogRepo: newDailyLogRepo(db),
		settingsRepo: newSettingsRepo(db),
	}
}

// Mission returns the mission repository
func (i *instance) Mission() contract.MissionRepo {
	return i.missionRepo
}

// Template returns the template repository
func (i *instance) Template() contract.TemplateRepo {
	return i.templateRepo
}

// RSVP returns the rsvp repository
func (i *instance) RSVP() contract.RSVPRepo {
	return i.rsvpRepo
}

// DailyLog returns the daily task log repository
func (i *instance) DailyLog() contract.DailyLogRepo {
	return i.dailyLogRepo
}

// Settings returns the tenant settings repository
func (i *instance) Settings() contract.SettingsRepo {
	return i.settingsRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
