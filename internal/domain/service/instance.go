package service

import (
	"github.com/diegoclair/ops-reminder-bot/internal/domain/contract"
)

type Instance struct {
	Missions  *missionService
	Reminders *reminder
	RSVP      *rsvpService
	Gate      *dailyGate
	Broadcast *broadcaster
}

// NewInstance wires every service. opts.GameClock is required.
func NewInstance(dm contract.DataManager, notifier contract.Notifier, opts Options) *Instance {
	opts.setDefaults()

	reminders := newReminder(dm, notifier, opts)
	gate := newDailyGate(dm)

	return &Instance{
		Missions:  newMission(dm, reminders, opts),
		Reminders: reminders,
		RSVP:      newRSVP(dm, opts),
		Gate:      gate,
		Broadcast: newBroadcaster(dm, gate, notifier, opts),
	}
}
