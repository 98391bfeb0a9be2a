package service

import (
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
	"github.com/diegoclair/ops-reminder-bot/internal/gameclock"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Options carries the shared dependencies of every service.
type Options struct {
	Clock             clockwork.Clock
	GameClock         *gameclock.Translator
	Logger            *zap.SugaredLogger
	BotUserID         string
	RSVPEmoji         string
	DailyPollInterval time.Duration
	DuelHour          int
}

func (o *Options) setDefaults() {
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	if o.RSVPEmoji == "" {
		o.RSVPEmoji = domain.DefaultRSVPEmoji
	}
	if o.DailyPollInterval <= 0 {
		o.DailyPollInterval = 5 * time.Minute
	}
}
