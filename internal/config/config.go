package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	SlackBotToken      string `env:"SLACK_BOT_TOKEN,required,notEmpty"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET,required,notEmpty"`
	// BotUserID skips the auth.test lookup when set.
	BotUserID    string `env:"SLACK_BOT_USER_ID"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./operations.db"`
	Port         string `env:"PORT" envDefault:"3000"`
	Debug        bool   `env:"DEBUG" envDefault:"false"`

	GameClockOffsetHours int           `env:"GAME_CLOCK_OFFSET_HOURS" envDefault:"-2"`
	RSVPEmoji            string        `env:"RSVP_EMOJI" envDefault:"white_check_mark"`
	DailyPollInterval    time.Duration `env:"DAILY_POLL_INTERVAL" envDefault:"5m"`
	DuelHour             int           `env:"DUEL_HOUR" envDefault:"19"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.GameClockOffsetHours < -12 || c.GameClockOffsetHours > 14 {
		return fmt.Errorf("GAME_CLOCK_OFFSET_HOURS out of range: %d", c.GameClockOffsetHours)
	}

	if c.DuelHour < 0 || c.DuelHour > 23 {
		return fmt.Errorf("DUEL_HOUR out of range: %d", c.DuelHour)
	}

	if c.DailyPollInterval < time.Second {
		return fmt.Errorf("DAILY_POLL_INTERVAL too small: %s", c.DailyPollInterval)
	}

	return nil
}
