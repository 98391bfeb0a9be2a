// Package gameclock translates between real UTC instants and the game clock,
// a single fixed UTC offset used for every scheduling decision and every time
// shown to users.
package gameclock

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/ops-reminder-bot/internal/domain"
	"github.com/jonboulle/clockwork"
)

type Translator struct {
	clock  clockwork.Clock
	loc    *time.Location
	offset int
}

// New returns a translator for a game clock offsetHours away from UTC.
func New(offsetHours int, clock clockwork.Clock) (*Translator, error) {
	if offsetHours < -12 || offsetHours > 14 {
		return nil, fmt.Errorf("game clock offset out of range: %d", offsetHours)
	}

	return &Translator{
		clock:  clock,
		loc:    time.FixedZone(label(offsetHours), offsetHours*int(time.Hour/time.Second)),
		offset: offsetHours,
	}, nil
}

func label(offsetHours int) string {
	switch {
	case offsetHours == 0:
		return "UTC"
	case offsetHours > 0:
		return fmt.Sprintf("UTC+%d", offsetHours)
	default:
		return fmt.Sprintf("UTC%d", offsetHours)
	}
}

// Label names the game clock zone, e.g. "UTC-2".
func (t *Translator) Label() string {
	return label(t.offset)
}

// Now returns the current real instant in UTC.
func (t *Translator) Now() time.Time {
	return t.clock.Now().UTC()
}

// NowGame returns the current instant expressed on the game clock.
func (t *Translator) NowGame() time.Time {
	return t.UTCToGame(t.clock.Now())
}

func (t *Translator) UTCToGame(instant time.Time) time.Time {
	return instant.In(t.loc)
}

// GameToUTC reads the wall clock fields of local as game clock time,
// ignoring whatever location local carries.
func (t *Translator) GameToUTC(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), t.loc).UTC()
}

// Parse reads a "YYYY-MM-DD HH:MM" game clock string into a UTC instant.
func (t *Translator) Parse(value string) (time.Time, error) {
	local, err := time.ParseInLocation(domain.GameTimeLayout, strings.TrimSpace(value), t.loc)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTimeFormat
	}

	return local.UTC(), nil
}

// Format renders instant with the fixed game clock pattern.
func (t *Translator) Format(instant time.Time) string {
	return t.UTCToGame(instant).Format(domain.GameTimeLayout)
}

// Date returns the game calendar date of instant.
func (t *Translator) Date(instant time.Time) string {
	return t.UTCToGame(instant).Format(domain.GameDateLayout)
}
