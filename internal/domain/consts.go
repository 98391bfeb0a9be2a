package domain

import "time"

// Stage is one countdown reminder, fired Lead before the mission target.
type Stage struct {
	Key  string
	Lead time.Duration
}

const (
	StageT60 = "t60"
	StageT30 = "t30"
	StageT15 = "t15"
	StageT3  = "t3"
	StageT0  = "t0"
)

// Stages are ordered from the longest lead time to the mission start.
var Stages = []Stage{
	{Key: StageT60, Lead: 60 * time.Minute},
	{Key: StageT30, Lead: 30 * time.Minute},
	{Key: StageT15, Lead: 15 * time.Minute},
	{Key: StageT3, Lead: 3 * time.Minute},
	{Key: StageT0, Lead: 0},
}

// StageIndex maps stage keys to their position in Stages
var StageIndex = map[string]int{
	StageT60: 0,
	StageT30: 1,
	StageT15: 2,
	StageT3:  3,
	StageT0:  4,
}

// GameTimeLayout is the only accepted input/display pattern for game clock times.
const GameTimeLayout = "2006-01-02 15:04"

// GameDateLayout is used for daily gate records.
const GameDateLayout = "2006-01-02"

// StoredTimeLayout is how target instants are persisted (ISO-8601, UTC).
const StoredTimeLayout = "2006-01-02T15:04:05Z"

const (
	DefaultUpcomingLimit = 10
	MaxUpcomingLimit     = 25
)

// DefaultRSVPEmoji is the reaction that registers a participant as going
const DefaultRSVPEmoji = "white_check_mark"
