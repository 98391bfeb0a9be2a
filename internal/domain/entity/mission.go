package entity

import "time"

// PingEveryone is the ping target sentinel that mentions the whole channel.
const PingEveryone = "everyone"

type Mission struct {
	TenantID      string
	Codename      string
	Description   string
	TargetDisplay string
	TargetUTC     time.Time
	// TargetRaw is the persisted ISO-8601 form of TargetUTC. It is only set on
	// reads; TargetUTC stays zero when TargetRaw cannot be parsed.
	TargetRaw  string
	Location   string
	PingTarget string
	Tag        string
	Notes      string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Key identifies a mission inside the whole process.
func (m *Mission) Key() MissionKey {
	return MissionKey{TenantID: m.TenantID, Codename: m.Codename}
}

type MissionKey struct {
	TenantID string
	Codename string
}

func (k MissionKey) String() string {
	return k.TenantID + "/" + k.Codename
}

// CreateMissionRequest carries the raw values typed by a user.
type CreateMissionRequest struct {
	TenantID    string
	Codename    string
	Description string
	TargetTime  string // game clock, YYYY-MM-DD HH:MM
	Location    string
	PingTarget  string
	Tag         string
	Notes       string
	CreatedBy   string
}

type Template struct {
	TenantID    string
	Name        string
	Description string
	CreatedAt   time.Time
}
