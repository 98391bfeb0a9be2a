package entity

import "time"

type TenantSettings struct {
	TenantID          string
	AnnounceChannelID string
	AnnounceIgnored   bool
	UpdatedAt         time.Time
}

// CanAnnounce reports whether scheduled output has somewhere to go.
func (s *TenantSettings) CanAnnounce() bool {
	return s != nil && s.AnnounceChannelID != "" && !s.AnnounceIgnored
}

type DailyTaskLog struct {
	TaskName    string
	LastRunDate string
}
