package entity

import "time"

const RSVPStatusGoing = "going"

// RSVPPrompt binds a delivered announcement to the mission it announced.
type RSVPPrompt struct {
	AnnouncementID string
	TenantID       string
	Codename       string
	CreatedAt      time.Time
}

type RSVPStatus struct {
	TenantID      string
	Codename      string
	ParticipantID string
	Status        string
	UpdatedAt     time.Time
}

// RSVPSignal is a join or leave coming from a reaction on an announcement.
type RSVPSignal struct {
	AnnouncementID string
	ParticipantID  string
	Reaction       string
}
