package entity

import "strings"

type MentionPolicy int

const (
	// MentionNone renders the content without any broadcast mention.
	MentionNone MentionPolicy = iota
	// MentionTarget prefixes the content with the mission ping target.
	MentionTarget
)

type Notification struct {
	Destination string
	Content     string
	PingTarget  string
	Mention     MentionPolicy
	// SeedReaction, when set, is added to the delivered message so members
	// have something to click.
	SeedReaction string
}

// AnnouncementID builds the identifier of a delivered Slack message.
func AnnouncementID(channelID, timestamp string) string {
	return channelID + ":" + timestamp
}

// SplitAnnouncementID is the inverse of AnnouncementID.
func SplitAnnouncementID(id string) (channelID, timestamp string, ok bool) {
	return strings.Cut(id, ":")
}
