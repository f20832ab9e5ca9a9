// Package notify holds the message model shared by the email and Slack channels.
package notify

import (
	"errors"
	"time"
)

// ErrChannelDisabled is returned by a channel that has no credentials configured.
var ErrChannelDisabled = errors.New("notification channel is not configured")

// Summary is the channel-neutral content of a meeting summary notification.
type Summary struct {
	Topic           string
	StartTime       time.Time
	DurationMinutes int
	Summary         string
	KeyPoints       []string
	ActionItems     []ActionItem
	// Link points at the meeting in the web app; empty when no public URL is configured.
	Link string
}

// ActionItem is an action item as shown in a notification.
type ActionItem struct {
	Description string
	Owner       string
	Deadline    *time.Time
	Priority    string
}

// Subject returns the notification title line.
func (s Summary) Subject() string {
	topic := s.Topic
	if topic == "" {
		topic = "Meeting"
	}
	return "Meeting summary: " + topic
}
