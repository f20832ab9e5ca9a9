package domain

import "time"

// Document is the format-neutral representation every export renderer consumes.
// Sections that were not requested are left empty; Transcript is nil unless
// the transcript was explicitly included.
type Document struct {
	Title           string
	StartTime       time.Time
	DurationMinutes int
	GeneratedAt     time.Time

	Summary         string
	KeyPoints       []string
	Sentiment       Sentiment
	Score           *float64
	ActionItems     []DocumentActionItem
	SpeakerInsights []SpeakerInsight
	Transcript      []TranscriptSegment
}

// DocumentActionItem is an action item as shown in an export.
type DocumentActionItem struct {
	Description string     `json:"description"`
	Owner       string     `json:"owner,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
}

// HasSummary reports whether the summary section is present.
func (d *Document) HasSummary() bool { return d.Summary != "" || len(d.KeyPoints) > 0 }
