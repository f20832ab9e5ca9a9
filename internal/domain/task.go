package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is an action item attached to a meeting.
type Task struct {
	ID          uuid.UUID
	MeetingID   uuid.UUID
	AssigneeID  *uuid.UUID
	Description string
	Owner       *string
	Deadline    *time.Time
	Priority    TaskPriority
	Status      TaskStatus
	Source      TaskSource
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Analysis is the validated result of one LLM analysis run.
type Analysis struct {
	Summary            string
	KeyPoints          []string
	ActionItems        []ActionItem
	Sentiment          Sentiment
	Topics             []string
	SpeakerInsights    []SpeakerInsight
	EffectivenessScore float64
	Recommendations    []string
	// ItemErrors holds action items that failed validation and were dropped.
	ItemErrors []ItemError
}

// ActionItem is a validated action item produced by analysis.
type ActionItem struct {
	Description string
	Owner       *string
	Deadline    *time.Time
	Priority    TaskPriority
}

// ItemError reports a single failed item of a batch by position.
type ItemError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// Notes converts the analysis into the persisted AINotes shape.
func (a *Analysis) Notes() *AINotes {
	return &AINotes{
		Sentiment:       a.Sentiment,
		KeyPoints:       a.KeyPoints,
		Topics:          a.Topics,
		SpeakerInsights: a.SpeakerInsights,
		Recommendations: a.Recommendations,
	}
}

// Task builds an AI-sourced task for meetingID from the action item.
func (i ActionItem) Task(meetingID uuid.UUID) Task {
	return Task{
		MeetingID:   meetingID,
		Description: i.Description,
		Owner:       i.Owner,
		Deadline:    i.Deadline,
		Priority:    i.Priority,
		Status:      TaskStatusPending,
		Source:      TaskSourceAI,
	}
}
