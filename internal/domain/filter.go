package domain

import (
	"time"

	"github.com/google/uuid"
)

// MeetingFilter narrows meeting listings. Zero values mean "no constraint".
type MeetingFilter struct {
	From     *time.Time
	To       *time.Time
	ZoomOnly bool
	IDs      []uuid.UUID
	Limit    uint64
	Offset   uint64
}

// AnalysisUpdate carries the analysis columns written after an LLM run.
type AnalysisUpdate struct {
	Summary            string
	BulletPoints       []string
	AINotes            *AINotes
	Sentiment          Sentiment
	EffectivenessScore float64
	AnalyzedAt         time.Time
}

// TaskChanges lists the task fields to overwrite. Nil fields are left alone.
type TaskChanges struct {
	Description *string
	Owner       *string
	Deadline    *time.Time
	Priority    *TaskPriority
	Status      *TaskStatus
}

// IsEmpty reports whether no field is set.
func (c TaskChanges) IsEmpty() bool {
	return c.Description == nil && c.Owner == nil && c.Deadline == nil && c.Priority == nil && c.Status == nil
}
