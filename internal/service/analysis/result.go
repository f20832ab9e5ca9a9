package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// AnalyzeResult is the outcome of analyzing a stored meeting.
type AnalyzeResult struct {
	MeetingID     uuid.UUID
	Analysis      *domain.Analysis
	TasksCreated  int
	TasksReplaced int
	AnalyzedAt    time.Time
}
