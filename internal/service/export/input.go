package export

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// ExportInput selects a meeting, a format and the sections to include.
type ExportInput struct {
	MeetingID              uuid.UUID
	Format                 domain.ExportFormat
	IncludeSummary         bool
	IncludeTranscript      bool
	IncludeActionItems     bool
	IncludeSpeakerInsights bool
}

// Validate checks all fields and collects all errors.
func (i ExportInput) Validate() error {
	var errs []domain.FieldError
	if i.MeetingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meetingId", Message: "required"})
	}
	if !i.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be one of PDF, WORD, MARKDOWN, JSON"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
