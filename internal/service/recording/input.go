package recording

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const (
	defaultBatchLimit = 10
	defaultBatchMax   = 50
)

// ImportInput selects the files of one meeting to import. An empty
// FileTypes imports every type.
type ImportInput struct {
	MeetingID uuid.UUID
	FileTypes []domain.RecordingFileType
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError
	if i.MeetingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meetingId", Message: "required"})
	}
	errs = append(errs, validateFileTypes(i.FileTypes)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BatchImportInput selects meetings either by ID or by start time range.
type BatchImportInput struct {
	MeetingIDs []uuid.UUID
	From       *time.Time
	To         *time.Time
	FileTypes  []domain.RecordingFileType
	Limit      int
}

// Validate checks all fields against maxMeetings and collects all errors.
func (i BatchImportInput) Validate(maxMeetings int) error {
	var errs []domain.FieldError
	if len(i.MeetingIDs) == 0 && i.From == nil && i.To == nil {
		errs = append(errs, domain.FieldError{Field: "meetingIds", Message: "meeting IDs or a date range is required"})
	}
	if len(i.MeetingIDs) > maxMeetings {
		errs = append(errs, domain.FieldError{Field: "meetingIds", Message: fmt.Sprintf("max %d meetings", maxMeetings)})
	}
	for _, id := range i.MeetingIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "meetingIds", Message: "must not contain empty IDs"})
			break
		}
	}
	if i.From != nil && i.To != nil && i.From.After(*i.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must not be after to"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	errs = append(errs, validateFileTypes(i.FileTypes)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateFileTypes(types []domain.RecordingFileType) []domain.FieldError {
	for _, t := range types {
		if !t.IsValid() {
			return []domain.FieldError{{Field: "recordingTypes", Message: fmt.Sprintf("unknown type %q", t)}}
		}
	}
	return nil
}

// ParseFileTypes normalizes user-supplied type names.
func ParseFileTypes(names []string) []domain.RecordingFileType {
	out := make([]domain.RecordingFileType, 0, len(names))
	for _, n := range names {
		if n = strings.ToUpper(strings.TrimSpace(n)); n != "" {
			out = append(out, domain.RecordingFileType(n))
		}
	}
	return out
}
