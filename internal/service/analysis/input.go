package analysis

import (
	"strings"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// AnalyzeTextInput is a transcript with optional meeting context.
type AnalyzeTextInput struct {
	Transcript      string
	Topic           string
	Speakers        []string
	DurationMinutes int
}

// Validate checks all fields and collects all errors. An empty transcript
// is domain.ErrNoTranscript rather than a validation error.
func (i AnalyzeTextInput) Validate() error {
	if strings.TrimSpace(i.Transcript) == "" {
		return domain.ErrNoTranscript
	}
	var errs []domain.FieldError
	if i.DurationMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "durationMinutes", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
