package meeting

import (
	"io"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	defaultSyncRange = 30 * 24 * time.Hour
	maxSyncRange     = 366 * 24 * time.Hour
)

// SyncInput bounds a sync by meeting start time. Both ends are optional.
type SyncInput struct {
	From *time.Time
	To   *time.Time
}

// Validate checks all fields and collects all errors.
func (i SyncInput) Validate() error {
	var errs []domain.FieldError
	if i.From != nil && i.To != nil {
		if i.From.After(*i.To) {
			errs = append(errs, domain.FieldError{Field: "from", Message: "must not be after to"})
		} else if i.To.Sub(*i.From) > maxSyncRange {
			errs = append(errs, domain.FieldError{Field: "from", Message: "range must not exceed one year"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput pages through the caller's meetings.
type ListInput struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.From != nil && i.To != nil && i.From.After(*i.To) {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must not be after to"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UploadCSVInput is a CSV document of meetings with transcripts.
type UploadCSVInput struct {
	Reader  io.Reader
	Analyze bool
}

// Validate checks all fields and collects all errors.
func (i UploadCSVInput) Validate() error {
	if i.Reader == nil {
		return domain.NewValidationError("file", "required")
	}
	return nil
}
