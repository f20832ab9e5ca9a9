package notification

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const maxRecipients = 50

// ShareInput selects a meeting and the channels to share it on.
type ShareInput struct {
	MeetingID          uuid.UUID
	Recipients         []string
	SlackChannel       string
	IncludeActionItems bool
}

// Validate checks all fields and collects all errors.
func (i ShareInput) Validate() error {
	var errs []domain.FieldError

	if i.MeetingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meetingId", Message: "required"})
	}
	if len(i.Recipients) == 0 && strings.TrimSpace(i.SlackChannel) == "" {
		errs = append(errs, domain.FieldError{Field: "recipients", Message: "at least one recipient or a Slack channel is required"})
	}
	if len(i.Recipients) > maxRecipients {
		errs = append(errs, domain.FieldError{Field: "recipients", Message: fmt.Sprintf("at most %d recipients", maxRecipients)})
	}
	for n, r := range i.Recipients {
		if _, err := mail.ParseAddress(strings.TrimSpace(r)); err != nil {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("recipients[%d]", n),
				Message: "invalid email address",
			})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// addresses returns the bare, de-duplicated recipient addresses. It must
// only be called on validated input.
func (i ShareInput) addresses() []string {
	seen := make(map[string]bool, len(i.Recipients))
	out := make([]string, 0, len(i.Recipients))
	for _, r := range i.Recipients {
		addr, err := mail.ParseAddress(strings.TrimSpace(r))
		if err != nil {
			continue
		}
		key := strings.ToLower(addr.Address)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, addr.Address)
	}
	return out
}
