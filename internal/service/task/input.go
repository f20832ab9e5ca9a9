package task

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const (
	maxDescriptionLength = 2000
	maxOwnerLength       = 200
)

// CreateInput is a manually entered task.
type CreateInput struct {
	MeetingID   uuid.UUID
	Description string
	Owner       *string
	Deadline    *time.Time
	Priority    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if i.MeetingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meetingId", Message: "required"})
	}
	errs = append(errs, validateDescription(i.Description)...)
	errs = append(errs, validateOwner(i.Owner)...)
	if _, err := domain.ParseTaskPriority(i.Priority); err != nil {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH, URGENT"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput lists the fields to change. Nil fields are left alone.
type UpdateInput struct {
	TaskID      uuid.UUID
	Description *string
	Owner       *string
	Deadline    *time.Time
	Priority    *domain.TaskPriority
	Status      *domain.TaskStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "taskId", Message: "required"})
	}
	if i.Description != nil {
		errs = append(errs, validateDescription(*i.Description)...)
	}
	errs = append(errs, validateOwner(i.Owner)...)
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH, URGENT"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) changes() domain.TaskChanges {
	c := domain.TaskChanges{Owner: i.Owner, Deadline: i.Deadline, Priority: i.Priority, Status: i.Status}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		c.Description = &d
	}
	return c
}

func validateDescription(d string) []domain.FieldError {
	v := strings.TrimSpace(d)
	switch {
	case v == "":
		return []domain.FieldError{{Field: "description", Message: "required"}}
	case len(v) > maxDescriptionLength:
		return []domain.FieldError{{Field: "description", Message: "too long"}}
	}
	return nil
}

func validateOwner(o *string) []domain.FieldError {
	if o != nil && len(*o) > maxOwnerLength {
		return []domain.FieldError{{Field: "owner", Message: "too long"}}
	}
	return nil
}
