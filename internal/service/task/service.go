// Package task manages the action items of a meeting.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type meetingRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Meeting, error)
}

type taskRepo interface {
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, userID, id uuid.UUID, c domain.TaskChanges) (*domain.Task, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service implements task operations.
type Service struct {
	log      *slog.Logger
	meetings meetingRepo
	tasks    taskRepo
}

// NewService creates a task service.
func NewService(logger *slog.Logger, meetings meetingRepo, tasks taskRepo) *Service {
	return &Service{
		log:      logger.With("service", "task"),
		meetings: meetings,
		tasks:    tasks,
	}
}
