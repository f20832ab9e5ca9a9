package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// List returns the tasks of one of the caller's meetings.
func (s *Service) List(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.meetings.GetByID(ctx, userID, meetingID); err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	tasks, err := s.tasks.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Create adds a manual task to one of the caller's meetings.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.meetings.GetByID(ctx, userID, input.MeetingID); err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}

	priority, _ := domain.ParseTaskPriority(input.Priority)
	t := &domain.Task{
		MeetingID:   input.MeetingID,
		Description: strings.TrimSpace(input.Description),
		Owner:       input.Owner,
		Deadline:    input.Deadline,
		Priority:    priority,
		Status:      domain.TaskStatusPending,
		Source:      domain.TaskSourceManual,
	}
	created, err := s.tasks.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("meeting_id", input.MeetingID.String()),
		slog.String("task_id", created.ID.String()),
	)
	return created, nil
}

// Update changes the given fields of a task on one of the caller's meetings.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.tasks.Update(ctx, userID, input.TaskID, input.changes())
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

// Delete removes a task on one of the caller's meetings.
func (s *Service) Delete(ctx context.Context, taskID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.tasks.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
	)
	return nil
}
