package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// List returns a page of the caller's meetings, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	meetings, total, err := s.meetings.List(ctx, userID, domain.MeetingFilter{
		From:   input.From,
		To:     input.To,
		Limit:  uint64(limit),
		Offset: uint64(input.Offset),
	})
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	if meetings == nil {
		meetings = []domain.Meeting{}
	}
	return &ListResult{Meetings: meetings, Total: total}, nil
}

// Get returns one of the caller's meetings.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	m, err := s.meetings.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	return m, nil
}

// Delete removes a meeting with its recordings, tasks and exports. Stored
// files are removed after the rows; a file that cannot be removed is logged.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if _, err := s.meetings.GetByID(ctx, userID, id); err != nil {
		return fmt.Errorf("get meeting: %w", err)
	}

	// The rows cascade away with the meeting, so collect names first.
	recordingFiles := s.fileNames(ctx, s.recordings, id)
	exportFiles := s.fileNames(ctx, s.exports, id)

	if err := s.meetings.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}

	s.removeFiles(ctx, s.recordings, recordingFiles)
	s.removeFiles(ctx, s.exports, exportFiles)

	s.log.InfoContext(ctx, "meeting deleted",
		slog.String("user_id", userID.String()),
		slog.String("meeting_id", id.String()),
		slog.Int("files", len(recordingFiles)+len(exportFiles)),
	)
	return nil
}

func (s *Service) fileNames(ctx context.Context, f Files, meetingID uuid.UUID) []string {
	if f.Index == nil {
		return nil
	}
	names, err := f.Index.FileNamesByMeeting(ctx, meetingID)
	if err != nil {
		s.log.WarnContext(ctx, "list meeting files",
			slog.String("meeting_id", meetingID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return names
}

func (s *Service) removeFiles(ctx context.Context, f Files, names []string) {
	if f.Blobs == nil {
		return
	}
	for _, name := range names {
		if err := f.Blobs.Remove(name); err != nil {
			s.log.WarnContext(ctx, "remove meeting file",
				slog.String("file_name", name),
				slog.String("error", err.Error()),
			)
		}
	}
}
