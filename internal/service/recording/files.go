package recording

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// ListRecordings returns the imported recordings of an owned meeting.
func (s *Service) ListRecordings(ctx context.Context, meetingID uuid.UUID) ([]domain.Recording, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.meetings.GetByID(ctx, userID, meetingID); err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	recs, err := s.recordings.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	return recs, nil
}

// DeleteRecording removes the row, then its file. A file that cannot be
// removed is logged and left behind.
func (s *Service) DeleteRecording(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	rec, err := s.recordings.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete recording: %w", err)
	}
	if err := s.blobs.Remove(rec.FileName); err != nil {
		s.log.WarnContext(ctx, "remove recording file",
			slog.String("file_name", rec.FileName),
			slog.String("error", err.Error()),
		)
	}
	s.log.InfoContext(ctx, "recording deleted",
		slog.String("user_id", userID.String()),
		slog.String("recording_id", id.String()),
	)
	return nil
}

// OpenRecording opens an owned recording for streaming. The caller closes the file.
func (s *Service) OpenRecording(ctx context.Context, fileName string) (*domain.Recording, *storage.File, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}
	rec, err := s.recordings.GetByFileName(ctx, userID, fileName)
	if err != nil {
		return nil, nil, fmt.Errorf("get recording: %w", err)
	}
	f, err := s.blobs.Open(rec.FileName)
	if err != nil {
		return nil, nil, fmt.Errorf("open recording: %w", err)
	}
	return rec, f, nil
}
