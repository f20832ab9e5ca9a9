package meeting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// FetchTranscript downloads the meeting's Zoom transcript and stores its
// segments, plain text and speakers. A meeting without a transcript is
// domain.ErrNotFound.
func (s *Service) FetchTranscript(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.meetings.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if !m.HasZoomMeetingID() {
		return nil, fmt.Errorf("meeting has no zoom meeting id: %w", domain.ErrInvalidState)
	}

	token, err := s.tokens.GetValidAccessToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("zoom token: %w", err)
	}
	tr, err := s.zoom.GetTranscript(ctx, token, *m.ZoomMeetingID)
	if err != nil {
		return nil, fmt.Errorf("get transcript: %w", err)
	}
	if tr == nil || len(tr.Segments) == 0 {
		return nil, fmt.Errorf("meeting has no transcript: %w", domain.ErrNotFound)
	}

	text := domain.PlainTranscript(tr.Segments)
	speakers := domain.SpeakersFromSegments(tr.Segments)
	if err := s.meetings.UpdateTranscript(ctx, m.ID, tr.Segments, text, speakers); err != nil {
		return nil, fmt.Errorf("store transcript: %w", err)
	}

	m.Transcript, m.TranscriptText, m.Speakers = tr.Segments, text, speakers
	s.log.InfoContext(ctx, "transcript stored",
		slog.String("user_id", userID.String()),
		slog.String("meeting_id", m.ID.String()),
		slog.Int("segments", len(tr.Segments)),
		slog.Int("speakers", len(speakers)),
	)
	return m, nil
}
