// Package meeting syncs meetings from Zoom, manages them and imports
// transcripts from CSV.
package meeting

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/zoom"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/analysis"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type meetingRepo interface {
	Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	CreateIfAbsent(ctx context.Context, m *domain.Meeting) (bool, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Meeting, error)
	List(ctx context.Context, userID uuid.UUID, f domain.MeetingFilter) ([]domain.Meeting, int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	UpdateTranscript(ctx context.Context, id uuid.UUID, segments []domain.TranscriptSegment, text string, speakers []domain.Speaker) error
}

// fileIndex lists the stored files that belong to a meeting.
type fileIndex interface {
	FileNamesByMeeting(ctx context.Context, meetingID uuid.UUID) ([]string, error)
}

type blobRemover interface {
	Remove(name string) error
}

type zoomClient interface {
	ListMeetings(ctx context.Context, token string, p zoom.ListMeetingsParams) (*zoom.MeetingsPage, error)
	GetTranscript(ctx context.Context, token, meetingID string) (*zoom.Transcript, error)
}

type tokenSource interface {
	GetValidAccessToken(ctx context.Context, userID uuid.UUID) (string, error)
}

type analyzer interface {
	Analyze(ctx context.Context, meetingID uuid.UUID) (*analysis.AnalyzeResult, error)
}

// Files pairs a file index with the store that holds the files.
type Files struct {
	Index fileIndex
	Blobs blobRemover
}

// Service implements meeting operations.
type Service struct {
	log        *slog.Logger
	meetings   meetingRepo
	recordings Files
	exports    Files
	zoom       zoomClient
	tokens     tokenSource
	analyzer   analyzer
	now        func() time.Time
}

// NewService creates a meeting service.
func NewService(
	logger *slog.Logger,
	meetings meetingRepo,
	recordings Files,
	exports Files,
	zoom zoomClient,
	tokens tokenSource,
	analyzer analyzer,
) *Service {
	return &Service{
		log:        logger.With("service", "meeting"),
		meetings:   meetings,
		recordings: recordings,
		exports:    exports,
		zoom:       zoom,
		tokens:     tokens,
		analyzer:   analyzer,
		now:        time.Now,
	}
}
