package recording

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/adapter/zoom"
	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/metrics"
	"github.com/heartmarshall/meetsum-backend/pkg/concurrent"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type meetingRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Meeting, error)
	List(ctx context.Context, userID uuid.UUID, f domain.MeetingFilter) ([]domain.Meeting, int, error)
	SetRecordingURLIfEmpty(ctx context.Context, id uuid.UUID, url string) (bool, error)
}

type recordingRepo interface {
	ExistsBySource(ctx context.Context, meetingID uuid.UUID, sourceURL string) (bool, error)
	CreateIfAbsent(ctx context.Context, rec *domain.Recording) (*domain.Recording, bool, error)
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Recording, error)
	GetByFileName(ctx context.Context, userID uuid.UUID, fileName string) (*domain.Recording, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Recording, error)
}

type zoomClient interface {
	GetRecordings(ctx context.Context, token, meetingID string) (*zoom.RecordingList, error)
	DownloadTo(ctx context.Context, token, downloadURL string, w io.Writer) (int64, error)
}

type tokenSource interface {
	GetValidAccessToken(ctx context.Context, userID uuid.UUID) (string, error)
}

type blobStore interface {
	SaveStream(fill func(w io.Writer) error, nameFor func(digest []byte) string) (string, int64, error)
	Open(name string) (*storage.File, error)
	Remove(name string) error
}

// Service imports Zoom recording files into storage and tracks them.
type Service struct {
	log        *slog.Logger
	meetings   meetingRepo
	recordings recordingRepo
	zoom       zoomClient
	tokens     tokenSource
	blobs      blobStore
	metrics    *metrics.Metrics
	pool       *concurrent.WorkerPool
	cfg        config.ImportConfig
	now        func() time.Time
}

// NewService creates a recording service. m may be nil.
func NewService(
	logger *slog.Logger,
	meetings meetingRepo,
	recordings recordingRepo,
	zoom zoomClient,
	tokens tokenSource,
	blobs blobStore,
	m *metrics.Metrics,
	cfg config.ImportConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "recording"),
		meetings:   meetings,
		recordings: recordings,
		zoom:       zoom,
		tokens:     tokens,
		blobs:      blobs,
		metrics:    m,
		pool:       concurrent.NewWorkerPool(cfg.BatchWorkers),
		cfg:        cfg,
		now:        time.Now,
	}
}
