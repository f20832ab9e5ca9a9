// Package export renders meetings into downloadable documents.
package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/render"
	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type meetingRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Meeting, error)
}

type taskRepo interface {
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error)
}

type exportRepo interface {
	Create(ctx context.Context, e *domain.Export) (*domain.Export, error)
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Export, error)
	GetByFileName(ctx context.Context, userID uuid.UUID, fileName string) (*domain.Export, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Export, error)
}

type blobStore interface {
	Save(name string, data []byte) error
	Open(name string) (*storage.File, error)
	Remove(name string) error
}

// Service implements meeting exports.
type Service struct {
	log      *slog.Logger
	meetings meetingRepo
	tasks    taskRepo
	exports  exportRepo
	blobs    blobStore
	metrics  *metrics.Metrics
	renderer func(domain.ExportFormat) (render.Renderer, error)
	now      func() time.Time
}

// NewService creates an export service. m may be nil.
func NewService(
	logger *slog.Logger,
	meetings meetingRepo,
	tasks taskRepo,
	exports exportRepo,
	blobs blobStore,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:      logger.With("service", "export"),
		meetings: meetings,
		tasks:    tasks,
		exports:  exports,
		blobs:    blobs,
		metrics:  m,
		renderer: render.For,
		now:      time.Now,
	}
}
