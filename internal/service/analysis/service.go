// Package analysis turns meeting transcripts into summaries and action
// items through an LLM.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type meetingRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Meeting, error)
	SaveAnalysis(ctx context.Context, id uuid.UUID, a domain.AnalysisUpdate) error
}

type taskRepo interface {
	DeleteAIGenerated(ctx context.Context, meetingID uuid.UUID) (int, error)
	CreateBatch(ctx context.Context, tasks []domain.Task) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Service implements meeting analysis.
type Service struct {
	log      *slog.Logger
	meetings meetingRepo
	tasks    taskRepo
	tx       txManager
	llm      completer
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewService creates an analysis service. m may be nil.
func NewService(
	logger *slog.Logger,
	meetings meetingRepo,
	tasks taskRepo,
	tx txManager,
	llm completer,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:      logger.With("service", "analysis"),
		meetings: meetings,
		tasks:    tasks,
		tx:       tx,
		llm:      llm,
		metrics:  m,
		now:      time.Now,
	}
}
