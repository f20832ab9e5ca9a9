// Package notification shares meeting summaries by email and Slack.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/notify"
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

type emailSender interface {
	SendSummary(ctx context.Context, to []string, summary notify.Summary) error
}

type slackPoster interface {
	PostSummary(ctx context.Context, channel string, summary notify.Summary) error
}

// Service implements meeting summary sharing.
type Service struct {
	log       *slog.Logger
	meetings  meetingRepo
	tasks     taskRepo
	email     emailSender
	slack     slackPoster
	metrics   *metrics.Metrics
	publicURL string
}

// NewService creates a notification service. publicURL is the web app
// origin used for meeting links; it may be empty. m may be nil.
func NewService(
	logger *slog.Logger,
	meetings meetingRepo,
	tasks taskRepo,
	email emailSender,
	slack slackPoster,
	m *metrics.Metrics,
	publicURL string,
) *Service {
	return &Service{
		log:       logger.With("service", "notification"),
		meetings:  meetings,
		tasks:     tasks,
		email:     email,
		slack:     slack,
		metrics:   m,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}
