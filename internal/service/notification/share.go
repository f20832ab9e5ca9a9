package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/notify"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/metrics"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

const (
	channelEmail = "email"
	channelSlack = "slack"
)

// Share sends the meeting summary to every requested channel. Each channel
// is attempted even when another fails; the returned result is non-nil
// whenever delivery was attempted, and failures are joined into one error.
func (s *Service) Share(ctx context.Context, input ShareInput) (*ShareResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.meetings.GetByID(ctx, userID, input.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if !m.HasSummary() {
		return nil, fmt.Errorf("meeting has not been analyzed: %w", domain.ErrNotFound)
	}

	summary, err := s.summary(ctx, m, input.IncludeActionItems)
	if err != nil {
		return nil, err
	}

	res := &ShareResult{}
	var failures []error

	if to := input.addresses(); len(to) > 0 {
		res.EmailAttempted = true
		res.Recipients = len(to)
		err := s.email.SendSummary(ctx, to, summary)
		if err != nil {
			failures = append(failures, fmt.Errorf("email: %w", err))
		} else {
			res.EmailSent = true
		}
		s.record(channelEmail, err)
	}

	if channel := strings.TrimSpace(input.SlackChannel); channel != "" {
		res.SlackAttempted = true
		err := s.slack.PostSummary(ctx, channel, summary)
		if err != nil {
			failures = append(failures, fmt.Errorf("slack: %w", err))
		} else {
			res.SlackSent = true
		}
		s.record(channelSlack, err)
	}

	if len(failures) > 0 {
		joined := errors.Join(failures...)
		s.log.WarnContext(ctx, "share partially failed",
			slog.String("meeting_id", m.ID.String()),
			slog.Bool("email_sent", res.EmailSent),
			slog.Bool("slack_sent", res.SlackSent),
			slog.String("error", joined.Error()),
		)
		return res, fmt.Errorf("share: %w: %w", joined, domain.ErrUpstream)
	}

	s.log.InfoContext(ctx, "meeting shared",
		slog.String("user_id", userID.String()),
		slog.String("meeting_id", m.ID.String()),
		slog.Int("recipients", res.Recipients),
		slog.Bool("slack", res.SlackSent),
	)
	return res, nil
}

func (s *Service) record(channel string, err error) {
	switch {
	case err == nil:
		s.metrics.Notification(channel, metrics.ResultSuccess)
	case errors.Is(err, notify.ErrChannelDisabled):
		s.metrics.Notification(channel, metrics.ResultSkipped)
	default:
		s.metrics.Notification(channel, metrics.ResultFailure)
	}
}

func (s *Service) summary(ctx context.Context, m *domain.Meeting, withTasks bool) (notify.Summary, error) {
	out := notify.Summary{
		Topic:           m.Topic,
		StartTime:       m.StartTime,
		DurationMinutes: m.DurationMinutes,
		Summary:         m.Summary,
		KeyPoints:       m.BulletPoints,
	}
	if s.publicURL != "" {
		out.Link = s.publicURL + "/meetings/" + m.ID.String()
	}
	if !withTasks {
		return out, nil
	}

	tasks, err := s.tasks.ListByMeeting(ctx, m.ID)
	if err != nil {
		return notify.Summary{}, fmt.Errorf("list tasks: %w", err)
	}
	for _, t := range tasks {
		if t.Status == domain.TaskStatusCancelled {
			continue
		}
		item := notify.ActionItem{
			Description: t.Description,
			Deadline:    t.Deadline,
			Priority:    string(t.Priority),
		}
		if t.Owner != nil {
			item.Owner = *t.Owner
		}
		out.ActionItems = append(out.ActionItems, item)
	}
	return out, nil
}
