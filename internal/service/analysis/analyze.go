package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/metrics"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// AnalyzeText runs the model over a transcript and returns the validated
// analysis. Nothing is persisted.
func (s *Service) AnalyzeText(ctx context.Context, input AnalyzeTextInput) (*domain.Analysis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	reply, err := s.llm.Complete(ctx, systemPrompt, buildPrompt(input))
	if err != nil {
		s.metrics.Analysis(metrics.ResultFailure)
		return nil, fmt.Errorf("complete: %w", err)
	}

	a, err := parseAnalysis(reply)
	if err != nil {
		s.metrics.Analysis(metrics.ResultRejected)
		s.log.WarnContext(ctx, "analysis reply rejected", slog.String("error", err.Error()))
		return nil, err
	}
	if len(a.ItemErrors) > 0 {
		s.log.WarnContext(ctx, "action items dropped", slog.Int("count", len(a.ItemErrors)))
	}
	return a, nil
}

// Analyze analyzes a stored meeting and persists the result. The meeting's
// AI tasks are replaced by the new batch in the same transaction; manual
// tasks are kept.
func (s *Service) Analyze(ctx context.Context, meetingID uuid.UUID) (*AnalyzeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	meeting, err := s.meetings.GetByID(ctx, userID, meetingID)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if !meeting.HasTranscript() {
		return nil, fmt.Errorf("meeting %s: %w", meetingID, domain.ErrNoTranscript)
	}

	speakers := make([]string, 0, len(meeting.Speakers))
	for _, sp := range meeting.Speakers {
		speakers = append(speakers, sp.Name)
	}
	a, err := s.AnalyzeText(ctx, AnalyzeTextInput{
		Transcript:      meeting.TranscriptText,
		Topic:           meeting.Topic,
		Speakers:        speakers,
		DurationMinutes: meeting.DurationMinutes,
	})
	if err != nil {
		return nil, err
	}

	result := &AnalyzeResult{MeetingID: meetingID, Analysis: a, AnalyzedAt: s.now().UTC()}
	tasks := make([]domain.Task, 0, len(a.ActionItems))
	for _, item := range a.ActionItems {
		tasks = append(tasks, item.Task(meetingID))
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.meetings.SaveAnalysis(ctx, meetingID, domain.AnalysisUpdate{
			Summary:            a.Summary,
			BulletPoints:       a.KeyPoints,
			AINotes:            a.Notes(),
			Sentiment:          a.Sentiment,
			EffectivenessScore: a.EffectivenessScore,
			AnalyzedAt:         result.AnalyzedAt,
		}); err != nil {
			return fmt.Errorf("save analysis: %w", err)
		}

		removed, err := s.tasks.DeleteAIGenerated(ctx, meetingID)
		if err != nil {
			return fmt.Errorf("delete ai tasks: %w", err)
		}
		created, err := s.tasks.CreateBatch(ctx, tasks)
		if err != nil {
			return fmt.Errorf("create tasks: %w", err)
		}
		result.TasksReplaced, result.TasksCreated = removed, created
		return nil
	})
	if err != nil {
		s.metrics.Analysis(metrics.ResultFailure)
		if !errors.Is(err, context.Canceled) {
			s.log.ErrorContext(ctx, "persist analysis", slog.String("meeting_id", meetingID.String()), slog.String("error", err.Error()))
		}
		return nil, err
	}

	s.metrics.Analysis(metrics.ResultSuccess)
	s.log.InfoContext(ctx, "meeting analyzed",
		slog.String("user_id", userID.String()),
		slog.String("meeting_id", meetingID.String()),
		slog.Int("tasks_created", result.TasksCreated),
		slog.Int("tasks_replaced", result.TasksReplaced),
		slog.Int("items_dropped", len(a.ItemErrors)),
	)
	return result, nil
}
