package recording

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// BatchImport imports recordings for several meetings on the worker pool.
// A meeting's failure is reported in its entry and never stops the others.
func (s *Service) BatchImport(ctx context.Context, input BatchImportInput) (*BatchImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	maxMeetings := s.cfg.BatchMaxMeetings
	if maxMeetings <= 0 {
		maxMeetings = defaultBatchMax
	}
	if err := input.Validate(maxMeetings); err != nil {
		return nil, err
	}

	// Fail the whole batch early when Zoom is not usable at all.
	if _, err := s.tokens.GetValidAccessToken(ctx, userID); err != nil {
		return nil, fmt.Errorf("zoom token: %w", err)
	}

	meetings, err := s.selectMeetings(ctx, userID, input, maxMeetings)
	if err != nil {
		return nil, err
	}

	items := make([]BatchItem, len(meetings))
	jobs := make([]func(context.Context) error, len(meetings))
	for i, m := range meetings {
		items[i] = BatchItem{MeetingID: m.ID, Topic: m.Topic}
		jobs[i] = func(ctx context.Context) error {
			if m.UserID == uuid.Nil {
				return fmt.Errorf("get meeting: %w", domain.ErrNotFound)
			}
			res, err := s.importMeeting(ctx, userID, &m, input.FileTypes)
			if err != nil {
				return err
			}
			items[i].Result = res
			return nil
		}
	}
	errs := s.pool.RunAll(ctx, jobs...)

	result := &BatchImportResult{Results: items}
	for i, err := range errs {
		if err != nil {
			items[i].Error = meetingErrorMessage(err)
			result.Failed++
			level := slog.LevelError
			if isExpected(err) {
				level = slog.LevelWarn
			}
			s.log.Log(ctx, level, "batch import meeting failed",
				slog.String("meeting_id", items[i].MeetingID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Succeeded++
		result.FilesImported += len(items[i].Result.Imported)
		result.TotalBytes += items[i].Result.TotalBytes
	}

	s.log.InfoContext(ctx, "batch import finished",
		slog.String("user_id", userID.String()),
		slog.Int("meetings", len(items)),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed),
		slog.Int("files", result.FilesImported),
		slog.String("size", humanize.Bytes(uint64(result.TotalBytes))),
	)
	return result, nil
}

// selectMeetings resolves the batch to owned meetings. Explicit IDs that do
// not resolve become placeholders with a nil UserID so they fail individually.
func (s *Service) selectMeetings(ctx context.Context, userID uuid.UUID, input BatchImportInput, maxMeetings int) ([]domain.Meeting, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultBatchLimit
	}
	limit = min(limit, maxMeetings)

	if len(input.MeetingIDs) > 0 {
		ids := dedupe(input.MeetingIDs)
		found, _, err := s.meetings.List(ctx, userID, domain.MeetingFilter{IDs: ids})
		if err != nil {
			return nil, fmt.Errorf("list meetings: %w", err)
		}
		byID := make(map[uuid.UUID]domain.Meeting, len(found))
		for _, m := range found {
			byID[m.ID] = m
		}
		out := make([]domain.Meeting, 0, len(ids))
		for _, id := range ids {
			m, ok := byID[id]
			if !ok {
				m = domain.Meeting{ID: id}
			}
			out = append(out, m)
		}
		return out, nil
	}

	found, _, err := s.meetings.List(ctx, userID, domain.MeetingFilter{
		From:     input.From,
		To:       input.To,
		ZoomOnly: true,
		Limit:    uint64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	return found, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
