package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// DownloadPathPrefix is the API route prefix that serves stored exports.
const DownloadPathPrefix = "/api/exports/"

// Export renders a meeting, stores the file and records it.
func (s *Service) Export(ctx context.Context, input ExportInput) (*ExportResult, error) {
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
	var tasks []domain.Task
	if input.IncludeActionItems {
		if tasks, err = s.tasks.ListByMeeting(ctx, m.ID); err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
	}

	r, err := s.renderer(input.Format)
	if err != nil {
		return nil, err
	}
	doc := s.document(m, tasks, input)
	data, err := r.Render(doc)
	if err != nil {
		s.log.ErrorContext(ctx, "render export",
			slog.String("meeting_id", m.ID.String()),
			slog.String("format", string(input.Format)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("render: %w", err)
	}

	name := FileName(m.ID, input.Format, doc.GeneratedAt, r.Extension())
	if err := s.blobs.Save(name, data); err != nil {
		return nil, fmt.Errorf("store export: %w", err)
	}
	created, err := s.exports.Create(ctx, &domain.Export{
		MeetingID: m.ID,
		Format:    input.Format,
		FileName:  name,
		FileURL:   DownloadPathPrefix + name,
	})
	if err != nil {
		if rmErr := s.blobs.Remove(name); rmErr != nil {
			s.log.WarnContext(ctx, "remove orphaned export file", slog.String("file_name", name), slog.String("error", rmErr.Error()))
		}
		return nil, fmt.Errorf("record export: %w", err)
	}

	s.metrics.Export(string(input.Format))
	s.log.InfoContext(ctx, "meeting exported",
		slog.String("user_id", userID.String()),
		slog.String("meeting_id", m.ID.String()),
		slog.String("format", string(input.Format)),
		slog.Bool("transcript", input.IncludeTranscript),
		slog.String("size", humanize.Bytes(uint64(len(data)))),
	)
	return &ExportResult{Export: created, DownloadURL: created.FileURL}, nil
}

// FileName builds the storage name
// <meetingID>_<format>_<UTC yyyymmddThhmmss>_<8 random hex>.<ext>.
func FileName(meetingID uuid.UUID, format domain.ExportFormat, at time.Time, ext string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s_%s_%s.%s",
		meetingID, strings.ToLower(string(format)), at.UTC().Format("20060102T150405"), suffix, ext)
}

// ListExports returns the exports of one of the caller's meetings.
func (s *Service) ListExports(ctx context.Context, meetingID uuid.UUID) ([]domain.Export, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.meetings.GetByID(ctx, userID, meetingID); err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	exports, err := s.exports.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	if exports == nil {
		exports = []domain.Export{}
	}
	return exports, nil
}

// DeleteExport removes the row, then its file. A file that cannot be
// removed is logged and left behind.
func (s *Service) DeleteExport(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	e, err := s.exports.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete export: %w", err)
	}
	if err := s.blobs.Remove(e.FileName); err != nil {
		s.log.WarnContext(ctx, "remove export file", slog.String("file_name", e.FileName), slog.String("error", err.Error()))
	}
	return nil
}

// OpenExport opens an export owned by the caller for download. The caller
// closes the file.
func (s *Service) OpenExport(ctx context.Context, fileName string) (*domain.Export, *storage.File, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}
	e, err := s.exports.GetByFileName(ctx, userID, fileName)
	if err != nil {
		return nil, nil, fmt.Errorf("get export: %w", err)
	}
	f, err := s.blobs.Open(e.FileName)
	if err != nil {
		return nil, nil, fmt.Errorf("open export: %w", err)
	}
	return e, f, nil
}
