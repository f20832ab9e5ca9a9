package recording

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/zoom"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/metrics"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// StoragePathPrefix is the API route prefix that serves stored recordings.
const StoragePathPrefix = "/api/recordings/"

const (
	fileTimestampLayout = "20060102T150405"
	hashPrefixLen       = 12
	maxFileIDLen        = 40
)

// ImportRecordings downloads the requested files of one meeting and records
// each of them exactly once. Per-file failures are collected in the result;
// only meeting resolution and listing fail the whole call.
func (s *Service) ImportRecordings(ctx context.Context, input ImportInput) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meeting, err := s.meetings.GetByID(ctx, userID, input.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	return s.importMeeting(ctx, userID, meeting, input.FileTypes)
}

func (s *Service) importMeeting(ctx context.Context, userID uuid.UUID, meeting *domain.Meeting, types []domain.RecordingFileType) (*ImportResult, error) {
	if !meeting.HasZoomMeetingID() {
		return nil, fmt.Errorf("meeting has no zoom meeting id: %w", domain.ErrInvalidState)
	}

	token, err := s.tokens.GetValidAccessToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("zoom token: %w", err)
	}

	list, err := s.zoom.GetRecordings(ctx, token, *meeting.ZoomMeetingID)
	if err != nil {
		return nil, fmt.Errorf("get recordings: %w", err)
	}
	if list == nil || len(list.RecordingFiles) == 0 {
		return nil, fmt.Errorf("meeting has no recordings: %w", domain.ErrNotFound)
	}

	result := &ImportResult{
		MeetingID: meeting.ID,
		Imported:  []domain.Recording{},
		Skipped:   []SkippedFile{},
		Errors:    []FileError{},
	}
	wanted := typeSet(types)
	recordingURLSet := meeting.RecordingURL != nil

	for _, f := range list.RecordingFiles {
		if wanted != nil && !wanted[f.Type()] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, skipped, err := s.importFile(ctx, token, meeting.ID, f)
		switch {
		case err != nil:
			s.metrics.RecordingImport(metrics.ResultFailure, 0)
			s.log.WarnContext(ctx, "recording file import failed",
				slog.String("meeting_id", meeting.ID.String()),
				slog.String("file_id", f.ID),
				slog.String("file_type", f.FileType),
				slog.String("error", err.Error()),
			)
			result.Errors = append(result.Errors, FileError{FileID: f.ID, FileType: f.Type(), Message: fileErrorMessage(err)})
			continue
		case skipped != "":
			s.metrics.RecordingImport(metrics.ResultSkipped, 0)
			result.Skipped = append(result.Skipped, SkippedFile{FileID: f.ID, FileType: f.Type(), Reason: skipped})
			continue
		}

		s.metrics.RecordingImport(metrics.ResultSuccess, rec.FileSize)
		result.Imported = append(result.Imported, *rec)
		result.TotalBytes += rec.FileSize

		if rec.FileType == domain.FileTypeMP4 && !recordingURLSet {
			set, err := s.meetings.SetRecordingURLIfEmpty(ctx, meeting.ID, rec.StorageURL)
			if err != nil {
				s.log.WarnContext(ctx, "set meeting recording url",
					slog.String("meeting_id", meeting.ID.String()),
					slog.String("error", err.Error()),
				)
			}
			recordingURLSet = set || err == nil
		}
	}

	s.log.InfoContext(ctx, "recordings imported",
		slog.String("user_id", userID.String()),
		slog.String("meeting_id", meeting.ID.String()),
		slog.Int("imported", len(result.Imported)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("errors", len(result.Errors)),
		slog.String("size", humanize.Bytes(uint64(result.TotalBytes))),
	)
	return result, nil
}

// importFile runs the per-file steps. It returns either the created
// recording, a skip reason, or an error.
func (s *Service) importFile(ctx context.Context, token string, meetingID uuid.UUID, f zoom.RecordingFile) (*domain.Recording, string, error) {
	if f.DownloadURL == "" {
		return nil, "not available for download", nil
	}

	exists, err := s.recordings.ExistsBySource(ctx, meetingID, f.DownloadURL)
	if err != nil {
		return nil, "", fmt.Errorf("check existing: %w", err)
	}
	if exists {
		return nil, "already imported", nil
	}

	fileType := f.Type()
	var downloadErr error
	name, size, err := s.blobs.SaveStream(func(w io.Writer) error {
		_, downloadErr = s.zoom.DownloadTo(ctx, token, f.DownloadURL, w)
		return downloadErr
	}, func(digest []byte) string {
		return FileName(meetingID, f.ID, s.now(), digest, fileType.Extension())
	})
	if downloadErr != nil {
		return nil, "", fmt.Errorf("download: %w", downloadErr)
	}
	if err != nil {
		return nil, "", fmt.Errorf("store: %w", err)
	}

	rec := &domain.Recording{
		MeetingID:         meetingID,
		ZoomFileID:        f.ID,
		FileType:          fileType,
		RecordingType:     f.RecordingType,
		FileSize:          size,
		FileName:          name,
		StorageURL:        StoragePathPrefix + name,
		SourceDownloadURL: f.DownloadURL,
		RecordingStart:    f.Start(),
		RecordingEnd:      f.End(),
	}
	if f.PlayURL != "" {
		rec.PlayURL = &f.PlayURL
	}

	created, inserted, err := s.recordings.CreateIfAbsent(ctx, rec)
	if err != nil || !inserted {
		if rmErr := s.blobs.Remove(name); rmErr != nil {
			s.log.WarnContext(ctx, "remove orphaned recording file",
				slog.String("file_name", name),
				slog.String("error", rmErr.Error()),
			)
		}
	}
	if err != nil {
		return nil, "", fmt.Errorf("record: %w", err)
	}
	if !inserted {
		return nil, "already imported", nil
	}
	return created, "", nil
}

// FileName builds the storage name
// <meetingID>_<UTC yyyymmddThhmmss>_<file id>_<first 12 hex of digest>.<ext>.
// The Zoom file id keeps same-content files of one meeting apart; it is
// reduced to [A-Za-z0-9-] and dropped when nothing is left.
func FileName(meetingID uuid.UUID, fileID string, at time.Time, digest []byte, ext string) string {
	sum := hex.EncodeToString(digest)
	if len(sum) > hashPrefixLen {
		sum = sum[:hashPrefixLen]
	}
	stamp := at.UTC().Format(fileTimestampLayout)
	if id := sanitizeFileID(fileID); id != "" {
		return fmt.Sprintf("%s_%s_%s_%s.%s", meetingID, stamp, id, sum, ext)
	}
	return fmt.Sprintf("%s_%s_%s.%s", meetingID, stamp, sum, ext)
}

func sanitizeFileID(id string) string {
	var b strings.Builder
	for _, r := range id {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' {
			b.WriteRune(r)
			if b.Len() == maxFileIDLen {
				break
			}
		}
	}
	return b.String()
}

// fileErrorMessage is the client-facing text for a failed file.
func fileErrorMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "download interrupted"
	case errors.Is(err, domain.ErrReauthRequired):
		return "zoom authorization expired"
	case errors.Is(err, domain.ErrNotFound):
		return "file no longer available"
	case errors.Is(err, domain.ErrUpstream):
		return "download failed"
	case errors.Is(err, domain.ErrStorage), errors.Is(err, domain.ErrAlreadyExists):
		return "could not store file"
	default:
		return "import failed"
	}
}

// meetingErrorMessage is the client-facing text for a failed batch meeting.
func meetingErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrZoomAuthRequired):
		return "zoom is not connected"
	case errors.Is(err, domain.ErrReauthRequired):
		return "zoom authorization expired"
	case errors.Is(err, domain.ErrInvalidState):
		return "not a zoom meeting"
	case errors.Is(err, domain.ErrNotFound):
		return "meeting or recordings not found"
	case errors.Is(err, domain.ErrUpstream):
		return "zoom unavailable"
	default:
		return "import failed"
	}
}

func typeSet(types []domain.RecordingFileType) map[domain.RecordingFileType]bool {
	if len(types) == 0 {
		return nil
	}
	set := make(map[domain.RecordingFileType]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// isExpected reports whether err is an outcome the caller can act on rather
// than an internal failure.
func isExpected(err error) bool {
	for _, target := range []error{
		domain.ErrNotFound, domain.ErrInvalidState, domain.ErrZoomAuthRequired,
		domain.ErrReauthRequired, domain.ErrValidation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
