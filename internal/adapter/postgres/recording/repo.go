// Package recording implements the Recording repository using PostgreSQL.
package recording

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const table = "recordings"

var columns = []string{
	"r.id", "r.meeting_id", "r.zoom_file_id", "r.file_type", "r.recording_type", "r.file_size", "r.file_name",
	"r.storage_url", "r.source_download_url", "r.play_url", "r.recording_start", "r.recording_end", "r.created_at",
}

const returning = "RETURNING id, meeting_id, zoom_file_id, file_type, recording_type, file_size, file_name, " +
	"storage_url, source_download_url, play_url, recording_start, recording_end, created_at"

// Repo provides recording persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recording repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ExistsBySource reports whether a recording with the given source download
// URL was already imported for the meeting.
func (r *Repo) ExistsBySource(ctx context.Context, meetingID uuid.UUID, sourceURL string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select("1").From(table).
		Where(squirrel.Eq{"meeting_id": meetingID, "source_download_url": sourceURL}).
		Prefix("SELECT EXISTS (").Suffix(")")

	var exists bool
	if err := postgres.QueryRow(ctx, q, stmt).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "recording", nil)
	}
	return exists, nil
}

// CreateIfAbsent inserts rec unless (meeting_id, source_download_url) is
// already taken. It returns the stored row and true, or nil and false when
// another import won.
func (r *Repo) CreateIfAbsent(ctx context.Context, rec *domain.Recording) (*domain.Recording, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := rec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	stmt := postgres.Builder().Insert(table).
		Columns("id", "meeting_id", "zoom_file_id", "file_type", "recording_type", "file_size", "file_name",
			"storage_url", "source_download_url", "play_url", "recording_start", "recording_end").
		Values(id, rec.MeetingID, rec.ZoomFileID, string(rec.FileType), rec.RecordingType, rec.FileSize, rec.FileName,
			rec.StorageURL, rec.SourceDownloadURL, rec.PlayURL, rec.RecordingStart, rec.RecordingEnd).
		Suffix("ON CONFLICT (meeting_id, source_download_url) DO NOTHING " + returning)

	created, err := scanRecording(postgres.QueryRow(ctx, q, stmt))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "recording", rec.FileName)
	}
	return created, true, nil
}

// ListByMeeting returns a meeting's recordings in import order.
func (r *Repo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Recording, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(columns...).From(table + " r").
		Where(squirrel.Eq{"r.meeting_id": meetingID}).
		OrderBy("r.created_at", "r.id")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "recording", nil)
	}
	defer rows.Close()

	out := []domain.Recording{}
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, postgres.MapError(err, "recording", nil)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "recording", nil)
	}
	return out, nil
}

// GetByFileName returns a recording whose meeting is owned by userID.
func (r *Repo) GetByFileName(ctx context.Context, userID uuid.UUID, fileName string) (*domain.Recording, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(columns...).From(table + " r").
		Join("meetings m ON m.id = r.meeting_id").
		Where(squirrel.Eq{"r.file_name": fileName, "m.user_id": userID})

	rec, err := scanRecording(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "recording", fileName)
	}
	return rec, nil
}

// Delete removes a recording whose meeting is owned by userID and returns
// the deleted row so the caller can remove the backing file.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Recording, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Delete(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("meeting_id IN (SELECT id FROM meetings WHERE user_id = ?)", userID)).
		Suffix(returning)

	rec, err := scanRecording(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "recording", id)
	}
	return rec, nil
}

// FileNamesByMeeting returns the stored file names of a meeting's recordings.
func (r *Repo) FileNamesByMeeting(ctx context.Context, meetingID uuid.UUID) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().Select("file_name").From(table).
		Where(squirrel.Eq{"meeting_id": meetingID}))
	if err != nil {
		return nil, postgres.MapError(err, "recording", nil)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "recording", nil)
	}
	return names, nil
}

func scanRecording(row pgx.Row) (*domain.Recording, error) {
	var (
		rec      domain.Recording
		fileType string
	)
	if err := row.Scan(
		&rec.ID, &rec.MeetingID, &rec.ZoomFileID, &fileType, &rec.RecordingType, &rec.FileSize, &rec.FileName,
		&rec.StorageURL, &rec.SourceDownloadURL, &rec.PlayURL, &rec.RecordingStart, &rec.RecordingEnd, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	rec.FileType = domain.RecordingFileType(fileType)
	return &rec, nil
}
