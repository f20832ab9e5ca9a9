// Package export implements the Export repository using PostgreSQL.
package export

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const table = "exports"

var columns = []string{"e.id", "e.meeting_id", "e.format", "e.file_name", "e.file_url", "e.created_at"}

const returning = "RETURNING id, meeting_id, format, file_name, file_url, created_at"

// Repo provides export persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new export repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an export row. The file must already be stored.
func (r *Repo) Create(ctx context.Context, e *domain.Export) (*domain.Export, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	stmt := postgres.Builder().Insert(table).
		Columns("id", "meeting_id", "format", "file_name", "file_url").
		Values(id, e.MeetingID, string(e.Format), e.FileName, e.FileURL).
		Suffix(returning)

	created, err := scanExport(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "export", e.FileName)
	}
	return created, nil
}

// ListByMeeting returns a meeting's exports, newest first.
func (r *Repo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Export, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(columns...).From(table + " e").
		Where(squirrel.Eq{"e.meeting_id": meetingID}).
		OrderBy("e.created_at DESC", "e.id")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "export", nil)
	}
	defer rows.Close()

	out := []domain.Export{}
	for rows.Next() {
		e, err := scanExport(rows)
		if err != nil {
			return nil, postgres.MapError(err, "export", nil)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "export", nil)
	}
	return out, nil
}

// GetByFileName returns an export whose meeting is owned by userID.
func (r *Repo) GetByFileName(ctx context.Context, userID uuid.UUID, fileName string) (*domain.Export, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(columns...).From(table + " e").
		Join("meetings m ON m.id = e.meeting_id").
		Where(squirrel.Eq{"e.file_name": fileName, "m.user_id": userID})

	e, err := scanExport(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "export", fileName)
	}
	return e, nil
}

// Delete removes an export owned (through its meeting) by userID and
// returns the deleted row.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.Export, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Delete(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("meeting_id IN (SELECT id FROM meetings WHERE user_id = ?)", userID)).
		Suffix(returning)

	e, err := scanExport(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "export", id)
	}
	return e, nil
}

// FileNamesByMeeting returns the stored file names of a meeting's exports.
func (r *Repo) FileNamesByMeeting(ctx context.Context, meetingID uuid.UUID) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().Select("file_name").From(table).
		Where(squirrel.Eq{"meeting_id": meetingID}))
	if err != nil {
		return nil, postgres.MapError(err, "export", nil)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "export", nil)
	}
	return names, nil
}

func scanExport(row pgx.Row) (*domain.Export, error) {
	var (
		e      domain.Export
		format string
	)
	if err := row.Scan(&e.ID, &e.MeetingID, &format, &e.FileName, &e.FileURL, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Format = domain.ExportFormat(format)
	return &e, nil
}
