// Package meeting implements the Meeting repository using PostgreSQL.
package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const table = "meetings"

var columns = []string{
	"id", "user_id", "zoom_meeting_id", "source", "topic", "start_time", "end_time", "duration_minutes",
	"transcript", "transcript_text", "speakers",
	"summary", "bullet_points", "ai_notes", "sentiment", "effectiveness_score", "analyzed_at",
	"recording_url", "created_at", "updated_at",
}

// setRecordingURLSQL only fills recording_url when no earlier import set it.
const setRecordingURLSQL = `
UPDATE meetings SET recording_url = $2, updated_at = now()
 WHERE id = $1 AND recording_url IS NULL`

// Repo provides meeting persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meeting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a meeting and returns the stored row.
func (r *Repo) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt, err := insertStmt(m)
	if err != nil {
		return nil, err
	}
	created, err := scanMeeting(postgres.QueryRow(ctx, q, stmt.Suffix("RETURNING "+strings.Join(columns, ", "))))
	if err != nil {
		return nil, postgres.MapError(err, "meeting", nil)
	}
	return created, nil
}

// CreateIfAbsent inserts a provider meeting unless one with the same
// zoom_meeting_id already exists. It reports whether a row was created.
func (r *Repo) CreateIfAbsent(ctx context.Context, m *domain.Meeting) (bool, error) {
	if !m.HasZoomMeetingID() {
		return false, fmt.Errorf("meeting: %w", domain.NewValidationError("zoom_meeting_id", "required"))
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt, err := insertStmt(m)
	if err != nil {
		return false, err
	}
	n, err := postgres.Exec(ctx, q, stmt.Suffix("ON CONFLICT (zoom_meeting_id) DO NOTHING"))
	if err != nil {
		return false, postgres.MapError(err, "meeting", *m.ZoomMeetingID)
	}
	return n == 1, nil
}

// GetByID returns a meeting owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Meeting, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID})
	m, err := scanMeeting(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "meeting", id)
	}
	return m, nil
}

// List returns the user's meetings matching f, newest first, plus the
// total count ignoring Limit and Offset.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.MeetingFilter) ([]domain.Meeting, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"user_id": userID}}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"start_time": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.LtOrEq{"start_time": *f.To})
	}
	if f.ZoomOnly {
		where = append(where, squirrel.NotEq{"zoom_meeting_id": nil})
	}
	if len(f.IDs) > 0 {
		where = append(where, squirrel.Eq{"id": f.IDs})
	}

	var total int
	countStmt := postgres.Builder().Select("count(*)").From(table).Where(where)
	if err := postgres.QueryRow(ctx, q, countStmt).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "meeting", nil)
	}

	stmt := postgres.Builder().Select(columns...).From(table).Where(where).
		OrderBy("start_time DESC", "id")
	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}
	if f.Offset > 0 {
		stmt = stmt.Offset(f.Offset)
	}

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, 0, postgres.MapError(err, "meeting", nil)
	}
	defer rows.Close()

	var out []domain.Meeting
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "meeting", nil)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "meeting", nil)
	}
	return out, total, nil
}

// Delete removes a meeting owned by userID. Recordings, tasks and exports
// cascade.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "meeting", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "meeting", id)
	}
	return nil
}

// UpdateTranscript stores typed segments, their plain-text rendering and
// derived speakers.
func (r *Repo) UpdateTranscript(ctx context.Context, id uuid.UUID, segments []domain.TranscriptSegment, text string, speakers []domain.Speaker) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	segJSON, err := marshalJSON(segments)
	if err != nil {
		return err
	}
	spkJSON, err := marshalJSON(speakers)
	if err != nil {
		return err
	}

	stmt := postgres.Builder().Update(table).
		Set("transcript", segJSON).
		Set("transcript_text", text).
		Set("speakers", spkJSON).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})
	return r.execOne(ctx, q, stmt, id)
}

// SaveAnalysis writes the analysis columns of a meeting.
func (r *Repo) SaveAnalysis(ctx context.Context, id uuid.UUID, a domain.AnalysisUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	bullets, err := marshalJSON(a.BulletPoints)
	if err != nil {
		return err
	}
	var notes []byte
	if a.AINotes != nil {
		if notes, err = json.Marshal(a.AINotes); err != nil {
			return fmt.Errorf("marshal ai_notes: %w", err)
		}
	}

	stmt := postgres.Builder().Update(table).
		Set("summary", a.Summary).
		Set("bullet_points", bullets).
		Set("ai_notes", notes).
		Set("sentiment", string(a.Sentiment)).
		Set("effectiveness_score", a.EffectivenessScore).
		Set("analyzed_at", a.AnalyzedAt.UTC()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})
	return r.execOne(ctx, q, stmt, id)
}

// SetRecordingURLIfEmpty sets recording_url unless it is already set and
// reports whether it changed.
func (r *Repo) SetRecordingURLIfEmpty(ctx context.Context, id uuid.UUID, url string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setRecordingURLSQL, id, url)
	if err != nil {
		return false, postgres.MapError(err, "meeting", id)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repo) execOne(ctx context.Context, q postgres.Querier, stmt postgres.Sqlizer, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, "meeting", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "meeting", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func insertStmt(m *domain.Meeting) (squirrel.InsertBuilder, error) {
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	source := m.Source
	if source == "" {
		source = domain.MeetingSourceZoom
	}
	segJSON, err := marshalJSON(m.Transcript)
	if err != nil {
		return squirrel.InsertBuilder{}, err
	}
	spkJSON, err := marshalJSON(m.Speakers)
	if err != nil {
		return squirrel.InsertBuilder{}, err
	}

	return postgres.Builder().Insert(table).
		Columns("id", "user_id", "zoom_meeting_id", "source", "topic", "start_time", "end_time",
			"duration_minutes", "transcript", "transcript_text", "speakers").
		Values(id, m.UserID, m.ZoomMeetingID, string(source), m.Topic, m.StartTime.UTC(), m.EndTime,
			m.DurationMinutes, segJSON, m.TranscriptText, spkJSON), nil
}

// marshalJSON encodes a slice for a jsonb column; empty slices become NULL.
func marshalJSON[T any](v []T) ([]byte, error) {
	if len(v) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

func scanMeeting(row pgx.Row) (*domain.Meeting, error) {
	var (
		m                             domain.Meeting
		source                        string
		sentiment                     *string
		transcript, speakers, bullets []byte
		notes                         []byte
	)
	if err := row.Scan(
		&m.ID, &m.UserID, &m.ZoomMeetingID, &source, &m.Topic, &m.StartTime, &m.EndTime, &m.DurationMinutes,
		&transcript, &m.TranscriptText, &speakers,
		&m.Summary, &bullets, &notes, &sentiment, &m.EffectivenessScore, &m.AnalyzedAt,
		&m.RecordingURL, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	m.Source = domain.MeetingSource(source)
	if sentiment != nil {
		s := domain.Sentiment(*sentiment)
		m.Sentiment = &s
	}
	if err := unmarshalOptional(transcript, &m.Transcript); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	if err := unmarshalOptional(speakers, &m.Speakers); err != nil {
		return nil, fmt.Errorf("decode speakers: %w", err)
	}
	if err := unmarshalOptional(bullets, &m.BulletPoints); err != nil {
		return nil, fmt.Errorf("decode bullet_points: %w", err)
	}
	if len(notes) > 0 {
		m.AINotes = &domain.AINotes{}
		if err := json.Unmarshal(notes, m.AINotes); err != nil {
			return nil, fmt.Errorf("decode ai_notes: %w", err)
		}
	}
	return &m, nil
}

func unmarshalOptional(b []byte, v any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, v)
}
