// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const table = "tasks"

var columns = []string{
	"t.id", "t.meeting_id", "t.assignee_id", "t.description", "t.owner", "t.deadline",
	"t.priority", "t.status", "t.source", "t.created_at", "t.updated_at",
}

const returning = "RETURNING id, meeting_id, assignee_id, description, owner, deadline, " +
	"priority, status, source, created_at, updated_at"

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByMeeting returns a meeting's tasks, oldest first.
func (r *Repo) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(columns...).From(table + " t").
		Where(squirrel.Eq{"t.meeting_id": meetingID}).
		OrderBy("t.created_at", "t.id")

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, postgres.MapError(err, "task", nil)
	}
	defer rows.Close()

	out := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, postgres.MapError(err, "task", nil)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "task", nil)
	}
	return out, nil
}

// GetByID returns a task whose meeting is owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(columns...).From(table + " t").
		Join("meetings m ON m.id = t.meeting_id").
		Where(squirrel.Eq{"t.id": id, "m.user_id": userID})

	t, err := scanTask(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// Create inserts a single task.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := insertBuilder().Suffix(returning)
	stmt = addValues(stmt, *t)

	created, err := scanTask(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "task", nil)
	}
	return created, nil
}

// CreateBatch inserts tasks in one statement and returns how many were stored.
func (r *Repo) CreateBatch(ctx context.Context, tasks []domain.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := insertBuilder()
	for _, t := range tasks {
		stmt = addValues(stmt, t)
	}
	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return 0, postgres.MapError(err, "task", nil)
	}
	return int(n), nil
}

// DeleteAIGenerated removes the AI-sourced tasks of a meeting and returns
// how many were removed. Manual tasks stay.
func (r *Repo) DeleteAIGenerated(ctx context.Context, meetingID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).
		Where(squirrel.Eq{"meeting_id": meetingID, "source": string(domain.TaskSourceAI)}))
	if err != nil {
		return 0, postgres.MapError(err, "task", nil)
	}
	return int(n), nil
}

// Update applies c to a task owned (through its meeting) by userID.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, c domain.TaskChanges) (*domain.Task, error) {
	if c.IsEmpty() {
		return r.GetByID(ctx, userID, id)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Update(table).Set("updated_at", squirrel.Expr("now()"))
	if c.Description != nil {
		stmt = stmt.Set("description", *c.Description)
	}
	if c.Owner != nil {
		stmt = stmt.Set("owner", *c.Owner)
	}
	if c.Deadline != nil {
		stmt = stmt.Set("deadline", c.Deadline.UTC())
	}
	if c.Priority != nil {
		stmt = stmt.Set("priority", string(*c.Priority))
	}
	if c.Status != nil {
		stmt = stmt.Set("status", string(*c.Status))
	}
	stmt = stmt.Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("meeting_id IN (SELECT id FROM meetings WHERE user_id = ?)", userID)).
		Suffix(returning)

	t, err := scanTask(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return t, nil
}

// Delete removes a task owned (through its meeting) by userID.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := postgres.Exec(ctx, q, postgres.Builder().Delete(table).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("meeting_id IN (SELECT id FROM meetings WHERE user_id = ?)", userID)))
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "task", id)
	}
	return nil
}

func insertBuilder() squirrel.InsertBuilder {
	return postgres.Builder().Insert(table).
		Columns("id", "meeting_id", "assignee_id", "description", "owner", "deadline", "priority", "status", "source")
}

func addValues(stmt squirrel.InsertBuilder, t domain.Task) squirrel.InsertBuilder {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	priority := t.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}
	status := t.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	source := t.Source
	if source == "" {
		source = domain.TaskSourceManual
	}
	var deadline *time.Time
	if t.Deadline != nil {
		d := t.Deadline.UTC()
		deadline = &d
	}
	return stmt.Values(id, t.MeetingID, t.AssigneeID, t.Description, t.Owner, deadline,
		string(priority), string(status), string(source))
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		t                        domain.Task
		priority, status, source string
	)
	if err := row.Scan(
		&t.ID, &t.MeetingID, &t.AssigneeID, &t.Description, &t.Owner, &t.Deadline,
		&priority, &status, &source, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.Priority = domain.TaskPriority(priority)
	t.Status = domain.TaskStatus(status)
	t.Source = domain.TaskSource(source)
	return &t, nil
}
