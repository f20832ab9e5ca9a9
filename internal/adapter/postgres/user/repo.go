// Package user implements the User repository, including the per-user Zoom
// credential columns, using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/meetsum-backend/internal/adapter/postgres"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const table = "users"

var userColumns = []string{
	"id", "email", "name", "password_hash", "zoom_user_id", "zoom_connected", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(userColumns...).From(table).Where(squirrel.Eq{"id": id})
	u, err := scanUser(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Select(userColumns...).From(table).
		Where(squirrel.Eq{"email": domain.NormalizeEmail(email)})
	u, err := scanUser(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "user", nil)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted row.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	stmt := postgres.Builder().Insert(table).
		Columns("id", "email", "name", "password_hash").
		Values(id, domain.NormalizeEmail(u.Email), u.Name, u.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", "))

	created, err := scanUser(postgres.QueryRow(ctx, q, stmt))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Zoom credentials
// ---------------------------------------------------------------------------

// GetZoomCredentials returns the stored Zoom credential record for a user.
func (r *Repo) GetZoomCredentials(ctx context.Context, userID uuid.UUID) (*domain.ZoomCredentials, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().
		Select("id", "COALESCE(zoom_user_id, '')", "zoom_connected",
			"COALESCE(zoom_access_token, '')", "COALESCE(zoom_refresh_token, '')", "zoom_token_expires_at").
		From(table).
		Where(squirrel.Eq{"id": userID})

	var (
		c         domain.ZoomCredentials
		expiresAt *time.Time
	)
	err := postgres.QueryRow(ctx, q, stmt).Scan(
		&c.UserID, &c.ZoomUserID, &c.Connected, &c.AccessToken, &c.RefreshToken, &expiresAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "zoom_credentials", userID)
	}
	if expiresAt != nil {
		c.ExpiresAt = expiresAt.UTC()
	}
	return &c, nil
}

// SaveZoomToken overwrites the access token, refresh token and expiry of a
// connected account. An empty refresh token in tok keeps the stored one.
// Returns domain.ErrNotFound if the user is not connected.
func (r *Repo) SaveZoomToken(ctx context.Context, userID uuid.UUID, tok domain.ZoomToken) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	refresh := squirrel.Expr("COALESCE(NULLIF(?, ''), zoom_refresh_token)", tok.RefreshToken)
	stmt := postgres.Builder().Update(table).
		Set("zoom_access_token", tok.AccessToken).
		Set("zoom_refresh_token", refresh).
		Set("zoom_token_expires_at", tok.ExpiresAt.UTC()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userID, "zoom_connected": true})

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, "zoom_credentials", userID)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "zoom_credentials", userID)
	}
	return nil
}

// ConnectZoom links a Zoom account to the user and stores its first token pair.
func (r *Repo) ConnectZoom(ctx context.Context, userID uuid.UUID, zoomUserID string, tok domain.ZoomToken) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Update(table).
		Set("zoom_user_id", zoomUserID).
		Set("zoom_connected", true).
		Set("zoom_access_token", tok.AccessToken).
		Set("zoom_refresh_token", nullIfEmpty(tok.RefreshToken)).
		Set("zoom_token_expires_at", tok.ExpiresAt.UTC()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userID})

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, "zoom_credentials", userID)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", userID)
	}
	return nil
}

// DisconnectZoom clears all stored Zoom tokens. The Zoom user ID is kept for
// reference. Idempotent.
func (r *Repo) DisconnectZoom(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder().Update(table).
		Set("zoom_connected", false).
		Set("zoom_access_token", nil).
		Set("zoom_refresh_token", nil).
		Set("zoom_token_expires_at", nil).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userID})

	n, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, "zoom_credentials", userID)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.ZoomUserID, &u.ZoomConnected, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
