package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application account, optionally linked to Zoom.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  *string
	ZoomUserID    *string
	ZoomConnected bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ZoomCredentials is the persisted OAuth credential record for one user.
// AccessToken and RefreshToken are only populated while Connected is true.
type ZoomCredentials struct {
	UserID       uuid.UUID
	ZoomUserID   string
	Connected    bool
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// HasAccessToken reports whether an access token is stored for a connected account.
func (c *ZoomCredentials) HasAccessToken() bool {
	return c != nil && c.Connected && c.AccessToken != ""
}

// ExpiredAt reports whether the access token is unusable at now, treating tokens
// that expire within skew as already expired. The comparison is done in UTC.
func (c *ZoomCredentials) ExpiredAt(now time.Time, skew time.Duration) bool {
	return !c.ExpiresAt.UTC().After(now.UTC().Add(skew))
}

// ZoomToken is a provider token pair as returned by an exchange or a refresh.
type ZoomToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// RefreshToken represents a hashed session refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
