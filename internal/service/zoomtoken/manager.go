// Package zoomtoken hands out valid Zoom access tokens, refreshing and
// persisting rotated credentials when the stored token is about to expire.
package zoomtoken

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/metrics"
)

const defaultSkew = 30 * time.Second

type credentialStore interface {
	GetZoomCredentials(ctx context.Context, userID uuid.UUID) (*domain.ZoomCredentials, error)
	SaveZoomToken(ctx context.Context, userID uuid.UUID, tok domain.ZoomToken) error
	DisconnectZoom(ctx context.Context, userID uuid.UUID) error
}

type tokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (domain.ZoomToken, error)
}

// Manager implements GetValidAccessToken. Refreshes are serialized per user.
type Manager struct {
	log     *slog.Logger
	store   credentialStore
	oauth   tokenRefresher
	metrics *metrics.Metrics
	skew    time.Duration
	locks   *keyedMutex
	now     func() time.Time
}

// NewManager creates a token manager. m may be nil.
func NewManager(
	logger *slog.Logger,
	store credentialStore,
	oauth tokenRefresher,
	m *metrics.Metrics,
	cfg config.ZoomConfig,
) *Manager {
	skew := cfg.TokenSkew
	if skew <= 0 {
		skew = defaultSkew
	}
	return &Manager{
		log:     logger.With("service", "zoomtoken"),
		store:   store,
		oauth:   oauth,
		metrics: m,
		skew:    skew,
		locks:   newKeyedMutex(),
		now:     time.Now,
	}
}

// GetValidAccessToken returns an access token for userID that does not
// expire within the configured skew.
func (m *Manager) GetValidAccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	creds, err := m.load(ctx, userID)
	if err != nil {
		return "", err
	}
	if !creds.ExpiredAt(m.now(), m.skew) {
		return creds.AccessToken, nil
	}
	return m.refresh(ctx, userID)
}

func (m *Manager) load(ctx context.Context, userID uuid.UUID) (*domain.ZoomCredentials, error) {
	creds, err := m.store.GetZoomCredentials(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrZoomAuthRequired
		}
		return nil, fmt.Errorf("load zoom credentials: %w", err)
	}
	if !creds.HasAccessToken() {
		return nil, domain.ErrZoomAuthRequired
	}
	return creds, nil
}

func (m *Manager) refresh(ctx context.Context, userID uuid.UUID) (string, error) {
	unlock, err := m.locks.lock(ctx, userID)
	if err != nil {
		return "", err
	}
	defer unlock()

	// Another caller may have refreshed while we waited.
	creds, err := m.load(ctx, userID)
	if err != nil {
		return "", err
	}
	now := m.now()
	if !creds.ExpiredAt(now, m.skew) {
		return creds.AccessToken, nil
	}
	if creds.RefreshToken == "" {
		m.metrics.TokenRefresh(metrics.ResultRejected)
		m.disconnect(ctx, userID)
		return "", domain.ErrReauthRequired
	}

	tok, err := m.oauth.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		rejected := errors.Is(err, domain.ErrReauthRequired)
		result := metrics.ResultFailure
		if rejected {
			result = metrics.ResultRejected
		}
		m.metrics.TokenRefresh(result)
		m.log.WarnContext(ctx, "zoom token refresh failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		if rejected {
			m.disconnect(ctx, userID)
		}
		return "", fmt.Errorf("refresh zoom token: %w", err)
	}

	if tok.AccessToken == "" || !tok.ExpiresAt.UTC().After(now.UTC()) {
		m.metrics.TokenRefresh(metrics.ResultFailure)
		return "", fmt.Errorf("refresh zoom token: provider returned an unusable token: %w", domain.ErrUpstream)
	}

	if err := m.store.SaveZoomToken(ctx, userID, tok); err != nil {
		m.metrics.TokenRefresh(metrics.ResultFailure)
		return "", fmt.Errorf("save zoom token: %w", err)
	}

	m.metrics.TokenRefresh(metrics.ResultSuccess)
	m.log.InfoContext(ctx, "zoom token refreshed",
		slog.String("user_id", userID.String()),
		slog.Time("expires_at", tok.ExpiresAt.UTC()),
	)
	return tok.AccessToken, nil
}

// disconnect drops credentials Zoom will no longer honour, so the account
// reads as not connected until the user authorizes again.
func (m *Manager) disconnect(ctx context.Context, userID uuid.UUID) {
	if err := m.store.DisconnectZoom(ctx, userID); err != nil {
		m.log.WarnContext(ctx, "clear rejected zoom credentials",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}
