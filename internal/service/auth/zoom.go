package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

// ZoomAuthorizeURL returns the Zoom consent URL for the authenticated user.
// The embedded state is signed, expires and can be redeemed once.
func (s *Service) ZoomAuthorizeURL(ctx context.Context) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	state, err := s.states.Sign(userID)
	if err != nil {
		return "", fmt.Errorf("auth.ZoomAuthorizeURL sign state: %w", err)
	}
	return s.oauth.AuthCodeURL(state), nil
}

// ZoomCallback redeems the state and authorization code, links the Zoom
// account to the user the state was issued for and starts a new session.
func (s *Service) ZoomCallback(ctx context.Context, input ZoomCallbackInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.states.Verify(input.State)
	if err != nil {
		s.log.WarnContext(ctx, "oauth state rejected", slog.String("error", err.Error()))
		return nil, domain.ErrUnauthorized
	}

	tok, err := s.oauth.Exchange(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.ZoomCallback exchange: %w", err)
	}

	zu, err := s.profile.GetCurrentUser(ctx, tok.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("auth.ZoomCallback get zoom user: %w", err)
	}
	if zu.ID == "" {
		return nil, fmt.Errorf("auth.ZoomCallback: zoom user has no id: %w", domain.ErrUpstream)
	}

	if err := s.users.ConnectZoom(ctx, userID, zu.ID, tok); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ZoomCallback connect: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.ZoomCallback get user: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.ZoomCallback issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "zoom account connected",
		slog.String("user_id", userID.String()),
		slog.String("zoom_user_id", zu.ID))

	return result, nil
}

// DisconnectZoom clears the stored Zoom tokens of the authenticated user.
func (s *Service) DisconnectZoom(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.users.DisconnectZoom(ctx, userID); err != nil {
		return fmt.Errorf("auth.DisconnectZoom: %w", err)
	}
	s.log.InfoContext(ctx, "zoom account disconnected", slog.String("user_id", userID.String()))
	return nil
}
