package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/zoom"
	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	ConnectZoom(ctx context.Context, userID uuid.UUID, zoomUserID string, tok domain.ZoomToken) error
	DisconnectZoom(ctx context.Context, userID uuid.UUID) error
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// stateSigner issues and checks the OAuth state parameter.
type stateSigner interface {
	Sign(userID uuid.UUID) (string, error)
	Verify(state string) (uuid.UUID, error)
}

// zoomOAuth defines the Zoom authorization code flow needed by auth service.
type zoomOAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (domain.ZoomToken, error)
}

// zoomProfile resolves the Zoom account behind a fresh access token.
type zoomProfile interface {
	GetCurrentUser(ctx context.Context, token string) (*zoom.User, error)
}

// Service implements auth operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	tokens  tokenRepo
	jwt     jwtManager
	states  stateSigner
	oauth   zoomOAuth
	profile zoomProfile
	cfg     config.AuthConfig
	now     func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	jwt jwtManager,
	states stateSigner,
	oauth zoomOAuth,
	profile zoomProfile,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "auth"),
		users:   users,
		tokens:  tokens,
		jwt:     jwt,
		states:  states,
		oauth:   oauth,
		profile: profile,
		cfg:     cfg,
		now:     time.Now,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, s.now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}
