package zoom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// defaultTokenLifetime is assumed when the provider omits expires_in.
const defaultTokenLifetime = time.Hour

// OAuth performs the Zoom authorization-code flow and token refreshes.
type OAuth struct {
	cfg  *oauth2.Config
	http *http.Client
	log  *slog.Logger
	now  func() time.Time
}

// NewOAuth creates an OAuth exchanger for the configured Zoom app.
func NewOAuth(cfg config.ZoomConfig, logger *slog.Logger) *OAuth {
	timeout := cfg.APITimeout
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}
	return &OAuth{
		cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		http: &http.Client{Timeout: timeout},
		log:  logger.With("adapter", "zoom_oauth"),
		now:  time.Now,
	}
}

// AuthCodeURL returns the provider consent URL carrying state.
func (o *OAuth) AuthCodeURL(state string) string {
	return o.cfg.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token pair. A code the
// provider rejects yields domain.ErrUnauthorized.
func (o *OAuth) Exchange(ctx context.Context, code string) (domain.ZoomToken, error) {
	tok, err := o.cfg.Exchange(o.withClient(ctx), code)
	if err != nil {
		if rejected(err) {
			o.log.WarnContext(ctx, "zoom rejected authorization code", slog.String("error", err.Error()))
			return domain.ZoomToken{}, fmt.Errorf("zoom: exchange code: %w", domain.ErrUnauthorized)
		}
		return domain.ZoomToken{}, o.upstream(ctx, "exchange code", err)
	}
	return o.toDomain(tok), nil
}

// Refresh obtains a new token pair using refreshToken. Zoom rotates the
// refresh token on every call; the returned pair must replace the stored one.
// A revoked or expired refresh token yields domain.ErrReauthRequired.
func (o *OAuth) Refresh(ctx context.Context, refreshToken string) (domain.ZoomToken, error) {
	expired := &oauth2.Token{RefreshToken: refreshToken, Expiry: o.now().Add(-time.Minute)}
	tok, err := o.cfg.TokenSource(o.withClient(ctx), expired).Token()
	if err != nil {
		if rejected(err) {
			o.log.WarnContext(ctx, "zoom rejected refresh token", slog.String("error", err.Error()))
			return domain.ZoomToken{}, fmt.Errorf("zoom: refresh token: %w", domain.ErrReauthRequired)
		}
		return domain.ZoomToken{}, o.upstream(ctx, "refresh token", err)
	}
	return o.toDomain(tok), nil
}

func (o *OAuth) withClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, o.http)
}

func (o *OAuth) upstream(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("zoom: %s: %w", op, ctxErr)
	}
	o.log.ErrorContext(ctx, "zoom token endpoint failed", slog.String("op", op), slog.String("error", err.Error()))
	return fmt.Errorf("zoom: %s: %w", op, domain.ErrUpstream)
}

func (o *OAuth) toDomain(tok *oauth2.Token) domain.ZoomToken {
	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = o.now().Add(defaultTokenLifetime)
	}
	return domain.ZoomToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    expiry.UTC(),
	}
}

// rejected reports whether the token endpoint refused the grant itself, as
// opposed to failing in transit.
func rejected(err error) bool {
	var re *oauth2.RetrieveError
	if !errors.As(err, &re) {
		return false
	}
	if re.ErrorCode == "invalid_grant" || re.ErrorCode == "invalid_request" {
		return true
	}
	if re.Response != nil {
		return re.Response.StatusCode == http.StatusBadRequest || re.Response.StatusCode == http.StatusUnauthorized
	}
	return false
}
