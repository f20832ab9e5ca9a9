// Package zoom is a client for the Zoom REST API and OAuth endpoints.
package zoom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const (
	defaultBaseURL           = "https://api.zoom.us/v2"
	defaultAPITimeout        = 15 * time.Second
	defaultDownloadTimeout   = 10 * time.Minute
	defaultInitialBackoff    = time.Second
	defaultMaxBackoff        = 30 * time.Second
	defaultBackoffMultiplier = 2.0
)

// Client calls the Zoom REST API on behalf of a user. Every call takes the
// user's access token; token lifecycle is handled elsewhere.
type Client struct {
	baseURL    string
	api        *http.Client
	download   *http.Client
	maxRetries int
	initial    time.Duration
	max        time.Duration
	multiplier float64
	log        *slog.Logger
}

// NewClient creates a Client from cfg, filling zero values with defaults.
func NewClient(cfg config.ZoomConfig, logger *slog.Logger) *Client {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultBaseURL
	}
	if cfg.APITimeout <= 0 {
		cfg.APITimeout = defaultAPITimeout
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = defaultDownloadTimeout
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = defaultInitialBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return &Client{
		baseURL:    cfg.APIBaseURL,
		api:        &http.Client{Timeout: cfg.APITimeout},
		download:   &http.Client{Timeout: cfg.DownloadTimeout},
		maxRetries: cfg.MaxRetries,
		initial:    cfg.InitialBackoff,
		max:        cfg.MaxBackoff,
		multiplier: defaultBackoffMultiplier,
		log:        logger.With("adapter", "zoom"),
	}
}

// shouldRetry reports whether a failed attempt is worth repeating:
// network errors, 5xx and 429. Context cancellation is final.
func shouldRetry(status int, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	return status >= 500 || status == http.StatusTooManyRequests
}

// backoff returns the wait before retry number attempt (0-based) with ±25% jitter.
func (c *Client) backoff(attempt int) time.Duration {
	d := float64(c.initial) * math.Pow(c.multiplier, float64(attempt))
	if d > float64(c.max) {
		d = float64(c.max)
	}
	d += d * 0.25 * (rand.Float64()*2 - 1)
	if time.Duration(d) < c.initial {
		return c.initial
	}
	return time.Duration(d)
}

// maxErrorBody bounds how much of a failed download response is read.
const maxErrorBody = 64 << 10

// get performs an authenticated GET with retries and returns the body of a
// 2xx response. Non-2xx responses are mapped onto domain errors.
func (c *Client) get(ctx context.Context, hc *http.Client, op, url, token string) ([]byte, error) {
	body, _, err := c.do(ctx, hc, op, url, token, nil)
	return body, err
}

// do runs the retry loop. With a nil sink the 2xx body is returned; otherwise
// it is copied into sink and the byte count is returned. An attempt that has
// already written to sink is never repeated.
func (c *Client) do(ctx context.Context, hc *http.Client, op, url, token string, sink io.Writer) ([]byte, int64, error) {
	var (
		status  int
		body    []byte
		written int64
		err     error
	)
	for attempt := 0; ; attempt++ {
		status, body, written, err = c.attempt(ctx, hc, url, token, sink)
		if !shouldRetry(status, err) || written > 0 || attempt >= c.maxRetries || ctx.Err() != nil {
			break
		}

		wait := c.backoff(attempt)
		attrs := []any{slog.String("op", op), slog.Int("attempt", attempt+1), slog.Duration("backoff", wait)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		} else {
			attrs = append(attrs, slog.Int("status", status))
		}
		c.log.WarnContext(ctx, "zoom request failed, retrying", attrs...)

		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		case <-time.After(wait):
		}
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, written, fmt.Errorf("zoom: %s: %w", op, ctxErr)
		}
		c.log.ErrorContext(ctx, "zoom request failed", slog.String("op", op),
			slog.Int64("written", written), slog.String("error", err.Error()))
		return nil, written, fmt.Errorf("zoom: %s: %w", op, domain.ErrUpstream)
	}
	if err := c.checkStatus(ctx, op, status, body); err != nil {
		return nil, 0, err
	}
	return body, written, nil
}

func (c *Client) attempt(ctx context.Context, hc *http.Client, url, token string, sink io.Writer) (int, []byte, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if sink == nil {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if sink != nil && ok {
		n, err := io.Copy(sink, resp.Body)
		if err != nil {
			return resp.StatusCode, nil, n, fmt.Errorf("copy body: %w", err)
		}
		return resp.StatusCode, nil, n, nil
	}

	var r io.Reader = resp.Body
	if sink != nil {
		r = io.LimitReader(resp.Body, maxErrorBody)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return resp.StatusCode, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, 0, nil
}

// checkStatus maps a provider status onto a domain error. The provider body
// is logged and never returned to callers.
func (c *Client) checkStatus(ctx context.Context, op string, status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	var apiErr struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &apiErr)

	switch status {
	case http.StatusNotFound:
		c.log.DebugContext(ctx, "zoom resource not found", slog.String("op", op), slog.Int("code", apiErr.Code))
		return fmt.Errorf("zoom: %s: %w", op, domain.ErrNotFound)
	case http.StatusUnauthorized:
		c.log.WarnContext(ctx, "zoom rejected access token", slog.String("op", op),
			slog.Int("code", apiErr.Code), slog.String("message", apiErr.Message))
		return fmt.Errorf("zoom: %s: %w", op, domain.ErrReauthRequired)
	default:
		c.log.ErrorContext(ctx, "zoom API error", slog.String("op", op), slog.Int("status", status),
			slog.Int("code", apiErr.Code), slog.String("message", apiErr.Message))
		return fmt.Errorf("zoom: %s: status %d: %w", op, status, domain.ErrUpstream)
	}
}
