// Package slack posts meeting summaries through the Slack Web API.
package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/notify"
	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const (
	defaultBaseURL    = "https://slack.com/api"
	defaultTimeout    = 10 * time.Second
	defaultBackoff    = 500 * time.Millisecond
	defaultMaxBackoff = 5 * time.Second
	postMessagePath   = "/chat.postMessage"
	maxSectionItems   = 10
)

// Client is a minimal chat.postMessage client.
type Client struct {
	http           *resty.Client
	enabled        bool
	maxRetries     uint64
	initialBackoff time.Duration
	log            *slog.Logger
}

type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
	Mrkdwn  bool   `json:"mrkdwn"`
}

type postMessageResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Channel string `json:"channel,omitempty"`
	TS      string `json:"ts,omitempty"`
}

// NewClient creates a Slack client. An empty bot token yields a client that
// reports notify.ErrChannelDisabled on every call.
func NewClient(cfg config.SlackConfig, logger *slog.Logger) *Client {
	base := cfg.APIBaseURL
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(base, "/")).
			SetAuthToken(cfg.BotToken).
			SetHeader("Content-Type", "application/json; charset=utf-8").
			SetTimeout(timeout),
		enabled:        cfg.BotToken != "",
		maxRetries:     cfg.MaxRetries,
		initialBackoff: defaultBackoff,
		log:            logger.With("adapter", "slack"),
	}
}

// Enabled reports whether a bot token is configured.
func (c *Client) Enabled() bool { return c.enabled }

// PostSummary posts one message with the summary to channel.
func (c *Client) PostSummary(ctx context.Context, channel string, summary notify.Summary) error {
	if !c.enabled {
		return notify.ErrChannelDisabled
	}
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return domain.NewValidationError("slackChannel", "required")
	}

	req := postMessageRequest{Channel: channel, Text: FormatSummary(summary), Mrkdwn: true}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.initialBackoff
	exp.Multiplier = 2
	exp.MaxInterval = defaultMaxBackoff
	exp.Reset()
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, c.maxRetries), ctx)

	var out postMessageResponse
	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		out = postMessageResponse{}
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(&req).
			SetResult(&out).
			Post(postMessagePath)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		switch status := resp.StatusCode(); {
		case status >= http.StatusInternalServerError, status == http.StatusTooManyRequests:
			return fmt.Errorf("slack: status %d", status)
		case status >= http.StatusBadRequest:
			return backoff.Permanent(fmt.Errorf("slack: status %d", status))
		}
		if !out.OK {
			return backoff.Permanent(fmt.Errorf("slack: %s", out.Error))
		}
		return nil
	}, policy)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		c.log.ErrorContext(ctx, "chat.postMessage failed",
			slog.String("channel", channel),
			slog.Int("attempts", attempts),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("slack: post message: %w", domain.ErrUpstream)
	}

	c.log.InfoContext(ctx, "summary posted to slack",
		slog.String("channel", out.Channel),
		slog.String("ts", out.TS),
	)
	return nil
}

// FormatSummary renders the summary as Slack mrkdwn.
func FormatSummary(s notify.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s*\n", escape(s.Subject()))
	if !s.StartTime.IsZero() {
		b.WriteString(s.StartTime.UTC().Format("Jan 2, 2006 15:04 UTC"))
		if s.DurationMinutes > 0 {
			fmt.Fprintf(&b, " · %d min", s.DurationMinutes)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(escape(s.Summary))
	b.WriteString("\n")

	if len(s.KeyPoints) > 0 {
		b.WriteString("\n*Key points*\n")
		for i, kp := range s.KeyPoints {
			if i == maxSectionItems {
				fmt.Fprintf(&b, "_and %d more_\n", len(s.KeyPoints)-i)
				break
			}
			fmt.Fprintf(&b, "• %s\n", escape(kp))
		}
	}

	if len(s.ActionItems) > 0 {
		b.WriteString("\n*Action items*\n")
		for i, a := range s.ActionItems {
			if i == maxSectionItems {
				fmt.Fprintf(&b, "_and %d more_\n", len(s.ActionItems)-i)
				break
			}
			fmt.Fprintf(&b, "• %s", escape(a.Description))
			if a.Owner != "" {
				fmt.Fprintf(&b, " (%s)", escape(a.Owner))
			}
			if a.Deadline != nil {
				fmt.Fprintf(&b, ", due %s", a.Deadline.UTC().Format("Jan 2"))
			}
			b.WriteString("\n")
		}
	}

	if s.Link != "" {
		fmt.Fprintf(&b, "\n<%s|Open the meeting>\n", s.Link)
	}
	return b.String()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escape applies the three entity escapes Slack requires in message text.
func escape(s string) string { return escaper.Replace(s) }
