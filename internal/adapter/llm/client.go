// Package llm wraps the Anthropic Messages API for single-shot completions.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = fmt.Errorf("llm not configured: %w", domain.ErrUpstream)

// Client sends prompts to Claude and returns the text of the reply.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	enabled   bool
	log       *slog.Logger
}

// NewClient creates a Client. Extra options are appended after the
// configured ones, so tests can point the client at a fake server.
func NewClient(cfg config.LLMConfig, logger *slog.Logger, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Timeout > 0 {
		base = append(base, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	return &Client{
		api:       anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: maxTokens,
		enabled:   cfg.APIKey != "",
		log:       logger.With("adapter", "llm"),
	}
}

// Complete sends system and prompt as one user turn and returns the
// concatenated text blocks of the reply.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}

	start := time.Now()
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("llm: %w", ctxErr)
		}
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			c.log.ErrorContext(ctx, "llm api error", slog.Int("status", apiErr.StatusCode), slog.String("error", err.Error()))
		} else {
			c.log.ErrorContext(ctx, "llm call failed", slog.String("error", err.Error()))
		}
		return "", fmt.Errorf("llm: messages: %w", domain.ErrUpstream)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("llm: empty response: %w", domain.ErrUpstream)
	}

	c.log.InfoContext(ctx, "llm completion",
		slog.String("model", c.model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)
	return b.String(), nil
}
