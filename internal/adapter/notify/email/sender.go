// Package email sends meeting summaries over SMTP.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/notify"
	"github.com/heartmarshall/meetsum-backend/internal/config"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// sendFunc has the signature of smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender delivers a single multipart message addressed to all recipients.
type Sender struct {
	cfg       config.SMTPConfig
	templates *templates
	send      sendFunc
	log       *slog.Logger
}

// NewSender creates a Sender. An empty host yields a sender that reports
// notify.ErrChannelDisabled on every call.
func NewSender(cfg config.SMTPConfig, logger *slog.Logger) (*Sender, error) {
	t, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &Sender{
		cfg:       cfg,
		templates: t,
		send:      smtp.SendMail,
		log:       logger.With("adapter", "email"),
	}, nil
}

// Enabled reports whether an SMTP host is configured.
func (s *Sender) Enabled() bool { return s.cfg.Host != "" }

// SendSummary renders the summary and sends one email to every recipient.
func (s *Sender) SendSummary(ctx context.Context, to []string, summary notify.Summary) error {
	if !s.Enabled() {
		return notify.ErrChannelDisabled
	}
	if len(to) == 0 {
		return domain.NewValidationError("recipients", "at least one recipient is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := s.templates.render(summary)
	if err != nil {
		return fmt.Errorf("email: %w", err)
	}
	msg := buildMessage(s.cfg.From, to, summary.Subject(), body, uuid.NewString())

	var auth smtp.Auth
	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.send(addr, auth, s.cfg.From, to, []byte(msg)); err != nil {
		s.log.ErrorContext(ctx, "smtp send failed",
			slog.String("addr", addr),
			slog.Int("recipients", len(to)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("email: send: %w", domain.ErrUpstream)
	}

	s.log.InfoContext(ctx, "summary email sent", slog.Int("recipients", len(to)))
	return nil
}

// buildMessage assembles a multipart/alternative message: text part first,
// then the HTML part.
func buildMessage(from string, to []string, subject string, body *Rendered, boundary string) string {
	var m strings.Builder

	fmt.Fprintf(&m, "From: %s\r\n", from)
	fmt.Fprintf(&m, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&m, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	m.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&m, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary)
	m.WriteString("\r\n")

	fmt.Fprintf(&m, "--%s\r\n", boundary)
	m.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	m.WriteString(crlf(body.Text))
	m.WriteString("\r\n")

	fmt.Fprintf(&m, "--%s\r\n", boundary)
	m.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	m.WriteString(crlf(body.HTML))
	m.WriteString("\r\n")

	fmt.Fprintf(&m, "--%s--\r\n", boundary)
	return m.String()
}

func crlf(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\n", "\r\n")
}
