// Package render turns a domain.Document into export files.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// Renderer produces one export format.
type Renderer interface {
	Render(doc *domain.Document) ([]byte, error)
	Extension() string
	ContentType() string
}

// For returns the renderer for format.
func For(format domain.ExportFormat) (Renderer, error) {
	switch format {
	case domain.ExportFormatPDF:
		return PDF{}, nil
	case domain.ExportFormatWord:
		return Word{}, nil
	case domain.ExportFormatMarkdown:
		return Markdown{}, nil
	case domain.ExportFormatJSON:
		return JSON{}, nil
	}
	return nil, fmt.Errorf("render: %w", domain.NewValidationError("format", "unsupported format "+string(format)))
}

// ContentType returns the MIME type for a stored file extension, falling
// back to application/octet-stream.
func ContentType(ext string) string {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "md":
		return "text/markdown; charset=utf-8"
	case "json":
		return "application/json"
	case "mp4":
		return "video/mp4"
	case "m4a":
		return "audio/mp4"
	case "vtt":
		return "text/vtt; charset=utf-8"
	case "txt":
		return "text/plain; charset=utf-8"
	}
	return "application/octet-stream"
}

// Shared formatting helpers.

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("January 2, 2006 15:04 MST")
}

func formatDeadline(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

func formatOffset(seconds float64) string {
	s := int(math.Floor(seconds))
	if s >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func formatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return fmt.Sprintf("%.1f/10", *score)
}

func headerLine(doc *domain.Document) string {
	parts := make([]string, 0, 2)
	if d := formatDate(doc.StartTime); d != "" {
		parts = append(parts, d)
	}
	if doc.DurationMinutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", doc.DurationMinutes))
	}
	return strings.Join(parts, " · ")
}

func transcriptLine(s domain.TranscriptSegment) string {
	line := "[" + formatOffset(s.Start) + "] "
	if s.Speaker != "" {
		line += s.Speaker + ": "
	}
	return line + s.Text
}

func actionItemLine(a domain.DocumentActionItem) string {
	var extra []string
	if a.Owner != "" {
		extra = append(extra, "owner: "+a.Owner)
	}
	if d := formatDeadline(a.Deadline); d != "" {
		extra = append(extra, "due: "+d)
	}
	if a.Priority != "" {
		extra = append(extra, "priority: "+a.Priority)
	}
	if a.Status != "" {
		extra = append(extra, "status: "+a.Status)
	}
	if len(extra) == 0 {
		return a.Description
	}
	return a.Description + " (" + strings.Join(extra, ", ") + ")"
}

func title(doc *domain.Document) string {
	if doc.Title == "" {
		return "Meeting notes"
	}
	return doc.Title
}
