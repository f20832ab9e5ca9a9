package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/notify"
)

//go:embed templates/*
var templateFS embed.FS

// Rendered holds both bodies of a multipart/alternative message.
type Rendered struct {
	HTML string
	Text string
}

type templates struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

var funcs = map[string]any{"date": formatDate}

func loadTemplates() (*templates, error) {
	html, err := htmltemplate.New("summary.html").Funcs(funcs).ParseFS(templateFS, "templates/summary.html")
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	text, err := texttemplate.New("summary.txt").Funcs(funcs).ParseFS(templateFS, "templates/summary.txt")
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}
	return &templates{html: html, text: text}, nil
}

func (t *templates) render(s notify.Summary) (*Rendered, error) {
	var html bytes.Buffer
	if err := t.html.Execute(&html, s); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	var text bytes.Buffer
	if err := t.text.Execute(&text, s); err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	return &Rendered{HTML: html.String(), Text: text.String()}, nil
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format("Jan 2, 2006 15:04 UTC")
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.UTC().Format("Jan 2, 2006")
	}
	return ""
}
