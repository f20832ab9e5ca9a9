package render

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// Markdown renders a CommonMark document.
type Markdown struct{}

func (Markdown) Extension() string   { return "md" }
func (Markdown) ContentType() string { return ContentType("md") }

func (Markdown) Render(doc *domain.Document) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title(doc))
	if h := headerLine(doc); h != "" {
		fmt.Fprintf(&b, "_%s_\n\n", h)
	}

	if doc.HasSummary() {
		b.WriteString("## Summary\n\n")
		if doc.Summary != "" {
			b.WriteString(doc.Summary)
			b.WriteString("\n\n")
		}
		if len(doc.KeyPoints) > 0 {
			b.WriteString("### Key points\n\n")
			for _, p := range doc.KeyPoints {
				fmt.Fprintf(&b, "- %s\n", p)
			}
			b.WriteString("\n")
		}
		if doc.Sentiment != "" || doc.Score != nil {
			var meta []string
			if doc.Sentiment != "" {
				meta = append(meta, "**Sentiment:** "+string(doc.Sentiment))
			}
			if s := formatScore(doc.Score); s != "" {
				meta = append(meta, "**Effectiveness:** "+s)
			}
			b.WriteString(strings.Join(meta, " · "))
			b.WriteString("\n\n")
		}
	}

	if len(doc.ActionItems) > 0 {
		b.WriteString("## Action items\n\n")
		for _, a := range doc.ActionItems {
			box := " "
			if a.Status == string(domain.TaskStatusCompleted) {
				box = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", box, actionItemLine(a))
		}
		b.WriteString("\n")
	}

	if len(doc.SpeakerInsights) > 0 {
		b.WriteString("## Speakers\n\n")
		for _, s := range doc.SpeakerInsights {
			fmt.Fprintf(&b, "- **%s**: %s\n", s.Speaker, s.Contribution)
		}
		b.WriteString("\n")
	}

	if len(doc.Transcript) > 0 {
		b.WriteString("## Transcript\n\n")
		for _, s := range doc.Transcript {
			b.WriteString(transcriptLine(s))
			b.WriteString("  \n")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n_Generated %s_\n", formatDate(doc.GeneratedAt))
	return []byte(b.String()), nil
}
