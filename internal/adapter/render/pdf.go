package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 5.5
)

// PDF renders an A4 document with the core Helvetica font. Text is
// translated to cp1252; characters outside it are replaced.
type PDF struct {
	// Uncompressed disables stream compression, which keeps text searchable
	// in the raw output.
	Uncompressed bool
}

func (PDF) Extension() string   { return "pdf" }
func (PDF) ContentType() string { return ContentType("pdf") }

func (p PDF) Render(doc *domain.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(!p.Uncompressed)
	pdf.SetTitle(title(doc), true)
	pdf.SetCreator("meetsum", false)
	if !doc.GeneratedAt.IsZero() {
		pdf.SetCreationDate(doc.GeneratedAt.UTC())
	}
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(pdfFont, "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(style string, size float64, s string) {
		pdf.SetFont(pdfFont, style, size)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, pdfLineHeight, tr(s), "", "L", false)
	}
	heading := func(s string) {
		pdf.Ln(3)
		text("B", 13, s)
		pdf.Ln(1)
	}

	text("B", 18, title(doc))
	if h := headerLine(doc); h != "" {
		text("", 10, h)
	}

	if doc.HasSummary() {
		heading("Summary")
		if doc.Summary != "" {
			text("", 11, doc.Summary)
		}
		if len(doc.KeyPoints) > 0 {
			pdf.Ln(2)
			text("B", 11, "Key points")
			for _, kp := range doc.KeyPoints {
				text("", 11, "- "+kp)
			}
		}
		if doc.Sentiment != "" {
			text("", 10, "Sentiment: "+string(doc.Sentiment))
		}
		if s := formatScore(doc.Score); s != "" {
			text("", 10, "Effectiveness: "+s)
		}
	}

	if len(doc.ActionItems) > 0 {
		heading("Action items")
		for i, a := range doc.ActionItems {
			text("", 11, fmt.Sprintf("%d. %s", i+1, actionItemLine(a)))
		}
	}

	if len(doc.SpeakerInsights) > 0 {
		heading("Speakers")
		for _, s := range doc.SpeakerInsights {
			text("B", 11, s.Speaker)
			text("", 11, s.Contribution)
		}
	}

	if len(doc.Transcript) > 0 {
		heading("Transcript")
		for _, s := range doc.Transcript {
			text("", 9, transcriptLine(s))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %v: %w", err, domain.ErrRender)
	}
	return buf.Bytes(), nil
}
