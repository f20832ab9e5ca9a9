package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// Word renders a minimal WordprocessingML (.docx) package: content types,
// the package relationship and a single document part with inline formatting.
type Word struct{}

func (Word) Extension() string   { return "docx" }
func (Word) ContentType() string { return ContentType("docx") }

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func (Word) Render(doc *domain.Document) ([]byte, error) {
	var body wordBody

	body.para(title(doc), 36, true)
	if h := headerLine(doc); h != "" {
		body.para(h, 20, false)
	}

	if doc.HasSummary() {
		body.heading("Summary")
		if doc.Summary != "" {
			body.para(doc.Summary, 22, false)
		}
		if len(doc.KeyPoints) > 0 {
			body.para("Key points", 22, true)
			for _, kp := range doc.KeyPoints {
				body.para("• "+kp, 22, false)
			}
		}
		if doc.Sentiment != "" {
			body.para("Sentiment: "+string(doc.Sentiment), 20, false)
		}
		if s := formatScore(doc.Score); s != "" {
			body.para("Effectiveness: "+s, 20, false)
		}
	}

	if len(doc.ActionItems) > 0 {
		body.heading("Action items")
		for i, a := range doc.ActionItems {
			body.para(fmt.Sprintf("%d. %s", i+1, actionItemLine(a)), 22, false)
		}
	}

	if len(doc.SpeakerInsights) > 0 {
		body.heading("Speakers")
		for _, s := range doc.SpeakerInsights {
			body.para(s.Speaker, 22, true)
			body.para(s.Contribution, 22, false)
		}
	}

	if len(doc.Transcript) > 0 {
		body.heading("Transcript")
		for _, s := range doc.Transcript {
			body.para(transcriptLine(s), 18, false)
		}
	}

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1134" w:header="708" w:footer="708" w:gutter="0"/></w:sectPr>` +
		`</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := doc.GeneratedAt
	if modified.IsZero() {
		modified = time.Now()
	}
	parts := []struct{ name, data string }{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML},
	}
	for _, p := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: p.name, Method: zip.Deflate, Modified: modified})
		if err != nil {
			return nil, fmt.Errorf("render docx: %v: %w", err, domain.ErrRender)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, fmt.Errorf("render docx: %v: %w", err, domain.ErrRender)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("render docx: %v: %w", err, domain.ErrRender)
	}
	return buf.Bytes(), nil
}

type wordBody struct {
	strings.Builder
}

func (b *wordBody) heading(s string) {
	b.WriteString(`<w:p><w:pPr><w:spacing w:before="240" w:after="80"/></w:pPr>`)
	b.run(s, 28, true)
	b.WriteString(`</w:p>`)
}

// para writes one paragraph; size is in half-points.
func (b *wordBody) para(s string, size int, bold bool) {
	b.WriteString(`<w:p>`)
	b.run(s, size, bold)
	b.WriteString(`</w:p>`)
}

func (b *wordBody) run(s string, size int, bold bool) {
	b.WriteString(`<w:r><w:rPr>`)
	if bold {
		b.WriteString(`<w:b/>`)
	}
	fmt.Fprintf(b, `<w:sz w:val="%d"/></w:rPr><w:t xml:space="preserve">`, size)
	_ = xml.EscapeText(b, []byte(s))
	b.WriteString(`</w:t></w:r>`)
}
