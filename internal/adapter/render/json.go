package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// JSON renders the document as an indented JSON object. Sections that are
// absent from the document are omitted from the output.
type JSON struct{}

func (JSON) Extension() string   { return "json" }
func (JSON) ContentType() string { return ContentType("json") }

type jsonDocument struct {
	Title              string                      `json:"title"`
	StartTime          *time.Time                  `json:"startTime,omitempty"`
	DurationMinutes    int                         `json:"durationMinutes,omitempty"`
	GeneratedAt        time.Time                   `json:"generatedAt"`
	Summary            string                      `json:"summary,omitempty"`
	KeyPoints          []string                    `json:"keyPoints,omitempty"`
	Sentiment          string                      `json:"sentiment,omitempty"`
	EffectivenessScore *float64                    `json:"effectivenessScore,omitempty"`
	ActionItems        []domain.DocumentActionItem `json:"actionItems,omitempty"`
	SpeakerInsights    []domain.SpeakerInsight     `json:"speakerInsights,omitempty"`
	Transcript         []domain.TranscriptSegment  `json:"transcript,omitempty"`
}

func (JSON) Render(doc *domain.Document) ([]byte, error) {
	out := jsonDocument{
		Title:              title(doc),
		DurationMinutes:    doc.DurationMinutes,
		GeneratedAt:        doc.GeneratedAt.UTC(),
		Summary:            doc.Summary,
		KeyPoints:          doc.KeyPoints,
		Sentiment:          string(doc.Sentiment),
		EffectivenessScore: doc.Score,
		ActionItems:        doc.ActionItems,
		SpeakerInsights:    doc.SpeakerInsights,
		Transcript:         doc.Transcript,
	}
	if !doc.StartTime.IsZero() {
		st := doc.StartTime.UTC()
		out.StartTime = &st
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json: %v: %w", err, domain.ErrRender)
	}
	return b, nil
}
