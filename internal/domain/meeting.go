package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meeting is one Zoom meeting instance or a manually/CSV-imported meeting.
type Meeting struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ZoomMeetingID   *string
	Source          MeetingSource
	Topic           string
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes int

	Transcript     []TranscriptSegment
	TranscriptText string
	Speakers       []Speaker

	Summary            string
	BulletPoints       []string
	AINotes            *AINotes
	Sentiment          *Sentiment
	EffectivenessScore *float64
	AnalyzedAt         *time.Time

	RecordingURL *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasZoomMeetingID reports whether the meeting is linked to a provider meeting.
func (m *Meeting) HasZoomMeetingID() bool {
	return m.ZoomMeetingID != nil && *m.ZoomMeetingID != ""
}

// HasTranscript reports whether there is any transcript text to analyze.
func (m *Meeting) HasTranscript() bool {
	return strings.TrimSpace(m.TranscriptText) != ""
}

// HasSummary reports whether analysis has produced a summary.
func (m *Meeting) HasSummary() bool {
	return strings.TrimSpace(m.Summary) != ""
}

// TranscriptSegment is one cue of a transcript.
type TranscriptSegment struct {
	Speaker string  `json:"speaker,omitempty"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}

// Speaker is a per-participant aggregate derived from the transcript.
type Speaker struct {
	Name         string `json:"name"`
	SegmentCount int    `json:"segmentCount"`
	WordCount    int    `json:"wordCount"`
}

// AINotes holds the structured analysis fields that have no dedicated column.
type AINotes struct {
	Sentiment       Sentiment        `json:"sentiment,omitempty"`
	KeyPoints       []string         `json:"keyPoints,omitempty"`
	Topics          []string         `json:"topics,omitempty"`
	SpeakerInsights []SpeakerInsight `json:"speakerInsights,omitempty"`
	Recommendations []string         `json:"recommendations,omitempty"`
}

// SpeakerInsight describes one participant's role in the meeting.
type SpeakerInsight struct {
	Speaker       string  `json:"speaker"`
	Contribution  string  `json:"contribution"`
	Sentiment     string  `json:"sentiment,omitempty"`
	SpeakingShare float64 `json:"speakingShare,omitempty"`
}

// PlainTranscript renders segments as "Speaker: text" lines.
func PlainTranscript(segments []TranscriptSegment) string {
	var b strings.Builder
	for _, s := range segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		if s.Speaker != "" {
			b.WriteString(s.Speaker)
			b.WriteString(": ")
		}
		b.WriteString(text)
	}
	return b.String()
}

// SpeakersFromSegments aggregates segments per speaker, in order of first appearance.
func SpeakersFromSegments(segments []TranscriptSegment) []Speaker {
	index := make(map[string]int)
	var speakers []Speaker
	for _, s := range segments {
		if s.Speaker == "" {
			continue
		}
		i, ok := index[s.Speaker]
		if !ok {
			i = len(speakers)
			index[s.Speaker] = i
			speakers = append(speakers, Speaker{Name: s.Speaker})
		}
		speakers[i].SegmentCount++
		speakers[i].WordCount += len(strings.Fields(s.Text))
	}
	return speakers
}

// SegmentsFromText splits a plain transcript into one segment per line.
// A leading "Name: " is taken as the speaker. Timings are unknown and zero.
func SegmentsFromText(text string) []TranscriptSegment {
	var out []TranscriptSegment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seg := TranscriptSegment{Text: line}
		if i := strings.Index(line, ": "); i > 0 && i <= 64 {
			seg.Speaker, seg.Text = strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+2:])
		}
		out = append(out, seg)
	}
	return out
}
