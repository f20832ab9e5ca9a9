package export

import "github.com/heartmarshall/meetsum-backend/internal/domain"

// document assembles the sections requested by input. Sections that
// were not requested stay empty, so no renderer can emit them.
func (s *Service) document(m *domain.Meeting, tasks []domain.Task, input ExportInput) *domain.Document {
	doc := &domain.Document{
		Title:           m.Topic,
		StartTime:       m.StartTime,
		DurationMinutes: m.DurationMinutes,
		GeneratedAt:     s.now().UTC(),
	}

	if input.IncludeSummary {
		doc.Summary = m.Summary
		doc.KeyPoints = m.BulletPoints
		if m.Sentiment != nil {
			doc.Sentiment = *m.Sentiment
		}
		doc.Score = m.EffectivenessScore
	}

	if input.IncludeActionItems {
		for _, t := range tasks {
			item := domain.DocumentActionItem{
				Description: t.Description,
				Deadline:    t.Deadline,
				Priority:    string(t.Priority),
				Status:      string(t.Status),
			}
			if t.Owner != nil {
				item.Owner = *t.Owner
			}
			doc.ActionItems = append(doc.ActionItems, item)
		}
	}

	if input.IncludeSpeakerInsights && m.AINotes != nil {
		doc.SpeakerInsights = m.AINotes.SpeakerInsights
	}

	if input.IncludeTranscript {
		doc.Transcript = m.Transcript
		if len(doc.Transcript) == 0 && m.HasTranscript() {
			doc.Transcript = domain.SegmentsFromText(m.TranscriptText)
		}
	}
	return doc
}
