package analysis

import (
	"fmt"
	"strings"
)

// maxTranscriptRunes bounds the transcript sent to the model.
const maxTranscriptRunes = 150_000

const systemPrompt = `You are an assistant that analyzes business meeting transcripts.
You answer with a single JSON object and nothing else.`

func buildPrompt(in AnalyzeTextInput) string {
	var meta strings.Builder
	if in.Topic != "" {
		fmt.Fprintf(&meta, "Topic: %s\n", in.Topic)
	}
	if in.DurationMinutes > 0 {
		fmt.Fprintf(&meta, "Duration: %d minutes\n", in.DurationMinutes)
	}
	if len(in.Speakers) > 0 {
		fmt.Fprintf(&meta, "Participants: %s\n", strings.Join(in.Speakers, ", "))
	}

	return fmt.Sprintf(`Analyze the following meeting.

%s
Transcript:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "summary": "<3-6 sentence summary of the meeting>",
  "keyPoints": ["<key point>"],
  "actionItems": [
    {
      "description": "<what has to be done>",
      "owner": "<person responsible, or empty>",
      "deadline": "<YYYY-MM-DD, or empty>",
      "priority": "<LOW|MEDIUM|HIGH|URGENT>"
    }
  ],
  "sentiment": "<POSITIVE|NEUTRAL|NEGATIVE|MIXED>",
  "topics": ["<topic>"],
  "speakerInsights": [
    {"speaker": "<name>", "contribution": "<role in the discussion>", "sentiment": "<tone>", "speakingShare": <0..1>}
  ],
  "effectivenessScore": <number from 1 to 10>,
  "recommendations": ["<how the next meeting could be better>"]
}

Rules:
- Only list action items that were actually agreed in the meeting
- Use names exactly as they appear in the transcript
- Leave owner and deadline empty when they were not stated
- Output ONLY the JSON, no markdown, no explanations`, meta.String(), truncate(in.Transcript, maxTranscriptRunes))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "\n[transcript truncated]"
}
