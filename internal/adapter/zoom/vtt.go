package zoom

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// ParseVTT converts a WebVTT transcript into segments. Zoom writes the
// speaker as a "Name: " prefix on the cue text; "<v Name>" voice tags are
// accepted too. Cues without a valid timing line are skipped.
func ParseVTT(raw string) []domain.TranscriptSegment {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimPrefix(raw, "\ufeff")

	var segments []domain.TranscriptSegment
	for _, block := range strings.Split(raw, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")

		timing := -1
		for i, l := range lines {
			if strings.Contains(l, "-->") {
				timing = i
				break
			}
		}
		if timing < 0 {
			continue
		}

		start, end, ok := parseCueTiming(lines[timing])
		if !ok {
			continue
		}

		text := strings.TrimSpace(strings.Join(lines[timing+1:], " "))
		if text == "" {
			continue
		}
		speaker, text := splitSpeaker(text)
		segments = append(segments, domain.TranscriptSegment{
			Speaker: speaker,
			Start:   start,
			End:     end,
			Text:    text,
		})
	}
	return segments
}

func parseCueTiming(line string) (float64, float64, bool) {
	parts := strings.SplitN(line, "-->", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok := parseTimestamp(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, 0, false
	}
	// Cue settings may follow the end timestamp.
	endField := strings.Fields(parts[1])
	if len(endField) == 0 {
		return 0, 0, false
	}
	end, ok := parseTimestamp(endField[0])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// parseTimestamp parses "hh:mm:ss.mmm" or "mm:ss.mmm" into seconds.
func parseTimestamp(s string) (float64, bool) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0, false
	}
	var total float64
	for i, f := range fields {
		last := i == len(fields)-1
		if last {
			sec, err := strconv.ParseFloat(strings.Replace(f, ",", ".", 1), 64)
			if err != nil || sec < 0 {
				return 0, false
			}
			total = total*60 + sec
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + float64(n)
	}
	return total, true
}

func splitSpeaker(text string) (string, string) {
	if strings.HasPrefix(text, "<v ") {
		if end := strings.Index(text, ">"); end > 0 {
			speaker := strings.TrimSpace(text[3:end])
			rest := strings.TrimSpace(strings.ReplaceAll(text[end+1:], "</v>", ""))
			return speaker, rest
		}
	}
	if i := strings.Index(text, ": "); i > 0 && i <= 64 {
		return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+2:])
	}
	return "", text
}
