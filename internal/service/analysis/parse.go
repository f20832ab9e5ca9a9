package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var errMalformed = fmt.Errorf("malformed analysis: %w", domain.ErrUpstream)

type rawAnalysis struct {
	Summary            string                  `json:"summary"`
	KeyPoints          []string                `json:"keyPoints"`
	ActionItems        []json.RawMessage       `json:"actionItems"`
	Sentiment          string                  `json:"sentiment"`
	Topics             []string                `json:"topics"`
	SpeakerInsights    []domain.SpeakerInsight `json:"speakerInsights"`
	EffectivenessScore float64                 `json:"effectivenessScore"`
	Recommendations    []string                `json:"recommendations"`
}

type rawActionItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// parseAnalysis decodes and validates a model reply. A bad top-level
// document fails the call; a bad action item is only reported.
func parseAnalysis(reply string) (*domain.Analysis, error) {
	doc, err := extractJSON(reply)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errMalformed)
	}
	var raw rawAnalysis
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("decode: %v: %w", err, errMalformed)
	}
	if strings.TrimSpace(raw.Summary) == "" {
		return nil, fmt.Errorf("summary is missing: %w", errMalformed)
	}

	a := &domain.Analysis{
		Summary:            strings.TrimSpace(raw.Summary),
		KeyPoints:          nonEmpty(raw.KeyPoints),
		Sentiment:          domain.ParseSentiment(raw.Sentiment),
		Topics:             nonEmpty(raw.Topics),
		SpeakerInsights:    raw.SpeakerInsights,
		EffectivenessScore: clamp(raw.EffectivenessScore, 0, 10),
		Recommendations:    nonEmpty(raw.Recommendations),
		ActionItems:        []domain.ActionItem{},
		ItemErrors:         []domain.ItemError{},
	}
	for i, msg := range raw.ActionItems {
		var item rawActionItem
		if err := json.Unmarshal(msg, &item); err != nil {
			a.ItemErrors = append(a.ItemErrors, domain.ItemError{Index: i, Message: itemDecodeMessage(err)})
			continue
		}
		parsed, err := parseActionItem(item)
		if err != nil {
			a.ItemErrors = append(a.ItemErrors, domain.ItemError{Index: i, Message: err.Error()})
			continue
		}
		a.ActionItems = append(a.ActionItems, parsed)
	}
	return a, nil
}

// itemDecodeMessage names the offending field when the decoder reports one.
func itemDecodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type)
	}
	return "action item is not an object"
}

func parseActionItem(raw rawActionItem) (domain.ActionItem, error) {
	desc := strings.TrimSpace(raw.Description)
	if desc == "" {
		return domain.ActionItem{}, errors.New("description is empty")
	}
	priority, err := domain.ParseTaskPriority(raw.Priority)
	if err != nil {
		return domain.ActionItem{}, err
	}
	item := domain.ActionItem{Description: desc, Priority: priority}
	if owner := strings.TrimSpace(raw.Owner); owner != "" {
		item.Owner = &owner
	}
	if d := strings.TrimSpace(raw.Deadline); d != "" {
		deadline, err := parseDeadline(d)
		if err != nil {
			return domain.ActionItem{}, err
		}
		item.Deadline = &deadline
	}
	return item, nil
}

func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unparseable deadline %q", s)
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
