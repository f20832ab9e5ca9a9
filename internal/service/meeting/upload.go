package meeting

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/pkg/ctxutil"
)

const (
	maxCSVRows   = 1000
	defaultTopic = "Untitled meeting"
)

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.DateOnly,
}

type csvColumns struct {
	topic, startTime, duration, transcript, participants int
}

// UploadCSV creates one CSV-sourced meeting per valid row. Rows that cannot
// be imported are reported and skipped. With Analyze set, every created
// meeting is analyzed and analysis failures are reported per row.
func (s *Service) UploadCSV(ctx context.Context, input UploadCSVInput) (*UploadResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	r := csv.NewReader(input.Reader)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewValidationError("file", "empty CSV")
	}
	if err != nil {
		return nil, domain.NewValidationError("file", "unreadable CSV header")
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{Created: []domain.Meeting{}, Errors: []RowError{}, AnalysisErrors: []RowError{}}
	rows := make([]int, 0)
	for row := 1; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if row > maxCSVRows {
			result.Errors = append(result.Errors, RowError{Row: row, Message: fmt.Sprintf("row limit of %d exceeded", maxCSVRows)})
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.Errors = append(result.Errors, RowError{Row: row, Message: parseErr.Err.Error()})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		m, msg := cols.meeting(userID, record)
		if msg != "" {
			result.Errors = append(result.Errors, RowError{Row: row, Message: msg})
			continue
		}
		created, err := s.meetings.Create(ctx, m)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			result.Errors = append(result.Errors, RowError{Row: row, Message: "could not store meeting"})
			s.log.WarnContext(ctx, "csv row not stored", slog.Int("row", row), slog.String("error", err.Error()))
			continue
		}
		result.Created = append(result.Created, *created)
		rows = append(rows, row)
	}

	if input.Analyze {
		for i, m := range result.Created {
			if _, err := s.analyzer.Analyze(ctx, m.ID); err != nil {
				result.AnalysisErrors = append(result.AnalysisErrors, RowError{Row: rows[i], Message: analysisMessage(err)})
				continue
			}
			result.Analyzed++
		}
	}

	s.log.InfoContext(ctx, "csv uploaded",
		slog.String("user_id", userID.String()),
		slog.Int("created", len(result.Created)),
		slog.Int("errors", len(result.Errors)),
		slog.Int("analyzed", result.Analyzed),
	)
	return result, nil
}

func mapColumns(header []string) (csvColumns, error) {
	cols := csvColumns{topic: -1, startTime: -1, duration: -1, transcript: -1, participants: -1}
	for i, h := range header {
		switch domain.NormalizeKey(h) {
		case "topic":
			cols.topic = i
		case "start_time":
			cols.startTime = i
		case "duration":
			cols.duration = i
		case "transcript":
			cols.transcript = i
		case "participants":
			cols.participants = i
		}
	}

	var errs []domain.FieldError
	if cols.transcript < 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "missing transcript column"})
	}
	if cols.startTime < 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "missing start_time column"})
	}
	if len(errs) > 0 {
		return cols, domain.NewValidationErrors(errs)
	}
	return cols, nil
}

// meeting builds a meeting from one record or returns why it cannot.
func (c csvColumns) meeting(userID uuid.UUID, record []string) (*domain.Meeting, string) {
	transcript := field(record, c.transcript)
	if strings.TrimSpace(transcript) == "" {
		return nil, "transcript is required"
	}

	raw := field(record, c.startTime)
	if raw == "" {
		return nil, "start_time is required"
	}
	start, ok := parseStartTime(raw)
	if !ok {
		return nil, fmt.Sprintf("unparsable start_time %q", raw)
	}

	duration := 0
	if d := field(record, c.duration); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n < 0 {
			return nil, fmt.Sprintf("invalid duration %q", d)
		}
		duration = n
	}

	topic := field(record, c.topic)
	if topic == "" {
		topic = defaultTopic
	}

	segments := domain.SegmentsFromText(transcript)
	speakers := domain.SpeakersFromSegments(segments)
	if len(speakers) == 0 {
		speakers = participants(field(record, c.participants))
	}

	m := &domain.Meeting{
		UserID:          userID,
		Source:          domain.MeetingSourceCSV,
		Topic:           topic,
		StartTime:       start,
		DurationMinutes: duration,
		Transcript:      segments,
		TranscriptText:  domain.PlainTranscript(segments),
		Speakers:        speakers,
	}
	if duration > 0 {
		end := start.Add(time.Duration(duration) * time.Minute)
		m.EndTime = &end
	}
	return m, ""
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseStartTime(s string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func participants(s string) []domain.Speaker {
	var out []domain.Speaker
	for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == ',' }) {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, domain.Speaker{Name: name})
		}
	}
	return out
}

// analysisMessage keeps upstream details out of the response.
func analysisMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoTranscript):
		return "no transcript"
	case errors.Is(err, domain.ErrUpstream):
		return "analysis service unavailable"
	default:
		return "analysis failed"
	}
}
