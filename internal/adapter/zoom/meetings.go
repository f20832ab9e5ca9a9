package zoom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

const (
	maxPageSize = 300
	defaultPage = 100
	dateLayout  = "2006-01-02"
	fileTypeVTT = "TRANSCRIPT"
)

// ListMeetingsParams selects one page of cloud recordings.
type ListMeetingsParams struct {
	From      time.Time
	To        time.Time
	PageSize  int
	PageToken string
}

// MeetingsPage is one page of recorded meetings.
type MeetingsPage struct {
	Meetings      []Meeting
	NextPageToken string
}

// Meeting is a recorded meeting instance as listed by Zoom.
type Meeting struct {
	UUID           string          `json:"uuid"`
	ID             int64           `json:"id"`
	Topic          string          `json:"topic"`
	StartTime      time.Time       `json:"start_time"`
	Duration       int             `json:"duration"`
	TotalSize      int64           `json:"total_size"`
	RecordingCount int             `json:"recording_count"`
	RecordingFiles []RecordingFile `json:"recording_files"`
}

// RecordingList is the recording set of one meeting.
type RecordingList struct {
	UUID           string          `json:"uuid"`
	ID             int64           `json:"id"`
	Topic          string          `json:"topic"`
	RecordingFiles []RecordingFile `json:"recording_files"`
}

// RecordingFile is a single downloadable artifact of a recording.
type RecordingFile struct {
	ID             string `json:"id"`
	MeetingID      string `json:"meeting_id"`
	RecordingStart string `json:"recording_start"`
	RecordingEnd   string `json:"recording_end"`
	FileType       string `json:"file_type"`
	FileExtension  string `json:"file_extension"`
	FileSize       int64  `json:"file_size"`
	PlayURL        string `json:"play_url"`
	DownloadURL    string `json:"download_url"`
	Status         string `json:"status"`
	RecordingType  string `json:"recording_type"`
}

// Start parses RecordingStart; nil when absent or malformed.
func (f RecordingFile) Start() *time.Time { return parseTime(f.RecordingStart) }

// End parses RecordingEnd; nil when absent or malformed.
func (f RecordingFile) End() *time.Time { return parseTime(f.RecordingEnd) }

// Type returns the file type as the domain enum.
func (f RecordingFile) Type() domain.RecordingFileType {
	return domain.RecordingFileType(strings.ToUpper(f.FileType))
}

// Transcript is a downloaded and parsed meeting transcript.
type Transcript struct {
	Segments []domain.TranscriptSegment
	Raw      string
}

// User is the Zoom profile of the token owner.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AccountID string `json:"account_id"`
}

type meetingsResponse struct {
	From          string    `json:"from"`
	To            string    `json:"to"`
	PageSize      int       `json:"page_size"`
	TotalRecords  int       `json:"total_records"`
	NextPageToken string    `json:"next_page_token"`
	Meetings      []Meeting `json:"meetings"`
}

// ListMeetings returns one page of the token owner's recorded meetings.
// Zoom limits the range to one month; callers split longer ranges.
func (c *Client) ListMeetings(ctx context.Context, token string, p ListMeetingsParams) (*MeetingsPage, error) {
	size := p.PageSize
	if size <= 0 {
		size = defaultPage
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	q := url.Values{}
	q.Set("page_size", strconv.Itoa(size))
	if !p.From.IsZero() {
		q.Set("from", p.From.UTC().Format(dateLayout))
	}
	if !p.To.IsZero() {
		q.Set("to", p.To.UTC().Format(dateLayout))
	}
	if p.PageToken != "" {
		q.Set("next_page_token", p.PageToken)
	}

	body, err := c.get(ctx, c.api, "list meetings", c.baseURL+"/users/me/recordings?"+q.Encode(), token)
	if err != nil {
		return nil, err
	}

	var resp meetingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("zoom: list meetings: decode: %w", domain.ErrUpstream)
	}

	c.log.DebugContext(ctx, "zoom meetings page",
		slog.Int("meetings", len(resp.Meetings)),
		slog.Int("total_records", resp.TotalRecords),
		slog.Bool("has_next", resp.NextPageToken != ""),
	)

	return &MeetingsPage{Meetings: resp.Meetings, NextPageToken: resp.NextPageToken}, nil
}

// GetRecordings returns the recording files of a meeting. A meeting without
// cloud recordings yields domain.ErrNotFound.
func (c *Client) GetRecordings(ctx context.Context, token, meetingID string) (*RecordingList, error) {
	body, err := c.get(ctx, c.api, "get recordings", c.baseURL+"/meetings/"+EncodeMeetingID(meetingID)+"/recordings", token)
	if err != nil {
		return nil, err
	}

	var list RecordingList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("zoom: get recordings: decode: %w", domain.ErrUpstream)
	}
	return &list, nil
}

// GetTranscript downloads and parses the meeting's TRANSCRIPT file.
// It returns nil, nil when the meeting has no transcript.
func (c *Client) GetTranscript(ctx context.Context, token, meetingID string) (*Transcript, error) {
	list, err := c.GetRecordings(ctx, token, meetingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var file *RecordingFile
	for i := range list.RecordingFiles {
		if strings.EqualFold(list.RecordingFiles[i].FileType, fileTypeVTT) {
			file = &list.RecordingFiles[i]
			break
		}
	}
	if file == nil || file.DownloadURL == "" {
		return nil, nil
	}

	raw, err := c.DownloadFile(ctx, token, file.DownloadURL)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &Transcript{Segments: ParseVTT(string(raw)), Raw: string(raw)}, nil
}

// DownloadFile fetches a small file, such as a transcript, into memory.
func (c *Client) DownloadFile(ctx context.Context, token, downloadURL string) ([]byte, error) {
	return c.get(ctx, c.download, "download file", downloadURL, token)
}

// DownloadTo streams a recording file into w using the long-timeout client
// and returns the number of bytes written. A failure after the first byte
// is not retried, so w never receives a body twice.
func (c *Client) DownloadTo(ctx context.Context, token, downloadURL string, w io.Writer) (int64, error) {
	_, n, err := c.do(ctx, c.download, "download file", downloadURL, token, w)
	return n, err
}

// GetCurrentUser returns the token owner's profile.
func (c *Client) GetCurrentUser(ctx context.Context, token string) (*User, error) {
	body, err := c.get(ctx, c.api, "get current user", c.baseURL+"/users/me", token)
	if err != nil {
		return nil, err
	}

	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("zoom: get current user: decode: %w", domain.ErrUpstream)
	}
	return &u, nil
}

// EncodeMeetingID escapes a meeting ID or UUID for use as a path segment.
// UUIDs that start with "/" or contain "//" must be encoded twice.
func EncodeMeetingID(id string) string {
	escaped := url.PathEscape(id)
	if strings.HasPrefix(id, "/") || strings.Contains(id, "//") {
		escaped = url.PathEscape(escaped)
	}
	return escaped
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
