package rest

import (
	"time"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/auth"
	"github.com/heartmarshall/meetsum-backend/internal/service/recording"
)

type userResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	ZoomConnected bool      `json:"zoomConnected"`
	CreatedAt     time.Time `json:"createdAt"`
}

type tokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type authResponse struct {
	User   userResponse   `json:"user"`
	Tokens tokensResponse `json:"tokens"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		Name:          u.Name,
		ZoomConnected: u.ZoomConnected,
		CreatedAt:     u.CreatedAt,
	}
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		User: toUserResponse(result.User),
		Tokens: tokensResponse{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
		},
	}
}

type meetingResponse struct {
	ID                 string                     `json:"id"`
	ZoomMeetingID      *string                    `json:"zoomMeetingId,omitempty"`
	Source             string                     `json:"source"`
	Topic              string                     `json:"topic"`
	StartTime          time.Time                  `json:"startTime"`
	EndTime            *time.Time                 `json:"endTime,omitempty"`
	DurationMinutes    int                        `json:"durationMinutes"`
	HasTranscript      bool                       `json:"hasTranscript"`
	Transcript         []domain.TranscriptSegment `json:"transcript,omitempty"`
	TranscriptText     string                     `json:"transcriptText,omitempty"`
	Speakers           []domain.Speaker           `json:"speakers,omitempty"`
	Summary            string                     `json:"summary,omitempty"`
	BulletPoints       []string                   `json:"bulletPoints,omitempty"`
	AINotes            *domain.AINotes            `json:"aiNotes,omitempty"`
	Sentiment          *domain.Sentiment          `json:"sentiment,omitempty"`
	EffectivenessScore *float64                   `json:"effectivenessScore,omitempty"`
	AnalyzedAt         *time.Time                 `json:"analyzedAt,omitempty"`
	RecordingURL       *string                    `json:"recordingUrl,omitempty"`
	CreatedAt          time.Time                  `json:"createdAt"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
}

// toMeetingResponse includes the transcript only when full is set; lists
// carry the summary fields alone.
func toMeetingResponse(m *domain.Meeting, full bool) meetingResponse {
	resp := meetingResponse{
		ID:                 m.ID.String(),
		ZoomMeetingID:      m.ZoomMeetingID,
		Source:             string(m.Source),
		Topic:              m.Topic,
		StartTime:          m.StartTime,
		EndTime:            m.EndTime,
		DurationMinutes:    m.DurationMinutes,
		HasTranscript:      m.HasTranscript(),
		Speakers:           m.Speakers,
		Summary:            m.Summary,
		BulletPoints:       m.BulletPoints,
		AINotes:            m.AINotes,
		Sentiment:          m.Sentiment,
		EffectivenessScore: m.EffectivenessScore,
		AnalyzedAt:         m.AnalyzedAt,
		RecordingURL:       m.RecordingURL,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if full {
		resp.Transcript = m.Transcript
		resp.TranscriptText = m.TranscriptText
	}
	return resp
}

func toMeetingResponses(ms []domain.Meeting) []meetingResponse {
	out := make([]meetingResponse, len(ms))
	for i := range ms {
		out[i] = toMeetingResponse(&ms[i], false)
	}
	return out
}

type recordingResponse struct {
	ID             string     `json:"id"`
	MeetingID      string     `json:"meetingId"`
	FileType       string     `json:"fileType"`
	RecordingType  string     `json:"recordingType,omitempty"`
	FileSize       int64      `json:"fileSize"`
	FileName       string     `json:"fileName"`
	StorageURL     string     `json:"storageUrl"`
	PlayURL        *string    `json:"playUrl,omitempty"`
	RecordingStart *time.Time `json:"recordingStart,omitempty"`
	RecordingEnd   *time.Time `json:"recordingEnd,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func toRecordingResponses(rs []domain.Recording) []recordingResponse {
	out := make([]recordingResponse, len(rs))
	for i, r := range rs {
		out[i] = recordingResponse{
			ID:             r.ID.String(),
			MeetingID:      r.MeetingID.String(),
			FileType:       string(r.FileType),
			RecordingType:  r.RecordingType,
			FileSize:       r.FileSize,
			FileName:       r.FileName,
			StorageURL:     r.StorageURL,
			PlayURL:        r.PlayURL,
			RecordingStart: r.RecordingStart,
			RecordingEnd:   r.RecordingEnd,
			CreatedAt:      r.CreatedAt,
		}
	}
	return out
}

type skippedFileResponse struct {
	FileID   string `json:"fileId"`
	FileType string `json:"fileType"`
	Reason   string `json:"reason"`
}

type fileErrorResponse struct {
	FileID   string `json:"fileId"`
	FileType string `json:"fileType"`
	Message  string `json:"message"`
}

type importResponse struct {
	MeetingID  string                `json:"meetingId"`
	Imported   []recordingResponse   `json:"imported"`
	Skipped    []skippedFileResponse `json:"skipped"`
	Errors     []fileErrorResponse   `json:"errors"`
	TotalBytes int64                 `json:"totalBytes"`
}

func toImportResponse(res *recording.ImportResult) importResponse {
	resp := importResponse{
		MeetingID:  res.MeetingID.String(),
		Imported:   toRecordingResponses(res.Imported),
		Skipped:    make([]skippedFileResponse, len(res.Skipped)),
		Errors:     make([]fileErrorResponse, len(res.Errors)),
		TotalBytes: res.TotalBytes,
	}
	for i, s := range res.Skipped {
		resp.Skipped[i] = skippedFileResponse{FileID: s.FileID, FileType: string(s.FileType), Reason: s.Reason}
	}
	for i, e := range res.Errors {
		resp.Errors[i] = fileErrorResponse{FileID: e.FileID, FileType: string(e.FileType), Message: e.Message}
	}
	return resp
}

type batchItemResponse struct {
	MeetingID string          `json:"meetingId"`
	Topic     string          `json:"topic"`
	Result    *importResponse `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

type batchImportResponse struct {
	Results       []batchItemResponse `json:"results"`
	Succeeded     int                 `json:"succeeded"`
	Failed        int                 `json:"failed"`
	FilesImported int                 `json:"filesImported"`
	TotalBytes    int64               `json:"totalBytes"`
}

func toBatchImportResponse(res *recording.BatchImportResult) batchImportResponse {
	resp := batchImportResponse{
		Results:       make([]batchItemResponse, len(res.Results)),
		Succeeded:     res.Succeeded,
		Failed:        res.Failed,
		FilesImported: res.FilesImported,
		TotalBytes:    res.TotalBytes,
	}
	for i, item := range res.Results {
		out := batchItemResponse{MeetingID: item.MeetingID.String(), Topic: item.Topic, Error: item.Error}
		if item.Result != nil {
			r := toImportResponse(item.Result)
			out.Result = &r
		}
		resp.Results[i] = out
	}
	return resp
}

type taskResponse struct {
	ID          string     `json:"id"`
	MeetingID   string     `json:"meetingId"`
	Description string     `json:"description"`
	Owner       *string    `json:"owner,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		MeetingID:   t.MeetingID.String(),
		Description: t.Description,
		Owner:       t.Owner,
		Deadline:    t.Deadline,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Source:      string(t.Source),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskResponses(ts []domain.Task) []taskResponse {
	out := make([]taskResponse, len(ts))
	for i := range ts {
		out[i] = toTaskResponse(&ts[i])
	}
	return out
}

type exportResponse struct {
	ID        string    `json:"id"`
	MeetingID string    `json:"meetingId"`
	Format    string    `json:"format"`
	FileName  string    `json:"fileName"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func toExportResponse(e *domain.Export) exportResponse {
	return exportResponse{
		ID:        e.ID.String(),
		MeetingID: e.MeetingID.String(),
		Format:    string(e.Format),
		FileName:  e.FileName,
		FileURL:   e.FileURL,
		CreatedAt: e.CreatedAt,
	}
}

func toExportResponses(es []domain.Export) []exportResponse {
	out := make([]exportResponse, len(es))
	for i := range es {
		out[i] = toExportResponse(&es[i])
	}
	return out
}

type actionItemResponse struct {
	Description string     `json:"description"`
	Owner       *string    `json:"owner,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    string     `json:"priority"`
}

type analysisResponse struct {
	Summary            string                  `json:"summary"`
	KeyPoints          []string                `json:"keyPoints"`
	ActionItems        []actionItemResponse    `json:"actionItems"`
	Sentiment          string                  `json:"sentiment"`
	Topics             []string                `json:"topics"`
	SpeakerInsights    []domain.SpeakerInsight `json:"speakerInsights"`
	EffectivenessScore float64                 `json:"effectivenessScore"`
	Recommendations    []string                `json:"recommendations"`
	ItemErrors         []domain.ItemError      `json:"itemErrors,omitempty"`
}

func toAnalysisResponse(a *domain.Analysis) analysisResponse {
	items := make([]actionItemResponse, len(a.ActionItems))
	for i, it := range a.ActionItems {
		items[i] = actionItemResponse{
			Description: it.Description,
			Owner:       it.Owner,
			Deadline:    it.Deadline,
			Priority:    string(it.Priority),
		}
	}
	return analysisResponse{
		Summary:            a.Summary,
		KeyPoints:          a.KeyPoints,
		ActionItems:        items,
		Sentiment:          string(a.Sentiment),
		Topics:             a.Topics,
		SpeakerInsights:    a.SpeakerInsights,
		EffectivenessScore: a.EffectivenessScore,
		Recommendations:    a.Recommendations,
		ItemErrors:         a.ItemErrors,
	}
}
