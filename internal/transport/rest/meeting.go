package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/analysis"
	"github.com/heartmarshall/meetsum-backend/internal/service/meeting"
)

type meetingService interface {
	Sync(ctx context.Context, input meeting.SyncInput) (*meeting.SyncResult, error)
	List(ctx context.Context, input meeting.ListInput) (*meeting.ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FetchTranscript(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	UploadCSV(ctx context.Context, input meeting.UploadCSVInput) (*meeting.UploadResult, error)
}

type analysisService interface {
	Analyze(ctx context.Context, meetingID uuid.UUID) (*analysis.AnalyzeResult, error)
}

// MeetingHandler serves meeting, transcript, CSV upload and analysis endpoints.
type MeetingHandler struct {
	meetings  meetingService
	analyses  analysisService
	maxUpload int64
	log       *slog.Logger
}

// NewMeetingHandler creates a MeetingHandler. maxUpload bounds the CSV
// upload request body in bytes.
func NewMeetingHandler(meetings meetingService, analyses analysisService, maxUpload int64, logger *slog.Logger) *MeetingHandler {
	return &MeetingHandler{
		meetings:  meetings,
		analyses:  analyses,
		maxUpload: maxUpload,
		log:       logger.With("handler", "meeting"),
	}
}

type syncRequest struct {
	From *string `json:"from"`
	To   *string `json:"to"`
}

type syncResponse struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
	Total    int `json:"total"`
}

type listMeetingsResponse struct {
	Meetings []meetingResponse `json:"meetings"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type rowErrorResponse struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type uploadResponse struct {
	Created        []meetingResponse  `json:"created"`
	Errors         []rowErrorResponse `json:"errors"`
	Analyzed       int                `json:"analyzed"`
	AnalysisErrors []rowErrorResponse `json:"analysisErrors"`
}

type analyzeResponse struct {
	MeetingID     string           `json:"meetingId"`
	Analysis      analysisResponse `json:"analysis"`
	TasksCreated  int              `json:"tasksCreated"`
	TasksReplaced int              `json:"tasksReplaced"`
	AnalyzedAt    time.Time        `json:"analyzedAt"`
}

// Sync handles POST /api/meetings/sync.
func (h *MeetingHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	from, err := parseTime("from", req.From)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	to, err := parseTime("to", req.To)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.meetings.Sync(r.Context(), meeting.SyncInput{From: from, To: to})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, syncResponse{Created: res.Created, Existing: res.Existing, Total: res.Total})
}

// List handles GET /api/meetings?from=&to=&limit=&offset=.
func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.meetings.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, listMeetingsResponse{
		Meetings: toMeetingResponses(res.Meetings),
		Total:    res.Total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
}

// Get handles GET /api/meetings/{id}.
func (h *MeetingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.meetings.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toMeetingResponse(m, true))
}

// Delete handles DELETE /api/meetings/{id}.
func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.meetings.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"id": id.String()})
}

// FetchTranscript handles POST /api/meetings/{id}/transcript.
func (h *MeetingHandler) FetchTranscript(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	m, err := h.meetings.FetchTranscript(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toMeetingResponse(m, true))
}

// UploadCSV handles POST /api/meetings/upload-csv (multipart field "file",
// optional form value "analyze").
func (h *MeetingHandler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		if isTooLarge(err) {
			handleError(h.log, w, r, errPayloadTooLarge)
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("file", "multipart form with a file field is required"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, _, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	analyze := false
	if raw := r.FormValue("analyze"); raw != "" {
		if analyze, err = strconv.ParseBool(raw); err != nil {
			handleError(h.log, w, r, domain.NewValidationError("analyze", "must be a boolean"))
			return
		}
	}

	res, err := h.meetings.UploadCSV(r.Context(), meeting.UploadCSVInput{Reader: file, Analyze: analyze})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, uploadResponse{
		Created:        toMeetingResponses(res.Created),
		Errors:         toRowErrors(res.Errors),
		Analyzed:       res.Analyzed,
		AnalysisErrors: toRowErrors(res.AnalysisErrors),
	})
}

// Analyze handles POST /api/meetings/{id}/analyze.
func (h *MeetingHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.analyses.Analyze(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, analyzeResponse{
		MeetingID:     res.MeetingID.String(),
		Analysis:      toAnalysisResponse(res.Analysis),
		TasksCreated:  res.TasksCreated,
		TasksReplaced: res.TasksReplaced,
		AnalyzedAt:    res.AnalyzedAt,
	})
}

func listInputFromQuery(r *http.Request) (meeting.ListInput, error) {
	var input meeting.ListInput
	var err error
	q := r.URL.Query()
	if input.From, err = parseTime("from", optional(q.Get("from"))); err != nil {
		return input, err
	}
	if input.To, err = parseTime("to", optional(q.Get("to"))); err != nil {
		return input, err
	}
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		return input, err
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		return input, err
	}
	return input, nil
}

func toRowErrors(errs []meeting.RowError) []rowErrorResponse {
	out := make([]rowErrorResponse, len(errs))
	for i, e := range errs {
		out[i] = rowErrorResponse{Row: e.Row, Message: e.Message}
	}
	return out
}
