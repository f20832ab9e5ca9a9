package rest

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/render"
	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/recording"
)

type recordingService interface {
	ImportRecordings(ctx context.Context, input recording.ImportInput) (*recording.ImportResult, error)
	BatchImport(ctx context.Context, input recording.BatchImportInput) (*recording.BatchImportResult, error)
	ListRecordings(ctx context.Context, meetingID uuid.UUID) ([]domain.Recording, error)
	DeleteRecording(ctx context.Context, id uuid.UUID) error
	OpenRecording(ctx context.Context, fileName string) (*domain.Recording, *storage.File, error)
}

// RecordingHandler serves recording import and playback endpoints.
type RecordingHandler struct {
	svc recordingService
	log *slog.Logger
}

// NewRecordingHandler creates a RecordingHandler.
func NewRecordingHandler(svc recordingService, logger *slog.Logger) *RecordingHandler {
	return &RecordingHandler{svc: svc, log: logger.With("handler", "recording")}
}

type importRequest struct {
	RecordingTypes []string `json:"recordingTypes"`
}

type batchImportRequest struct {
	MeetingIDs     []uuid.UUID `json:"meetingIds"`
	From           *string     `json:"from"`
	To             *string     `json:"to"`
	RecordingTypes []string    `json:"recordingTypes"`
	Limit          int         `json:"limit"`
}

// Import handles POST /api/meetings/{id}/import-recording.
func (h *RecordingHandler) Import(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.ImportRecordings(r.Context(), recording.ImportInput{
		MeetingID: id,
		FileTypes: recording.ParseFileTypes(req.RecordingTypes),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toImportResponse(res))
}

// BatchImport handles POST /api/meetings/batch-import-recordings.
func (h *RecordingHandler) BatchImport(w http.ResponseWriter, r *http.Request) {
	var req batchImportRequest
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

	res, err := h.svc.BatchImport(r.Context(), recording.BatchImportInput{
		MeetingIDs: req.MeetingIDs,
		From:       from,
		To:         to,
		FileTypes:  recording.ParseFileTypes(req.RecordingTypes),
		Limit:      req.Limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toBatchImportResponse(res))
}

// List handles GET /api/meetings/{id}/recordings.
func (h *RecordingHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recs, err := h.svc.ListRecordings(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toRecordingResponses(recs))
}

// Stream handles GET /api/recordings/{fileName}. Range requests are served
// by http.ServeContent.
func (h *RecordingHandler) Stream(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("fileName")
	_, f, err := h.svc.OpenRecording(r.Context(), name)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer f.Close()

	serveFile(w, r, f, "inline")
}

// Delete handles DELETE /api/recordings/{id}.
func (h *RecordingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteRecording(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"id": id.String()})
}

// serveFile streams a stored file with a content type derived from its
// extension. disposition is "inline" or "attachment".
func serveFile(w http.ResponseWriter, r *http.Request, f *storage.File, disposition string) {
	w.Header().Set("Content-Type", render.ContentType(filepath.Ext(f.Name)))
	w.Header().Set("Content-Disposition", disposition+"; filename="+strconv.Quote(f.Name))
	http.ServeContent(w, r, f.Name, f.ModTime, f)
}
