package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/export"
	"github.com/heartmarshall/meetsum-backend/internal/service/notification"
)

type exportService interface {
	Export(ctx context.Context, input export.ExportInput) (*export.ExportResult, error)
	ListExports(ctx context.Context, meetingID uuid.UUID) ([]domain.Export, error)
	DeleteExport(ctx context.Context, id uuid.UUID) error
	OpenExport(ctx context.Context, fileName string) (*domain.Export, *storage.File, error)
}

type shareService interface {
	Share(ctx context.Context, input notification.ShareInput) (*notification.ShareResult, error)
}

// ExportHandler serves document export and sharing endpoints.
type ExportHandler struct {
	exports exportService
	shares  shareService
	log     *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exports exportService, shares shareService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{exports: exports, shares: shares, log: logger.With("handler", "export")}
}

// exportRequest defaults every section except the transcript to included.
type exportRequest struct {
	Format                 string `json:"format"`
	IncludeSummary         *bool  `json:"includeSummary"`
	IncludeTranscript      bool   `json:"includeTranscript"`
	IncludeActionItems     *bool  `json:"includeActionItems"`
	IncludeSpeakerInsights *bool  `json:"includeSpeakerInsights"`
}

type exportResultResponse struct {
	Export      exportResponse `json:"export"`
	DownloadURL string         `json:"downloadUrl"`
}

type shareRequest struct {
	Recipients         []string `json:"recipients"`
	SlackChannel       string   `json:"slackChannel"`
	IncludeActionItems *bool    `json:"includeActionItems"`
}

type shareResponse struct {
	EmailAttempted bool `json:"emailAttempted"`
	EmailSent      bool `json:"emailSent"`
	Recipients     int  `json:"recipients"`
	SlackAttempted bool `json:"slackAttempted"`
	SlackSent      bool `json:"slackSent"`
}

// Export handles POST /api/meetings/{id}/export.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req exportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.exports.Export(r.Context(), export.ExportInput{
		MeetingID:              id,
		Format:                 domain.ExportFormat(strings.ToUpper(strings.TrimSpace(req.Format))),
		IncludeSummary:         orTrue(req.IncludeSummary),
		IncludeTranscript:      req.IncludeTranscript,
		IncludeActionItems:     orTrue(req.IncludeActionItems),
		IncludeSpeakerInsights: orTrue(req.IncludeSpeakerInsights),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, exportResultResponse{
		Export:      toExportResponse(res.Export),
		DownloadURL: res.DownloadURL,
	})
}

// List handles GET /api/meetings/{id}/exports.
func (h *ExportHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	exports, err := h.exports.ListExports(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toExportResponses(exports))
}

// Download handles GET /api/exports/{fileName}.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	_, f, err := h.exports.OpenExport(r.Context(), r.PathValue("fileName"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer f.Close()

	serveFile(w, r, f, "attachment")
}

// Delete handles DELETE /api/exports/{id}.
func (h *ExportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.exports.DeleteExport(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"id": id.String()})
}

// Share handles POST /api/meetings/{id}/share. When a channel fails the
// per-channel outcome is still returned in the error details.
func (h *ExportHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req shareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.shares.Share(r.Context(), notification.ShareInput{
		MeetingID:          id,
		Recipients:         req.Recipients,
		SlackChannel:       req.SlackChannel,
		IncludeActionItems: orTrue(req.IncludeActionItems),
	})
	if err != nil && res != nil {
		h.log.ErrorContext(r.Context(), "share failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, envelope{
			Error:   "one or more channels failed",
			Status:  internalStatus(err),
			Details: toShareResponse(res),
		})
		return
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toShareResponse(res))
}

func toShareResponse(res *notification.ShareResult) shareResponse {
	return shareResponse{
		EmailAttempted: res.EmailAttempted,
		EmailSent:      res.EmailSent,
		Recipients:     res.Recipients,
		SlackAttempted: res.SlackAttempted,
		SlackSent:      res.SlackSent,
	}
}

func orTrue(b *bool) bool {
	return b == nil || *b
}
