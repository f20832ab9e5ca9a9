package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var errPayloadTooLarge = errors.New("payload too large")

// handleError maps a service error onto the HTTP status table. Internal
// failures are logged with their cause and answered with a generic message.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errPayloadTooLarge), isTooLarge(err):
		writeError(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "payload too large")
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusBadRequest, "INVALID_STATE", err.Error())
	case errors.Is(err, domain.ErrNoTranscript):
		writeError(w, http.StatusBadRequest, "NO_TRANSCRIPT", "meeting has no transcript")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	case errors.Is(err, domain.ErrZoomAuthRequired):
		writeError(w, http.StatusForbidden, "ZOOM_AUTH_REQUIRED", "zoom account not connected")
	case errors.Is(err, domain.ErrReauthRequired):
		writeError(w, http.StatusForbidden, "ZOOM_REAUTH_REQUIRED", "zoom re-authorization required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", "already exists")
	default:
		log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, internalStatus(err), "internal server error")
	}
}

func internalStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrUpstream):
		return "UPSTREAM_ERROR"
	case errors.Is(err, domain.ErrStorage):
		return "STORAGE_ERROR"
	case errors.Is(err, domain.ErrRender):
		return "RENDER_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func writeValidationError(w http.ResponseWriter, err error) {
	resp := envelope{Error: err.Error(), Status: "VALIDATION_ERROR"}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		details := make([]fieldErrorResponse, len(ve.Errors))
		for i, fe := range ve.Errors {
			details[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
		}
		resp.Details = details
	}
	writeJSON(w, http.StatusBadRequest, resp)
}
