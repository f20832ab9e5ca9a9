package rest

import (
	"net/http"

	"github.com/heartmarshall/meetsum-backend/internal/transport/middleware"
)

// Handlers groups every REST handler served by the router.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Meeting   *MeetingHandler
	Recording *RecordingHandler
	Task      *TaskHandler
	Export    *ExportHandler
	Metrics   http.Handler
}

// NewRouter registers all routes. Each route is tagged with its pattern for
// logs and metrics. authLimit wraps the unauthenticated credential routes.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	if authLimit == nil {
		authLimit = func(next http.Handler) http.Handler { return next }
	}
	mux := http.NewServeMux()
	handle := func(pattern string, fn http.HandlerFunc, mws ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Route(pattern, middleware.Chain(mws...)(fn)))
	}

	handle("GET /live", h.Health.Live)
	handle("GET /ready", h.Health.Ready)
	handle("GET /health", h.Health.Health)
	if h.Metrics != nil {
		handle("GET /metrics", h.Metrics.ServeHTTP)
	}

	handle("POST /api/auth/register", h.Auth.Register, authLimit)
	handle("POST /api/auth/login", h.Auth.LoginWithPassword, authLimit)
	handle("POST /api/auth/refresh", h.Auth.Refresh, authLimit)
	handle("POST /api/auth/logout", h.Auth.Logout)
	handle("GET /api/auth/me", h.Auth.Me)
	handle("GET /api/auth/zoom", h.Auth.ZoomAuthorize)
	handle("POST /api/auth/zoom/callback", h.Auth.ZoomCallback, authLimit)
	handle("DELETE /api/auth/zoom", h.Auth.DisconnectZoom)

	handle("POST /api/meetings/sync", h.Meeting.Sync)
	handle("POST /api/meetings/upload-csv", h.Meeting.UploadCSV)
	handle("POST /api/meetings/batch-import-recordings", h.Recording.BatchImport)
	handle("GET /api/meetings", h.Meeting.List)
	handle("GET /api/meetings/{id}", h.Meeting.Get)
	handle("DELETE /api/meetings/{id}", h.Meeting.Delete)
	handle("POST /api/meetings/{id}/transcript", h.Meeting.FetchTranscript)
	handle("POST /api/meetings/{id}/analyze", h.Meeting.Analyze)

	handle("POST /api/meetings/{id}/import-recording", h.Recording.Import)
	handle("GET /api/meetings/{id}/recordings", h.Recording.List)
	handle("GET /api/recordings/{fileName}", h.Recording.Stream)
	handle("DELETE /api/recordings/{id}", h.Recording.Delete)

	handle("GET /api/meetings/{id}/tasks", h.Task.List)
	handle("POST /api/meetings/{id}/tasks", h.Task.Create)
	handle("PATCH /api/tasks/{id}", h.Task.Update)
	handle("DELETE /api/tasks/{id}", h.Task.Delete)

	handle("POST /api/meetings/{id}/export", h.Export.Export)
	handle("GET /api/meetings/{id}/exports", h.Export.List)
	handle("GET /api/exports/{fileName}", h.Export.Download)
	handle("DELETE /api/exports/{id}", h.Export.Delete)
	handle("POST /api/meetings/{id}/share", h.Export.Share)

	return mux
}
