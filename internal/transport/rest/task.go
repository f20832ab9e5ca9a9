package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/task"
)

type taskService interface {
	List(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error)
	Create(ctx context.Context, input task.CreateInput) (*domain.Task, error)
	Update(ctx context.Context, input task.UpdateInput) (*domain.Task, error)
	Delete(ctx context.Context, taskID uuid.UUID) error
}

// TaskHandler serves action item endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Description string  `json:"description"`
	Owner       *string `json:"owner"`
	Deadline    *string `json:"deadline"`
	Priority    string  `json:"priority"`
}

type updateTaskRequest struct {
	Description *string `json:"description"`
	Owner       *string `json:"owner"`
	Deadline    *string `json:"deadline"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// List handles GET /api/meetings/{id}/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tasks, err := h.svc.List(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toTaskResponses(tasks))
}

// Create handles POST /api/meetings/{id}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	deadline, err := parseTime("deadline", req.Deadline)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.Create(r.Context(), task.CreateInput{
		MeetingID:   id,
		Description: req.Description,
		Owner:       req.Owner,
		Deadline:    deadline,
		Priority:    req.Priority,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toTaskResponse(t))
}

// Update handles PATCH /api/tasks/{id}. Absent fields are left unchanged.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateTaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	deadline, err := parseTime("deadline", req.Deadline)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := task.UpdateInput{
		TaskID:      id,
		Description: req.Description,
		Owner:       req.Owner,
		Deadline:    deadline,
	}
	if req.Priority != nil {
		p := domain.TaskPriority(strings.ToUpper(*req.Priority))
		input.Priority = &p
	}
	if req.Status != nil {
		s := domain.TaskStatus(strings.ToUpper(*req.Status))
		input.Status = &s
	}

	t, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, toTaskResponse(t))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"id": id.String()})
}
