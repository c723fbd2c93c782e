package handlers

import (
	"net/http"
	"strconv"

	"github.com/benvon/zenith-task/internal/store"
	"github.com/benvon/zenith-task/internal/validation"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const msgTaskNotFound = "Task not found!"

// TaskHandler handles task-related requests
type TaskHandler struct {
	store  store.TaskStore
	logger *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(s store.TaskStore, logger *zap.Logger) *TaskHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskHandler{store: s, logger: logger}
}

// RegisterRoutes registers task routes on the given router
func (h *TaskHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/tasks", h.ListTasks).Methods(http.MethodGet)
	r.HandleFunc("/tasks", h.AddTask).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{index:[0-9]+}", h.DeleteTask).Methods(http.MethodDelete)
	r.HandleFunc("/tasks/{index:[0-9]+}/complete", h.CompleteTask).Methods(http.MethodPatch)
}

// CreateTaskRequest represents a create task request
type CreateTaskRequest struct {
	Task     string `json:"task" validate:"required,notblank,max=10000"`
	Category string `json:"category" validate:"max=200"`
}

// ListTasks returns every task in insertion order
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context())
	if err != nil {
		respondStoreError(w, h.logger, err, nil)
		return
	}
	respondJSON(w, http.StatusOK, tasks)
}

// AddTask appends a new incomplete task
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	text := validation.SanitizeText(req.Task)
	if text == "" {
		respondJSONError(w, http.StatusBadRequest, "Task text cannot be empty")
		return
	}

	task, err := h.store.AddTask(r.Context(), text, validation.SanitizeText(req.Category))
	if err != nil {
		respondStoreError(w, h.logger, err, nil)
		return
	}

	h.logger.Info("task_added", zap.String("category", task.Category))
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Task added!", Task: &task})
}

// DeleteTask removes the task at the index in the path
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	index, ok := taskIndex(w, r)
	if !ok {
		return
	}

	task, err := h.store.DeleteTask(r.Context(), index)
	if err != nil {
		respondStoreError(w, h.logger, err, map[error]string{store.ErrNotFound: msgTaskNotFound})
		return
	}

	h.logger.Info("task_deleted", zap.Int("index", index))
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Task deleted!", Task: &task})
}

// CompleteTask marks the task at the index in the path as completed
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	index, ok := taskIndex(w, r)
	if !ok {
		return
	}

	task, err := h.store.CompleteTask(r.Context(), index)
	if err != nil {
		respondStoreError(w, h.logger, err, map[error]string{store.ErrNotFound: msgTaskNotFound})
		return
	}

	h.logger.Info("task_completed", zap.Int("index", index))
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Task marked as completed!", Task: &task})
}

// taskIndex parses the {index} path variable. Values too large for an int
// cannot address a task and are reported as not found.
func taskIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		respondJSONError(w, http.StatusNotFound, msgTaskNotFound)
		return 0, false
	}
	return index, true
}
