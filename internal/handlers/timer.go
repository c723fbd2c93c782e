package handlers

import (
	"fmt"
	"net/http"

	"github.com/benvon/zenith-task/internal/timer"
	"github.com/gorilla/mux"
)

// TimerHandler acknowledges timer requests. The countdown itself runs in
// the client; the server keeps no timer state.
type TimerHandler struct{}

// NewTimerHandler creates a new timer handler
func NewTimerHandler() *TimerHandler {
	return &TimerHandler{}
}

// RegisterRoutes registers timer routes on the given router
func (h *TimerHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/start_timer", h.StartTimer).Methods(http.MethodPost)
}

// StartTimerRequest represents a start timer request
type StartTimerRequest struct {
	WorkTime *int `json:"work_time" validate:"omitempty,min=0,max=1440"`
}

// StartTimer echoes the requested work time back to the caller
func (h *TimerHandler) StartTimer(w http.ResponseWriter, r *http.Request) {
	var req StartTimerRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	minutes := timer.DefaultWorkMinutes
	if req.WorkTime != nil {
		minutes = *req.WorkTime
	}

	respondJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Pomodoro timer started for %d minutes!", minutes),
	})
}
