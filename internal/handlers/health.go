package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/benvon/zenith-task/internal/store"
)

// PingFunc probes a dependency
type PingFunc func(ctx context.Context) error

type dependencyCheck struct {
	name string
	ping PingFunc
}

// HealthChecker handles health check requests
type HealthChecker struct {
	store  store.TaskStore
	checks []dependencyCheck
}

// HealthOption configures a HealthChecker
type HealthOption func(*HealthChecker)

// WithCheck adds a named dependency to the extended health check
func WithCheck(name string, ping PingFunc) HealthOption {
	return func(h *HealthChecker) {
		h.checks = append(h.checks, dependencyCheck{name: name, ping: ping})
	}
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(s store.TaskStore, opts ...HealthOption) *HealthChecker {
	h := &HealthChecker{store: s}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthCheck handles the /healthz endpoint. With ?mode=extended the
// store and every added dependency are probed as well.
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if r.URL.Query().Get("mode") != "extended" {
		respondJSON(w, http.StatusOK, response)
		return
	}

	checks := make(map[string]string)
	all := append([]dependencyCheck{{name: "store", ping: h.store.Ping}}, h.checks...)
	for _, c := range all {
		if err := ping(r.Context(), c.ping); err != nil {
			response.Status = "unhealthy"
			checks[c.name] = "unhealthy: " + err.Error()
		} else {
			checks[c.name] = "healthy"
		}
	}
	response.Checks = checks

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	respondJSON(w, statusCode, response)
}

func ping(ctx context.Context, fn PingFunc) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return fn(ctx)
}
