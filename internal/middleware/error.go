package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/benvon/zenith-task/internal/request"
	"go.uber.org/zap"
)

// ErrorResponse matches the body the API handlers send on failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler creates error handling middleware that turns panics into 500s
func ErrorHandler(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					// Log panic details server-side but don't expose to client
					logger.Error("panic_recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.String("request_id", request.RequestID(r.Context())),
					)
					respondErrorJSON(w, http.StatusInternalServerError, "Internal server error", logger)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// respondErrorJSON sends {"error": message}
func respondErrorJSON(w http.ResponseWriter, status int, message string, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil && logger != nil {
		logger.Error("failed_to_encode_error_response",
			zap.Error(err),
			zap.Int("status_code", status),
		)
	}
}
