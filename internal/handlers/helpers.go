package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/benvon/zenith-task/internal/models"
	"github.com/benvon/zenith-task/internal/store"
	"github.com/benvon/zenith-task/internal/validation"
	"go.uber.org/zap"
)

// MessageResponse is returned by mutating endpoints
type MessageResponse struct {
	Message  string       `json:"message"`
	Task     *models.Task `json:"task,omitempty"`
	Category string       `json:"category,omitempty"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// sanitizeErrorMessage keeps error messages short
func sanitizeErrorMessage(message string) string {
	if len(message) > 200 {
		return message[:200] + "..."
	}
	return message
}

// respondJSONError sends {"error": message}
func respondJSONError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: sanitizeErrorMessage(message)})
}

// NotFound answers requests that match no route
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondJSONError(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed answers requests whose path matches but method does not
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// decodeJSON decodes and validates the request body into dst. On failure
// it writes the error response and returns false. An empty body is
// accepted when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case errors.Is(err, io.EOF) && allowEmpty:
	case err != nil:
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondJSONError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return false
		}
		respondJSONError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := validation.Validate.Struct(dst); err != nil {
		respondJSONError(w, http.StatusBadRequest, validation.FirstError(err))
		return false
	}
	return true
}

// respondStoreError maps store errors to HTTP responses. messages holds the
// client-facing text for each error kind.
func respondStoreError(w http.ResponseWriter, logger *zap.Logger, err error, messages map[error]string) {
	for _, kind := range []struct {
		err    error
		status int
	}{
		{store.ErrNotFound, http.StatusNotFound},
		{store.ErrInvalidInput, http.StatusBadRequest},
		{store.ErrConflict, http.StatusBadRequest},
	} {
		if errors.Is(err, kind.err) {
			msg, ok := messages[kind.err]
			if !ok {
				msg = kind.err.Error()
			}
			respondJSONError(w, kind.status, msg)
			return
		}
	}

	logger.Error("store_operation_failed", zap.Error(err))
	respondJSONError(w, http.StatusInternalServerError, "Internal server error")
}
