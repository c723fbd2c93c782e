package middleware

import (
	"net/http"
	"strings"
)

// ContentType validates Content-Type headers for requests with bodies.
// Bodyless requests pass through so endpoints with optional bodies can be
// called without one.
func ContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasBody(r) && (r.Method == http.MethodPost || r.Method == http.MethodPatch || r.Method == http.MethodPut) {
			contentType := r.Header.Get("Content-Type")

			if contentType == "" {
				respondErrorJSON(w, http.StatusBadRequest, "Content-Type header is required", nil)
				return
			}

			// Allow parameters such as charset
			if !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
				respondErrorJSON(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// hasBody reports whether the request declares or streams a body
func hasBody(r *http.Request) bool {
	if r.ContentLength > 0 {
		return true
	}
	// -1 means unknown length, e.g. chunked transfer
	return r.ContentLength < 0 && r.Body != nil && r.Body != http.NoBody
}
