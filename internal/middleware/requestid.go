package middleware

import (
	"net/http"

	"github.com/benvon/zenith-task/internal/request"
	"github.com/google/uuid"
)

// maxRequestIDLength bounds client-supplied ids echoed back in responses
const maxRequestIDLength = 128

// RequestID tags every request with an id, reusing the caller's
// X-Request-ID when it is present and short enough.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(request.HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(request.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(request.WithRequestID(r.Context(), id)))
	})
}
