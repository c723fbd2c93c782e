package middleware

import (
	"net/http"

	logpkg "github.com/benvon/zenith-task/internal/logger"
	"github.com/benvon/zenith-task/internal/request"
	"go.uber.org/zap"
)

// auditedStatuses are responses that mean a client was turned away by a
// protective middleware rather than by the API itself
var auditedStatuses = map[int]string{
	http.StatusTooManyRequests:       "rate_limit_violation",
	http.StatusRequestEntityTooLarge: "oversized_request",
	http.StatusUnsupportedMediaType:  "unsupported_media_type",
}

// Audit logs rejected requests at warn level for monitoring
func Audit(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			event, ok := auditedStatuses[wrapped.statusCode]
			if !ok {
				return
			}
			logger.Warn(event,
				zap.Int("status_code", wrapped.statusCode),
				zap.String("method", r.Method),
				zap.String("path", logpkg.SanitizePath(r.URL.Path)),
				zap.String("ip", logpkg.SanitizeString(request.ClientIP(r), logpkg.MaxGeneralStringLength)),
				zap.String("request_id", request.RequestID(r.Context())),
			)
		})
	}
}
