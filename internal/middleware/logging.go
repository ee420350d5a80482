package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingMiddleware provides request logging with security context
type LoggingMiddleware struct {
	logger *logrus.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(logger *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: logger,
	}
}

// LogRequests logs incoming requests with security information
func (lm *LoggingMiddleware) LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := ClientIP(r.Context())
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		entry := lm.logger.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     wrapped.statusCode,
			"duration":   time.Since(start).String(),
			"client_ip":  clientIP,
			"request_id": RequestID(r.Context()),
			"user_agent": r.UserAgent(),
		})

		switch {
		case wrapped.statusCode >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case wrapped.statusCode == http.StatusTooManyRequests:
			entry.Warn("SECURITY: rate limit exceeded")
		case wrapped.statusCode == http.StatusRequestTimeout:
			entry.Warn("Request timed out")
		default:
			entry.Info("Request handled")
		}
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
