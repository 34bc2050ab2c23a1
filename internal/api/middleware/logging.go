package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Logging пишет в лог каждый запрос: метод, путь, код, длительность и request id.
// 5xx - Error, 4xx - Warn
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			requestID := GetRequestID(r.Context())

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - %d in %s, request_id=%s", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - %d in %s, request_id=%s", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			default:
				logger.Info("%s %s - %d in %s, request_id=%s", r.Method, r.URL.Path, rec.status, elapsed, requestID)
			}
		})
	}
}
