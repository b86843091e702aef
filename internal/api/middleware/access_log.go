package middleware

import (
	"net/http"
	"time"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку на каждый запрос. 5xx уходят в Error.
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			status := rec.Status()
			format := "%s %s status=%d bytes=%d duration=%s request_id=%s"
			args := []interface{}{r.Method, r.URL.Path, status, rec.bytes, time.Since(start), RequestIDFromContext(r.Context())}
			if status >= http.StatusInternalServerError {
				logger.Error(format, args...)
				return
			}
			logger.Info(format, args...)
		})
	}
}
