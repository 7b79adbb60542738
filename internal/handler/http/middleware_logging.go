package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/user-management-api/internal/logger"
)

// withLogging records method, path, status, response size and elapsed time
// for every request. The record is emitted from a deferred function so it is
// produced even when a downstream stage panics; in that case the status may
// still be zero (response never started) and is omitted from the record.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			duration := time.Since(start)

			event := log.Info().
				Str("uri", uri).
				Str("method", method).
				Dur("duration", duration).
				Int("size", lw.size)
			if lw.status != 0 {
				event = event.Int("status", lw.status)
			}
			event.Send()
		}()

		next.ServeHTTP(lw, r)
	})
}
