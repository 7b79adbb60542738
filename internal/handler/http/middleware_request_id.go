package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/user-management-api/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// withRequestID assigns every request an identifier, honouring one supplied
// by the client in the X-Request-ID header. The identifier is stored in the
// request context, stamped on the response header, and attached to the
// request-scoped logger so all records of this request correlate.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var requestID string
		if requestIDFromHeader := r.Header.Get(requestIDHeader); requestIDFromHeader != "" {
			requestID = requestIDFromHeader
		} else {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx = context.WithValue(ctx, utils.RequestIDCtxKey, requestID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
