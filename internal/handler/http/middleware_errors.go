// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/utils"
	"github.com/MKhiriev/user-management-api/models"
)

// errorBoundary is the outermost guard of the middleware chain. Any panic
// raised by a later stage or by a handler is recovered here, classified, and
// turned into a single JSON error body; the fault never propagates to the
// server.
//
// Classification (first match wins):
//   - permission/identity faults: 401 with a fixed "Unauthorized access" message
//   - malformed-argument faults: 400 carrying the fault's own message
//   - everything else: 500 with a generic message, so internal details
//     (store errors, stack traces) never reach the caller
//
// The full fault, including a stack trace, is always logged before the
// response is written.
func (h *Handler) errorBoundary(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			log := logger.FromRequest(r)

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			log.Error().
				Err(err).
				Str("uri", r.RequestURI).
				Str("method", r.Method).
				Bytes("stack", debug.Stack()).
				Msg("request failed with unhandled fault")

			status := statusFromError(err)
			apiError := models.APIError{
				StatusCode: status,
				Message:    messageFromError(err, status),
				RequestID:  utils.GetRequestIDFromContext(r.Context()),
				Timestamp:  time.Now().UTC(),
			}

			if _, writeErr := utils.WriteJSON(w, apiError, status); writeErr != nil {
				log.Err(writeErr).Msg("error writing fault response")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
