package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/user-management-api/internal/service"
)

// internalFaultMessage is what callers see for any fault the boundary cannot
// classify. Internal details stay in the logs only.
const internalFaultMessage = "An internal server error occurred"

// unauthorizedAccessMessage is the fixed message for permission and identity
// faults crossing the boundary.
const unauthorizedAccessMessage = "Unauthorized access"

var errorStatusMap = map[error]int{
	ErrUnauthorizedAccess:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	ErrMalformedArgument: http.StatusBadRequest,
}

// statusFromError classifies a fault caught by the exception boundary.
// First match wins; anything unrecognized is an internal fault.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the user-facing message for a classified fault.
// Only malformed-argument faults expose their own message; everything else
// gets a fixed one so internal details never leak.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusUnauthorized:
		return unauthorizedAccessMessage
	case http.StatusBadRequest:
		return err.Error()
	default:
		return internalFaultMessage
	}
}
