package models

import "time"

// APIError is the JSON error body emitted by the exception boundary and by
// handlers for request-level failures. Internal fault details must never be
// placed in Message; the boundary substitutes a generic message for
// unclassified faults.
type APIError struct {
	// StatusCode mirrors the HTTP status of the response.
	StatusCode int `json:"statusCode"`

	// Message is a user-facing description of the failure.
	Message string `json:"message"`

	// RequestID correlates the error with the request log; empty when the
	// request carried no identifier.
	RequestID string `json:"requestId"`

	// Timestamp is the UTC moment the error response was produced.
	Timestamp time.Time `json:"timestamp"`

	// Violations lists field-level validation failures.
	// Present only on validation errors.
	Violations []Violation `json:"violations,omitempty"`
}

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
