// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserEmailCtxKey is the key used to store the authenticated caller's email
// in the context. Populated by the authentication middleware after a bearer
// token has been verified; absent for unauthenticated requests.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserEmailCtxKey, "jane@example.com")
var UserEmailCtxKey = contextKey("userEmail")

// RequestIDCtxKey is the key used to store the request identifier in the
// context. Populated for every request by the request-ID middleware and
// echoed back in error bodies and the X-Request-ID response header.
var RequestIDCtxKey = contextKey("requestID")

// GetUserEmailFromContext retrieves the authenticated caller's email from
// the context.
//
// Returns the email and an ok flag:
//   - ok == true  — the request was authenticated and the claim is present
//   - ok == false — the request carried no (valid) token
//
// Example usage:
//
//	email, ok := utils.GetUserEmailFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok
}

// GetRequestIDFromContext retrieves the request identifier from the context.
// Returns an empty string when no identifier has been attached.
func GetRequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(RequestIDCtxKey).(string)
	return requestID
}
