// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Fault categories recognized by the exception boundary. Handlers wrap the
// underlying cause and panic; the boundary classifies the fault by matching
// against these sentinels with [errors.Is].
var (
	// ErrUnauthorizedAccess marks permission and identity faults.
	// The boundary maps it to 401 with a fixed message.
	ErrUnauthorizedAccess = errors.New("unauthorized access")

	// ErrMalformedArgument marks faults caused by arguments the handler
	// could not interpret, such as a non-numeric path identifier.
	// The boundary maps it to 400 and exposes the fault's own message.
	ErrMalformedArgument = errors.New("malformed argument")
)
