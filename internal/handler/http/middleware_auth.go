package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/utils"
)

// invalidTokenBody is the JSON error payload for rejected bearer tokens.
var invalidTokenBody = map[string]string{"error": "Invalid token"}

// auth is an HTTP middleware that populates the authentication context for
// requests carrying a bearer token.
//
// Authentication is optional: a request without an "Authorization" header
// passes through unauthenticated and downstream handlers decide whether
// that is acceptable. When the header IS present, the token must verify;
// the middleware rejects the request with HTTP 401 and a JSON body
// {"error": "Invalid token"} in the following cases:
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The signature does not validate against the configured key.
//   - The issuer or audience claim does not match the configured values.
//   - The token has expired (no clock-skew tolerance).
//
// Rejections are logged at warning level: a bad token is an expected
// occurrence, not a system fault. On success the "email" claim is stored in
// the request context under [utils.UserEmailCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("malformed authorization header")
			writeInvalidToken(w)
			return
		}

		token, err := h.services.AuthService.VerifyToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("bearer token rejected")
			writeInvalidToken(w)
			return
		}

		// Store the caller's email in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeInvalidToken(w http.ResponseWriter) {
	_, _ = utils.WriteJSON(w, invalidTokenBody, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
