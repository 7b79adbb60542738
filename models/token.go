package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the claim set expected in every bearer token accepted by
// the API: the standard registered claims plus the caller's identity.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the identity claim of the caller. It is extracted after
	// successful verification and attached to the request context.
	Email string `json:"email"`
}

// Token wraps a verified JWT token with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Email is a cached copy of the "email" claim populated during token
// verification so downstream code does not re-inspect the claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Email is the caller identity extracted from the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
