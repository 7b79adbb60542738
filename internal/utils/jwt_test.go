package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/user-management-api/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer   = "test-issuer"
	testAudience = "test-audience"
	testEmail    = "jane@example.com"
	testSignKey  = "secret-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, testEmail, time.Hour, testSignKey)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*models.TokenClaims)
	if !ok {
		t.Fatal("could not cast claims to TokenClaims")
	}
	if claims.Issuer != testIssuer {
		t.Errorf("expected issuer %s, got %s", testIssuer, claims.Issuer)
	}
	if claims.Email != testEmail {
		t.Errorf("expected email %s, got %s", testEmail, claims.Email)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		audience string
		email    string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", testAudience, testEmail, time.Hour, testSignKey},
		{"empty audience", testIssuer, "", testEmail, time.Hour, testSignKey},
		{"empty email", testIssuer, testAudience, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, testAudience, testEmail, 0, testSignKey},
		{"empty sign key", testIssuer, testAudience, testEmail, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.audience, tt.email, tt.duration, tt.signKey)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testAudience, testEmail, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, testAudience)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Email != testEmail {
		t.Errorf("expected email %s, got %s", testEmail, parsed.Email)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, testAudience, testEmail, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	expired, err := GenerateJWTToken(testIssuer, testAudience, testEmail, -time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	tests := []struct {
		name        string
		tokenString string
		signKey     string
		issuer      string
		audience    string
	}{
		{"wrong sign key", valid.SignedString, "other-key", testIssuer, testAudience},
		{"wrong issuer", valid.SignedString, testSignKey, "other-issuer", testAudience},
		{"wrong audience", valid.SignedString, testSignKey, testIssuer, "other-audience"},
		{"expired token", expired.SignedString, testSignKey, testIssuer, testAudience},
		{"malformed token", "not-a-jwt-at-all", testSignKey, testIssuer, testAudience},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.tokenString, tt.signKey, tt.issuer, tt.audience)
			if err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

// Tokens signed with an unexpected algorithm must be rejected even when the
// signature itself would verify.
func TestValidateAndParseJWTToken_RejectsUnexpectedAlgorithm(t *testing.T) {
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: testEmail,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte(testSignKey))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, testSignKey, testIssuer, testAudience); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateAndParseJWTToken_MissingEmailClaim(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSignKey))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, testSignKey, testIssuer, testAudience); err == nil {
		t.Error("expected token without email claim to be rejected")
	}
}
