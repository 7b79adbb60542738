package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserEmailFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserEmailCtxKey, "jane@example.com")

	email, ok := GetUserEmailFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "jane@example.com", email)
}

func TestGetUserEmailFromContext_Absent(t *testing.T) {
	email, ok := GetUserEmailFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, email)
}

func TestGetUserEmailFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserEmailCtxKey, 42)

	_, ok := GetUserEmailFromContext(ctx)

	assert.False(t, ok)
}

func TestGetRequestIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDCtxKey, "req-123")

	assert.Equal(t, "req-123", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userEmail", UserEmailCtxKey.String())
	assert.Equal(t, "requestID", RequestIDCtxKey.String())
}
