// Package store implements persistence for user records.
//
// The canonical deployment uses the in-memory repository; a PostgreSQL-backed
// repository is selected when a database DSN is configured. Both
// implementations serialize conflicting writes internally so that invariants
// such as email uniqueness hold under concurrent requests.
package store

import (
	"context"

	"github.com/MKhiriev/user-management-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the data-access contract for user records.
//
// Implementations must keep the uniqueness check and the insert of
// CreateUser atomic: two concurrent creates with the same email must never
// both succeed.
type UserRepository interface {
	// CreateUser persists a new user from validated input, assigning the
	// identifier and the UTC creation timestamp.
	// Returns ErrEmailAlreadyExists when the email is already taken.
	CreateUser(ctx context.Context, input models.UserInput) (models.User, error)

	// FindUserByID returns the user with the given identifier or
	// ErrUserNotFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUsers returns all users matching the filter, ordered by identifier.
	// Present filter predicates are combined with AND using exact matching.
	FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	// UpdateUser replaces all mutable fields of an existing user.
	// Returns ErrUserNotFound for an unknown identifier and
	// ErrEmailAlreadyExists when the new email belongs to another record.
	UpdateUser(ctx context.Context, userID int64, input models.UserInput) (models.User, error)

	// DeleteUser removes the user with the given identifier or returns
	// ErrUserNotFound.
	DeleteUser(ctx context.Context, userID int64) error
}
