package models

import "time"

// User represents a single user record managed by the API.
// The store exclusively owns the canonical copy; handlers operate on
// transient values decoded from or encoded to JSON.
type User struct {
	// UserID is the store-assigned unique identifier of the user.
	// It is immutable after creation.
	UserID int64 `json:"id"`

	// FirstName is the user's given name.
	// Must be 2-50 characters: letters, spaces, and hyphens only.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	// Must be 2-50 characters: letters, spaces, and hyphens only.
	LastName string `json:"lastName"`

	// Email is the user's e-mail address.
	// Unique across all records; matched case-sensitively.
	Email string `json:"email"`

	// Department is the organisational unit the user belongs to.
	// Must be 2-100 characters.
	Department string `json:"department"`

	// IsActive reports whether the user account is currently active.
	IsActive bool `json:"isActive"`

	// CreatedAt is the server-assigned UTC creation timestamp.
	// Set once at creation time and never modified afterwards.
	CreatedAt time.Time `json:"dateCreated"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserInput is the untrusted external representation of a user used for
// create and update requests. It carries no server-assigned fields;
// validators.ValidateUser must accept it before it becomes a User.
type UserInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	IsActive   bool   `json:"isActive"`
}

// UserFilter describes the optional predicates of a list query.
// A nil field means "no filter on this attribute"; present predicates are
// combined with AND using exact matching.
type UserFilter struct {
	// Department filters by exact department name when non-nil.
	Department *string

	// IsActive filters by the active flag when non-nil.
	IsActive *bool
}
