// Package validators contains explicit validation routines for untrusted
// request DTOs. Each routine returns the full set of field violations instead
// of failing fast, so API clients can correct all problems in one round trip.
package validators

import (
	"net/mail"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/user-management-api/models"
)

// Field name constants used in validation violations. They match the JSON
// field names of [models.UserInput] so clients can map violations back to
// request payload fields directly.
const (
	// FieldFirstName targets the user's given name.
	FieldFirstName = "firstName"

	// FieldLastName targets the user's family name.
	FieldLastName = "lastName"

	// FieldEmail targets the user's e-mail address.
	FieldEmail = "email"

	// FieldDepartment targets the user's organisational unit.
	FieldDepartment = "department"
)

// namePattern accepts letters, spaces, and hyphens only.
var namePattern = regexp.MustCompile(`^[a-zA-Z\s-]+$`)

// ValidateUser checks the given input against all field-level invariants and
// returns every violation found. An empty result means the input is valid.
//
// Invariants:
//   - FirstName: required, 2-50 characters, letters/spaces/hyphens only
//   - LastName:  required, 2-50 characters, letters/spaces/hyphens only
//   - Email:     required, well-formed address
//   - Department: required, 2-100 characters
//
// The same routine is invoked by both the create and the update handlers so
// the two code paths cannot diverge.
func ValidateUser(input models.UserInput) []models.Violation {
	var violations []models.Violation

	violations = append(violations, validateName(FieldFirstName, "First name", input.FirstName)...)
	violations = append(violations, validateName(FieldLastName, "Last name", input.LastName)...)

	if input.Email == "" {
		violations = append(violations, models.Violation{Field: FieldEmail, Message: "Email is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		violations = append(violations, models.Violation{Field: FieldEmail, Message: "Invalid email address"})
	}

	switch length := utf8.RuneCountInString(input.Department); {
	case length == 0:
		violations = append(violations, models.Violation{Field: FieldDepartment, Message: "Department is required"})
	case length < 2 || length > 100:
		violations = append(violations, models.Violation{Field: FieldDepartment, Message: "Department must be between 2 and 100 characters"})
	}

	return violations
}

// validateName applies the shared first/last name invariants to one field.
// label is the human-readable field name used in violation messages.
func validateName(field, label, value string) []models.Violation {
	if value == "" {
		return []models.Violation{{Field: field, Message: label + " is required"}}
	}

	var violations []models.Violation

	if length := utf8.RuneCountInString(value); length < 2 || length > 50 {
		violations = append(violations, models.Violation{Field: field, Message: label + " must be between 2 and 50 characters"})
	}
	if !namePattern.MatchString(value) {
		violations = append(violations, models.Violation{Field: field, Message: label + " can only contain letters, spaces, and hyphens"})
	}

	return violations
}
