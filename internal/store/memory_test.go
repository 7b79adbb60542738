package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRepo(t *testing.T) UserRepository {
	t.Helper()
	return NewMemoryUserRepository(logger.Nop())
}

func janeInput() models.UserInput {
	return models.UserInput{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
		IsActive:   true,
	}
}

func TestMemoryCreateUser_AssignsIDAndTimestamp(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, janeInput())

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, time.UTC, created.CreatedAt.Location())
}

func TestMemoryCreateUser_DuplicateEmail(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, janeInput())
	require.NoError(t, err)

	other := janeInput()
	other.FirstName = "John"
	_, err = repo.CreateUser(ctx, other)

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

// Email matching is exact and case-sensitive: a different casing is a
// different email.
func TestMemoryCreateUser_EmailCaseSensitive(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, janeInput())
	require.NoError(t, err)

	upper := janeInput()
	upper.Email = "JANE@example.com"
	_, err = repo.CreateUser(ctx, upper)

	assert.NoError(t, err)
}

// Exactly one of many concurrent creates with the same email may succeed.
func TestMemoryCreateUser_ConcurrentDuplicates(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.CreateUser(ctx, janeInput())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent create may win")
}

func TestMemoryFindUserByID(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, janeInput())
	require.NoError(t, err)

	found, err := repo.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryFindUsers_Filters(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	seed := []models.UserInput{
		{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Department: "Engineering", IsActive: true},
		{FirstName: "John", LastName: "Roe", Email: "john@example.com", Department: "Engineering", IsActive: false},
		{FirstName: "Mary", LastName: "Poe", Email: "mary@example.com", Department: "Sales", IsActive: true},
	}
	for _, input := range seed {
		_, err := repo.CreateUser(ctx, input)
		require.NoError(t, err)
	}

	engineering := "Engineering"
	active := true

	tests := []struct {
		name       string
		filter     models.UserFilter
		wantEmails []string
	}{
		{
			name:       "no filters returns everything in id order",
			filter:     models.UserFilter{},
			wantEmails: []string{"jane@example.com", "john@example.com", "mary@example.com"},
		},
		{
			name:       "department filter",
			filter:     models.UserFilter{Department: &engineering},
			wantEmails: []string{"jane@example.com", "john@example.com"},
		},
		{
			name:       "active filter",
			filter:     models.UserFilter{IsActive: &active},
			wantEmails: []string{"jane@example.com", "mary@example.com"},
		},
		{
			name:       "filters combine with AND",
			filter:     models.UserFilter{Department: &engineering, IsActive: &active},
			wantEmails: []string{"jane@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := repo.FindUsers(ctx, tt.filter)
			require.NoError(t, err)

			emails := make([]string, 0, len(users))
			for _, u := range users {
				emails = append(emails, u.Email)
			}
			assert.Equal(t, tt.wantEmails, emails)
		})
	}
}

func TestMemoryUpdateUser(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, janeInput())
	require.NoError(t, err)

	update := models.UserInput{
		FirstName:  "Janet",
		LastName:   "Doe",
		Email:      "janet@example.com",
		Department: "Sales",
		IsActive:   false,
	}
	updated, err := repo.UpdateUser(ctx, created.UserID, update)

	require.NoError(t, err)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "creation timestamp is immutable")
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "janet@example.com", updated.Email)
	assert.False(t, updated.IsActive)
}

func TestMemoryUpdateUser_NotFound(t *testing.T) {
	repo := newMemoryRepo(t)

	_, err := repo.UpdateUser(context.Background(), 42, janeInput())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUpdateUser_EmailConflictWithOtherRecord(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, janeInput())
	require.NoError(t, err)

	other := janeInput()
	other.Email = "john@example.com"
	created, err := repo.CreateUser(ctx, other)
	require.NoError(t, err)

	// taking jane's email is a conflict...
	conflicting := janeInput()
	_, err = repo.UpdateUser(ctx, created.UserID, conflicting)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// ...but keeping your own email is not
	keep := other
	keep.FirstName = "Johnny"
	_, err = repo.UpdateUser(ctx, created.UserID, keep)
	assert.NoError(t, err)
}

func TestMemoryDeleteUser(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, janeInput())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(ctx, created.UserID))

	_, err = repo.FindUserByID(ctx, created.UserID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, repo.DeleteUser(ctx, created.UserID), ErrUserNotFound)
}
