package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
// A single mutex guards the record map and the identifier counter, so the
// email uniqueness check and the subsequent insert are one atomic step.
type memoryUserRepository struct {
	mu     sync.Mutex
	users  map[int64]models.User
	nextID int64

	logger *logger.Logger

	// now is the clock source for CreatedAt; replaced in tests.
	now func() time.Time
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
// The returned repository is safe for concurrent use.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make(map[int64]models.User),
		nextID: 1,
		logger: logger,
		now:    time.Now,
	}
}

// CreateUser assigns the next identifier and the UTC creation timestamp and
// stores the record. The email uniqueness scan and the insert happen under
// one lock acquisition.
func (r *memoryUserRepository) CreateUser(ctx context.Context, input models.UserInput) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(input.Email, 0) {
		return models.User{}, ErrEmailAlreadyExists
	}

	user := models.User{
		UserID:     r.nextID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Department: input.Department,
		IsActive:   input.IsActive,
		CreatedAt:  r.now().UTC(),
	}
	r.users[user.UserID] = user
	r.nextID++

	return user, nil
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// FindUsers applies present filter predicates as an AND of exact matches and
// returns the result ordered by identifier, which is the repository's natural
// order (insertion order).
func (r *memoryUserRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		if filter.Department != nil && user.Department != *filter.Department {
			continue
		}
		if filter.IsActive != nil && user.IsActive != *filter.IsActive {
			continue
		}
		found = append(found, user)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].UserID < found[j].UserID })

	return found, nil
}

// UpdateUser replaces all mutable fields in place. UserID and CreatedAt are
// immutable and survive the replacement.
func (r *memoryUserRepository) UpdateUser(ctx context.Context, userID int64, input models.UserInput) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	if r.emailTaken(input.Email, userID) {
		return models.User{}, ErrEmailAlreadyExists
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	user.Department = input.Department
	user.IsActive = input.IsActive
	r.users[userID] = user

	return user, nil
}

func (r *memoryUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return ErrUserNotFound
	}

	delete(r.users, userID)

	return nil
}

// emailTaken reports whether email belongs to any record other than exceptID.
// Matching is exact and case-sensitive. Callers must hold the mutex.
func (r *memoryUserRepository) emailTaken(email string, exceptID int64) bool {
	for _, user := range r.users {
		if user.UserID != exceptID && user.Email == email {
			return true
		}
	}

	return false
}
