package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-management-api/internal/cache"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/store"
	"github.com/MKhiriev/user-management-api/models"
)

// userService is the concrete implementation of UserService.
//
// List queries go through a read-through cache: a hit is served without
// touching the repository, a miss populates the cache from a repository
// read. Every successful mutation clears the whole cache, since any cached
// list may cover the mutated record.
type userService struct {
	userRepository store.UserRepository
	cache          *cache.Users
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository and
// list cache.
func NewUserService(userRepository store.UserRepository, usersCache *cache.Users, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		cache:          usersCache,
		logger:         logger,
	}
}

// CreateUser persists a new user from validated input and invalidates all
// cached list results.
//
// Returns the persisted user (with a server-assigned UserID and creation
// timestamp) or a wrapped storage error, for example
// store.ErrEmailAlreadyExists when the email is taken.
func (s *userService) CreateUser(ctx context.Context, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	createdUser, err := s.userRepository.CreateUser(ctx, input)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	s.cache.Clear()

	return createdUser, nil
}

// GetUserByID returns a single user record. Lookups by identifier bypass the
// list cache.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	foundUser, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns all users matching the filter.
//
// The result is served from the cache when a fresh entry exists for the
// filter's key; otherwise the repository is queried and the result is
// cached under that key, including an empty result.
func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	key := cache.Key(filter)
	if users, ok := s.cache.Get(key); ok {
		log.Debug().Str("key", key).Msg("list served from cache")
		return users, nil
	}

	users, err := s.userRepository.FindUsers(ctx, filter)
	if err != nil {
		log.Err(err).Str("key", key).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	s.cache.Set(key, users)

	return users, nil
}

// UpdateUser replaces all mutable fields of an existing user and invalidates
// all cached list results.
//
// Returns the updated record or a wrapped storage error, for example
// store.ErrUserNotFound for an unknown identifier or
// store.ErrEmailAlreadyExists when the new email belongs to another record.
func (s *userService) UpdateUser(ctx context.Context, userID int64, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	updatedUser, err := s.userRepository.UpdateUser(ctx, userID, input)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	s.cache.Clear()

	return updatedUser, nil
}

// DeleteUser removes the user with the given identifier and invalidates all
// cached list results. Returns a wrapped store.ErrUserNotFound for an
// unknown identifier.
func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	s.cache.Clear()

	return nil
}
