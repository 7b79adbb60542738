package service

import (
	"context"

	"github.com/MKhiriev/user-management-api/models"
)

type UserService interface {
	CreateUser(ctx context.Context, input models.UserInput) (models.User, error)

	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)

	UpdateUser(ctx context.Context, userID int64, input models.UserInput) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type AuthService interface {
	CreateToken(ctx context.Context, email string) (models.Token, error)
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}
