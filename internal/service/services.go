package service

import (
	"github.com/MKhiriev/user-management-api/internal/cache"
	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
}

func NewServices(storages store.Storages, usersCache *cache.Users, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(cfg.App, logger),
		UserService: NewUserService(storages.UserRepository, usersCache, logger),
	}
}
