package config

import "errors"

var (
	ErrNoTokenSignKey  = errors.New("token sign key is not configured")
	ErrNoTokenIssuer   = errors.New("token issuer is not configured")
	ErrNoTokenAudience = errors.New("token audience is not configured")
)
