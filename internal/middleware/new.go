package middleware

import (
	"mail-task-planner/config"
	"mail-task-planner/pkg/log"
)

type Middleware struct {
	l           log.Logger
	jwtSecret   string
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:           l,
		jwtSecret:   cfg.Auth.JWTSecret,
		rateLimiter: newRateLimiter(cfg.RateLimit.RequestsPerMin),
	}
}
