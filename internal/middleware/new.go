package middleware

import (
	pkgLog "shield-srv/pkg/log"
	"shield-srv/pkg/redis"
	"shield-srv/pkg/scope"
)

type Middleware struct {
	l          pkgLog.Logger
	jwtManager scope.Manager
	cronSecret string
	redis      redis.IRedis
}

func New(l pkgLog.Logger, jwtManager scope.Manager, cronSecret string, rd redis.IRedis) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		cronSecret: cronSecret,
		redis:      rd,
	}
}
