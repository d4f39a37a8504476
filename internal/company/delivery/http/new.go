package http

import (
	"shield-srv/internal/company"
	pkgLog "shield-srv/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc company.UseCase
}

func New(l pkgLog.Logger, uc company.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
