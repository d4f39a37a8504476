package usecase

import (
	"shield-srv/internal/user"
	"shield-srv/internal/user/repository"
	pkgLog "shield-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
