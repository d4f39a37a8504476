package usecase

import (
	"time"

	"shield-srv/internal/company"
	"shield-srv/internal/company/repository"
	userRepo "shield-srv/internal/user/repository"
	"shield-srv/pkg/email"
	"shield-srv/pkg/encrypter"
	pkgLog "shield-srv/pkg/log"
	"shield-srv/pkg/slack"
)

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	userRepo  userRepo.Repository
	slack     slack.IClient
	email     email.IClient
	encrypter encrypter.Encrypter
	clock     func() time.Time
}

func New(
	l pkgLog.Logger,
	repo repository.Repository,
	userRepo userRepo.Repository,
	slackClient slack.IClient,
	emailClient email.IClient,
	enc encrypter.Encrypter,
) company.UseCase {
	return &usecase{
		l:         l,
		repo:      repo,
		userRepo:  userRepo,
		slack:     slackClient,
		email:     emailClient,
		encrypter: enc,
		clock:     time.Now,
	}
}
