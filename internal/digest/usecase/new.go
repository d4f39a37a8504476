package usecase

import (
	"time"

	companyRepo "shield-srv/internal/company/repository"
	"shield-srv/internal/digest"
	ledgerRepo "shield-srv/internal/ledger/repository"
	userRepo "shield-srv/internal/user/repository"
	"shield-srv/pkg/csvfeed"
	"shield-srv/pkg/email"
	"shield-srv/pkg/encrypter"
	pkgLog "shield-srv/pkg/log"
	"shield-srv/pkg/meta"
	"shield-srv/pkg/minio"
	"shield-srv/pkg/slack"
)

type usecase struct {
	l           pkgLog.Logger
	companyRepo companyRepo.Repository
	userRepo    userRepo.Repository
	ledgerRepo  ledgerRepo.Repository

	slack slack.IClient
	email email.IClient
	meta  meta.IClient
	feed  csvfeed.IFetcher

	// storage archives raw feed snapshots. Nil disables archiving.
	storage    minio.IMinIO
	feedBucket string

	encrypter encrypter.Encrypter
	clock     func() time.Time
}

func New(
	l pkgLog.Logger,
	companyRepository companyRepo.Repository,
	userRepository userRepo.Repository,
	ledgerRepository ledgerRepo.Repository,
	slackClient slack.IClient,
	emailClient email.IClient,
	metaClient meta.IClient,
	feedFetcher csvfeed.IFetcher,
	storage minio.IMinIO,
	feedBucket string,
	enc encrypter.Encrypter,
) digest.UseCase {
	return &usecase{
		l:           l,
		companyRepo: companyRepository,
		userRepo:    userRepository,
		ledgerRepo:  ledgerRepository,
		slack:       slackClient,
		email:       emailClient,
		meta:        metaClient,
		feed:        feedFetcher,
		storage:     storage,
		feedBucket:  feedBucket,
		encrypter:   enc,
		clock:       time.Now,
	}
}
