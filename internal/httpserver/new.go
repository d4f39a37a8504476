package httpserver

import (
	"database/sql"
	"errors"

	pkgLog "shield-srv/pkg/log"
	"shield-srv/pkg/csvfeed"
	"shield-srv/pkg/email"
	"shield-srv/pkg/encrypter"
	"shield-srv/pkg/meta"
	"shield-srv/pkg/minio"
	pkgRedis "shield-srv/pkg/redis"
	"shield-srv/pkg/scope"
	"shield-srv/pkg/slack"

	"github.com/gin-gonic/gin"
)

// HTTPServer wires the service dependencies. New only validates them;
// Run (httpserver.go) maps handlers and serves.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	environment string

	db     *sql.DB
	redis  pkgRedis.IRedis
	minio  minio.IMinIO
	bucket string

	jwtMgr     scope.Manager
	cronSecret string
	encrypter  encrypter.Encrypter

	slack slack.IClient
	email email.IClient
	meta  meta.IClient
	feed  csvfeed.IFetcher
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB         *sql.DB
	Redis      pkgRedis.IRedis
	MinIO      minio.IMinIO
	FeedBucket string

	JWTManager scope.Manager
	CronSecret string
	Encrypter  encrypter.Encrypter

	Slack slack.IClient
	Email email.IClient
	Meta  meta.IClient
	Feed  csvfeed.IFetcher
}

// New creates a new HTTPServer. It does not start any goroutines; use Run.
func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:         gin.New(),
		l:           l,
		port:        cfg.Port,
		environment: cfg.Environment,
		db:          cfg.DB,
		redis:       cfg.Redis,
		minio:       cfg.MinIO,
		bucket:      cfg.FeedBucket,
		jwtMgr:      cfg.JWTManager,
		cronSecret:  cfg.CronSecret,
		encrypter:   cfg.Encrypter,
		slack:       cfg.Slack,
		email:       cfg.Email,
		meta:        cfg.Meta,
		feed:        cfg.Feed,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	if srv.cronSecret == "" {
		return errors.New("cron secret is required")
	}
	if srv.slack == nil {
		return errors.New("slack client is required")
	}
	return nil
}
