package main

import (
	"context"
	"fmt"

	"shield-srv/config"
	configMinio "shield-srv/config/minio"
	configPostgre "shield-srv/config/postgre"
	configRedis "shield-srv/config/redis"
	"shield-srv/internal/httpserver"
	"shield-srv/pkg/csvfeed"
	"shield-srv/pkg/email"
	"shield-srv/pkg/encrypter"
	"shield-srv/pkg/log"
	"shield-srv/pkg/meta"
	"shield-srv/pkg/scope"
	"shield-srv/pkg/slack"
)

// @title       Shield Service
// @description Marketing-ops notification backend: alert routing, digests and budget guardrails
// @version     1.0
// @host        localhost:8080
// @schemes     http
// @BasePath    /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting shield service...")

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, db)
	logger.Info(ctx, "PostgreSQL client initialized")

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis not available, cron rate limiting disabled: %v", err)
	} else {
		defer configRedis.Disconnect(redisClient)
		logger.Info(ctx, "Redis client initialized")
	}

	minioClient, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO not available, feed archiving disabled: %v", err)
	} else if minioClient != nil {
		defer configMinio.Disconnect(minioClient)
		logger.Info(ctx, "MinIO client initialized")
	}

	jwtManager := scope.New(cfg.JWT.SecretKey)
	enc := encrypter.New(cfg.Encrypter.Key)

	slackClient := slack.New(slack.Config{OpsWebhookURL: cfg.Slack.OpsWebhookURL})
	emailClient := email.New(email.Config{APIKey: cfg.Email.APIKey, From: cfg.Email.From})
	metaClient := meta.New(meta.Config{
		BaseURL: cfg.Meta.BaseURL,
		Version: cfg.Meta.Version,
		Retries: cfg.Meta.Retries,
	})
	feedFetcher := csvfeed.New(csvfeed.Config{})

	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Redis:       redisClient,
		MinIO:       minioClient,
		FeedBucket:  cfg.MinIO.FeedBucket,
		JWTManager:  jwtManager,
		CronSecret:  cfg.Cron.Secret,
		Encrypter:   enc,
		Slack:       slackClient,
		Email:       emailClient,
		Meta:        metaClient,
		Feed:        feedFetcher,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server stopped with error: %v", err)
	}
}
