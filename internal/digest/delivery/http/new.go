package http

import (
	"shield-srv/internal/digest"
	pkgLog "shield-srv/pkg/log"
	"shield-srv/pkg/slack"
)

type Handler struct {
	l     pkgLog.Logger
	uc    digest.UseCase
	slack slack.IClient
}

func New(l pkgLog.Logger, uc digest.UseCase, slackClient slack.IClient) *Handler {
	return &Handler{
		l:     l,
		uc:    uc,
		slack: slackClient,
	}
}
