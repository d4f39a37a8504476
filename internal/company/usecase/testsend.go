package usecase

import (
	"context"
	"fmt"

	"shield-srv/internal/company"
	"shield-srv/internal/company/repository"
	"shield-srv/internal/model"
	"shield-srv/internal/notify"
	"shield-srv/pkg/email"
	"shield-srv/pkg/slack"
)

func (uc *usecase) SendTestSlack(ctx context.Context, sc model.Scope, ip company.SendTestSlackInput) error {
	c, err := uc.repo.Detail(ctx, sc.CompanyID)
	if err != nil {
		if err == repository.ErrNotFound {
			return company.ErrCompanyNotFound
		}
		uc.l.Errorf(ctx, "internal.company.usecase.SendTestSlack.Detail: %v", err)
		return err
	}

	url, ok := notify.PickWebhook(notify.RouteConfig{
		GlobalWebhookURL:  c.SlackWebhookURL,
		SummaryWebhookURL: c.SummaryWebhookURL,
		BrandWebhooks:     c.BrandWebhooks,
	}, notify.PurposeSummary, "")
	if !ok {
		return company.ErrNoWebhook
	}

	text := ip.Text
	if text == "" {
		text = fmt.Sprintf("Test message from %s. Your Slack endpoint is wired up.", c.Name)
	}
	if err := uc.slack.Post(ctx, url, slack.Message{Text: text}); err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.SendTestSlack.Post: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) SendTestEmail(ctx context.Context, sc model.Scope, ip company.SendTestEmailInput) error {
	if sc.Email == "" {
		return company.ErrFieldRequired
	}

	c, err := uc.repo.Detail(ctx, sc.CompanyID)
	if err != nil {
		if err == repository.ErrNotFound {
			return company.ErrCompanyNotFound
		}
		uc.l.Errorf(ctx, "internal.company.usecase.SendTestEmail.Detail: %v", err)
		return err
	}

	subject := ip.Subject
	if subject == "" {
		subject = fmt.Sprintf("%s: test email", c.Name)
	}
	err = uc.email.Send(ctx, email.Email{
		To:      []string{sc.Email},
		Subject: subject,
		HTML:    fmt.Sprintf("<p>Email delivery for <b>%s</b> is working.</p>", c.Name),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.company.usecase.SendTestEmail.Send: %v", err)
		return err
	}
	return nil
}
