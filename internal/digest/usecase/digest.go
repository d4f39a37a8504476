package usecase

import (
	"context"
	"fmt"

	companyRepo "shield-srv/internal/company/repository"
	"shield-srv/internal/digest"
	ledgerRepo "shield-srv/internal/ledger/repository"
	"shield-srv/internal/model"
	"shield-srv/internal/notify"
	"shield-srv/pkg/email"
)

// RunDailyDigest posts each company's daily alert digest to its summary
// endpoint at the configured local hour, and fans the same content out to
// company users by email. One ledger row per company and business day
// (source "digest").
func (uc *usecase) RunDailyDigest(ctx context.Context, ip digest.RunInput) (digest.RunSummary, error) {
	summary := digest.NewRunSummary()

	companies, err := uc.companyRepo.List(ctx, companyRepo.ListOptions{
		Filter: companyRepo.Filter{HasFeedURL: true},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.RunDailyDigest.List: %v", err)
		return digest.RunSummary{}, err
	}

	for _, c := range companies {
		uc.digestCompany(ctx, c, ip, &summary)
	}
	return summary, nil
}

func (uc *usecase) digestCompany(ctx context.Context, c model.Company, ip digest.RunInput, summary *digest.RunSummary) {
	localNow, runDate := uc.localDay(c)

	if !ip.Force && localNow.Hour() != c.DigestHourLocal {
		summary.Skip(digest.SkipNotDue, 1)
		return
	}

	if !ip.Dry {
		prior, err := uc.ledgerRepo.Find(ctx, c.ID, runDate, model.SourceDigest)
		if err == nil && prior.IsPosted() {
			summary.Skip(digest.SkipAlreadyPosted, 1)
			return
		}
	}

	rows, _, err := uc.feed.Fetch(ctx, c.FeedURL)
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.digestCompany.Fetch: %v", err)
		summary.Skip(digest.SkipFetchFailed, 1)
		return
	}

	items := itemsFromRows(rows)
	summary.Scanned += len(items)
	if len(items) == 0 {
		summary.Skip(digest.SkipNoItems, 1)
		return
	}

	kept := notify.FilterMinSeverity(items, c.MinSeverity)
	summary.Skip(digest.SkipSeverity, len(items)-len(kept))
	if len(kept) == 0 {
		return
	}

	if quietSuppressed(c, localNow, kept) {
		summary.Skip(digest.SkipQuietHours, len(kept))
		return
	}

	url, ok := notify.PickWebhook(routeConfig(c), notify.PurposeSummary, "")
	if !ok {
		summary.Skip(digest.SkipNoWebhook, len(kept))
		return
	}

	if ip.Dry {
		summary.Sent++
		return
	}

	if _, err := uc.ledgerRepo.UpsertPending(ctx, ledgerRepo.UpsertPendingOptions{
		CompanyID: c.ID,
		RunDate:   runDate,
		Source:    model.SourceDigest,
		Cap:       c.DailyCapAmount,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.digestCompany.UpsertPending: %v", err)
		summary.Skip(digest.SkipDispatchFailed, 1)
		return
	}

	dispatchErr := uc.slack.Post(ctx, url, alertBlocks("Daily digest", kept))
	outcome := ledgerRepo.MarkOutcomeOptions{
		CompanyID:   c.ID,
		RunDate:     runDate,
		Source:      model.SourceDigest,
		Posted:      dispatchErr == nil,
		OK:          dispatchErr == nil,
		ErrorDetail: truncateErrDetail(dispatchErr),
	}
	if err := uc.ledgerRepo.MarkOutcome(ctx, outcome); err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.digestCompany.MarkOutcome: %v", err)
	}
	if dispatchErr != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.digestCompany.Post: %v", dispatchErr)
		summary.Skip(digest.SkipDispatchFailed, 1)
		return
	}
	summary.Sent++

	uc.fanOutEmail(ctx, c, kept)
}

// fanOutEmail mails the digest to every company user. Email failures are
// logged and never affect the run outcome.
func (uc *usecase) fanOutEmail(ctx context.Context, c model.Company, items []model.AlertItem) {
	users, err := uc.userRepo.List(ctx, c.ID)
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.fanOutEmail.List: %v", err)
		return
	}
	if len(users) == 0 {
		return
	}

	to := make([]string, 0, len(users))
	for _, u := range users {
		if u.Email != "" {
			to = append(to, u.Email)
		}
	}
	if len(to) == 0 {
		return
	}

	err = uc.email.Send(ctx, email.Email{
		To:      to,
		Subject: fmt.Sprintf("Daily digest: %s", c.Name),
		HTML:    digestEmailHTML(c.Name, items),
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.fanOutEmail.Send: %v", err)
	}
}
