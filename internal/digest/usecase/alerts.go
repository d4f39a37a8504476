package usecase

import (
	"context"

	companyRepo "shield-srv/internal/company/repository"
	"shield-srv/internal/digest"
	ledgerRepo "shield-srv/internal/ledger/repository"
	"shield-srv/internal/model"
	"shield-srv/internal/notify"
	"shield-srv/pkg/timeutil"
)

// RunAlertScan ingests each company's CSV alert feed, filters by the
// minimum severity, applies quiet-hours suppression with critical bypass
// and routes surviving items per brand. One ledger row per company and
// business day (source "alerts").
func (uc *usecase) RunAlertScan(ctx context.Context, ip digest.RunInput) (digest.RunSummary, error) {
	summary := digest.NewRunSummary()

	companies, err := uc.companyRepo.List(ctx, companyRepo.ListOptions{
		Filter: companyRepo.Filter{HasFeedURL: true},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.RunAlertScan.List: %v", err)
		return digest.RunSummary{}, err
	}

	for _, c := range companies {
		uc.scanCompany(ctx, c, ip, &summary)
	}
	return summary, nil
}

func (uc *usecase) scanCompany(ctx context.Context, c model.Company, ip digest.RunInput, summary *digest.RunSummary) {
	localNow, runDate := uc.localDay(c)

	if !ip.Dry {
		prior, err := uc.ledgerRepo.Find(ctx, c.ID, runDate, model.SourceAlerts)
		if err == nil && prior.IsPosted() {
			summary.Skip(digest.SkipAlreadyPosted, 1)
			return
		}
	}

	rows, raw, err := uc.feed.Fetch(ctx, c.FeedURL)
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.scanCompany.Fetch: %v", err)
		summary.Skip(digest.SkipFetchFailed, 1)
		return
	}
	uc.archiveSnapshot(ctx, c, timeutil.YMDString(runDate), raw)

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

	// group per brand so each message goes to its brand endpoint
	cfg := routeConfig(c)
	byBrand := map[string][]model.AlertItem{}
	var order []string
	for _, item := range kept {
		if _, seen := byBrand[item.Brand]; !seen {
			order = append(order, item.Brand)
		}
		byBrand[item.Brand] = append(byBrand[item.Brand], item)
	}

	posted := false
	var dispatchErr error
	for _, brand := range order {
		group := byBrand[brand]
		url, ok := notify.PickWebhook(cfg, notify.PurposeAlert, brand)
		if !ok {
			summary.Skip(digest.SkipNoWebhook, len(group))
			continue
		}

		if ip.Dry {
			summary.Sent++
			continue
		}

		if _, err := uc.ledgerRepo.UpsertPending(ctx, ledgerRepo.UpsertPendingOptions{
			CompanyID: c.ID,
			RunDate:   runDate,
			Source:    model.SourceAlerts,
			Cap:       c.DailyCapAmount,
		}); err != nil {
			uc.l.Errorf(ctx, "internal.digest.usecase.scanCompany.UpsertPending: %v", err)
			summary.Skip(digest.SkipDispatchFailed, 1)
			continue
		}

		title := "Alerts"
		if brand != "" {
			title = "Alerts: " + brand
		}
		if err := uc.slack.Post(ctx, url, alertBlocks(title, group)); err != nil {
			uc.l.Warnf(ctx, "internal.digest.usecase.scanCompany.Post: %v", err)
			dispatchErr = err
			summary.Skip(digest.SkipDispatchFailed, 1)
			continue
		}
		posted = true
		summary.Sent++
	}

	if ip.Dry || (!posted && dispatchErr == nil) {
		return
	}
	err = uc.ledgerRepo.MarkOutcome(ctx, ledgerRepo.MarkOutcomeOptions{
		CompanyID:   c.ID,
		RunDate:     runDate,
		Source:      model.SourceAlerts,
		Posted:      posted,
		OK:          posted,
		ErrorDetail: truncateErrDetail(dispatchErr),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.scanCompany.MarkOutcome: %v", err)
	}
}
