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

// RunSpendDigest posts each Meta-connected company's spend for the current
// local business day against its daily cap. One ledger row per company and
// business day (source "meta-graph"); the spend snapshot is written to the
// pending row before dispatch so a crash leaves the number visible.
func (uc *usecase) RunSpendDigest(ctx context.Context, ip digest.RunInput) (digest.RunSummary, error) {
	summary := digest.NewRunSummary()

	companies, err := uc.companyRepo.List(ctx, companyRepo.ListOptions{
		Filter: companyRepo.Filter{HasMetaToken: true},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.RunSpendDigest.List: %v", err)
		return digest.RunSummary{}, err
	}

	for _, c := range companies {
		summary.Scanned++
		uc.spendCompany(ctx, c, ip, &summary)
	}
	return summary, nil
}

func (uc *usecase) spendCompany(ctx context.Context, c model.Company, ip digest.RunInput, summary *digest.RunSummary) {
	_, runDate := uc.localDay(c)
	day := timeutil.YMDString(runDate)

	if !ip.Dry {
		prior, err := uc.ledgerRepo.Find(ctx, c.ID, runDate, model.SourceSpend)
		if err == nil && prior.IsPosted() {
			summary.Skip(digest.SkipAlreadyPosted, 1)
			return
		}
	}

	token, err := uc.decryptToken(ctx, c)
	if err != nil {
		summary.Skip(digest.SkipFetchFailed, 1)
		return
	}

	actID, err := uc.resolveAdAccountID(ctx, c, token)
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.spendCompany.resolveAdAccountID: %v", err)
		summary.Skip(digest.SkipNoAccount, 1)
		return
	}

	spend, err := uc.spendForDay(ctx, token, actID, day)
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.spendCompany.spendForDay: %v", err)
		summary.Skip(digest.SkipFetchFailed, 1)
		return
	}

	url, ok := notify.PickWebhook(routeConfig(c), notify.PurposeSummary, "")
	if !ok {
		summary.Skip(digest.SkipNoWebhook, 1)
		return
	}

	if ip.Dry {
		summary.Sent++
		return
	}

	if _, err := uc.ledgerRepo.UpsertPending(ctx, ledgerRepo.UpsertPendingOptions{
		CompanyID: c.ID,
		RunDate:   runDate,
		Source:    model.SourceSpend,
		Spend:     spend,
		Cap:       c.DailyCapAmount,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.spendCompany.UpsertPending: %v", err)
		summary.Skip(digest.SkipDispatchFailed, 1)
		return
	}

	dispatchErr := uc.slack.Post(ctx, url, spendBlocks(c, day, spend))
	outcome := ledgerRepo.MarkOutcomeOptions{
		CompanyID:   c.ID,
		RunDate:     runDate,
		Source:      model.SourceSpend,
		Posted:      dispatchErr == nil,
		OK:          dispatchErr == nil,
		ErrorDetail: truncateErrDetail(dispatchErr),
	}
	if err := uc.ledgerRepo.MarkOutcome(ctx, outcome); err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.spendCompany.MarkOutcome: %v", err)
	}
	if dispatchErr != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.spendCompany.Post: %v", dispatchErr)
		summary.Skip(digest.SkipDispatchFailed, 1)
		return
	}
	summary.Sent++
}
