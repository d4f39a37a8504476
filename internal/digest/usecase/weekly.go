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

// RunWeeklyReceipt aggregates the last seven local business days of spend
// ledger rows per company into a receipt. One ledger row per company and
// business day (source "weekly").
func (uc *usecase) RunWeeklyReceipt(ctx context.Context, ip digest.RunInput) (digest.RunSummary, error) {
	summary := digest.NewRunSummary()

	companies, err := uc.companyRepo.List(ctx, companyRepo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.RunWeeklyReceipt.List: %v", err)
		return digest.RunSummary{}, err
	}

	for _, c := range companies {
		summary.Scanned++
		uc.receiptCompany(ctx, c, ip, &summary)
	}
	return summary, nil
}

func (uc *usecase) receiptCompany(ctx context.Context, c model.Company, ip digest.RunInput, summary *digest.RunSummary) {
	_, runDate := uc.localDay(c)

	if !ip.Dry {
		prior, err := uc.ledgerRepo.Find(ctx, c.ID, runDate, model.SourceWeekly)
		if err == nil && prior.IsPosted() {
			summary.Skip(digest.SkipAlreadyPosted, 1)
			return
		}
	}

	// the window covers the seven local days ending yesterday
	to := runDate.AddDate(0, 0, -1)
	from := runDate.AddDate(0, 0, -7)
	rows, err := uc.ledgerRepo.ListWindow(ctx, ledgerRepo.WindowOptions{
		CompanyID: c.ID,
		Sources:   []string{model.SourceSpend},
		From:      from,
		To:        to,
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.receiptCompany.ListWindow: %v", err)
		summary.Skip(digest.SkipFetchFailed, 1)
		return
	}
	if len(rows) == 0 {
		summary.Skip(digest.SkipNoData, 1)
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

	st := aggregateWeek(rows)
	if _, err := uc.ledgerRepo.UpsertPending(ctx, ledgerRepo.UpsertPendingOptions{
		CompanyID: c.ID,
		RunDate:   runDate,
		Source:    model.SourceWeekly,
		Spend:     st.totalSpend,
		Cap:       c.DailyCapAmount,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.receiptCompany.UpsertPending: %v", err)
		summary.Skip(digest.SkipDispatchFailed, 1)
		return
	}

	msg := weeklyBlocks(c, timeutil.YMDString(from), timeutil.YMDString(to), st)
	dispatchErr := uc.slack.Post(ctx, url, msg)
	outcome := ledgerRepo.MarkOutcomeOptions{
		CompanyID:   c.ID,
		RunDate:     runDate,
		Source:      model.SourceWeekly,
		Posted:      dispatchErr == nil,
		OK:          dispatchErr == nil,
		ErrorDetail: truncateErrDetail(dispatchErr),
	}
	if err := uc.ledgerRepo.MarkOutcome(ctx, outcome); err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.receiptCompany.MarkOutcome: %v", err)
	}
	if dispatchErr != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.receiptCompany.Post: %v", dispatchErr)
		summary.Skip(digest.SkipDispatchFailed, 1)
		return
	}
	summary.Sent++
}
