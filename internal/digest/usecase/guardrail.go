package usecase

import (
	"context"

	companyRepo "shield-srv/internal/company/repository"
	"shield-srv/internal/digest"
	"shield-srv/internal/model"
	"shield-srv/internal/notify"
	"shield-srv/pkg/timeutil"
)

// RunGuardrail checks today's spend against the daily cap and posts an
// alert only when the cap is exceeded. The guardrail has no ledger bucket;
// it may fire on every invocation while the company stays over budget.
func (uc *usecase) RunGuardrail(ctx context.Context, ip digest.RunInput) (digest.RunSummary, error) {
	summary := digest.NewRunSummary()

	companies, err := uc.companyRepo.List(ctx, companyRepo.ListOptions{
		Filter: companyRepo.Filter{HasMetaToken: true, HasDailyCap: true},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.RunGuardrail.List: %v", err)
		return digest.RunSummary{}, err
	}

	for _, c := range companies {
		summary.Scanned++
		uc.guardCompany(ctx, c, ip, &summary)
	}
	return summary, nil
}

func (uc *usecase) guardCompany(ctx context.Context, c model.Company, ip digest.RunInput, summary *digest.RunSummary) {
	_, runDate := uc.localDay(c)
	day := timeutil.YMDString(runDate)

	token, err := uc.decryptToken(ctx, c)
	if err != nil {
		summary.Skip(digest.SkipFetchFailed, 1)
		return
	}

	actID, err := uc.resolveAdAccountID(ctx, c, token)
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.guardCompany.resolveAdAccountID: %v", err)
		summary.Skip(digest.SkipNoAccount, 1)
		return
	}

	spend, err := uc.spendForDay(ctx, token, actID, day)
	if err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.guardCompany.spendForDay: %v", err)
		summary.Skip(digest.SkipFetchFailed, 1)
		return
	}

	if spend <= c.DailyCapAmount {
		summary.Skip(digest.SkipUnderCap, 1)
		return
	}

	url, ok := notify.PickWebhook(routeConfig(c), notify.PurposeAlert, "")
	if !ok {
		summary.Skip(digest.SkipNoWebhook, 1)
		return
	}

	if ip.Dry {
		summary.Sent++
		return
	}

	if err := uc.slack.Post(ctx, url, overBudgetBlocks(c, day, spend)); err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.guardCompany.Post: %v", err)
		summary.Skip(digest.SkipDispatchFailed, 1)
		return
	}
	summary.Sent++
}
