package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"shield-srv/internal/model"
	"shield-srv/internal/notify"
	"shield-srv/pkg/csvfeed"
	"shield-srv/pkg/timeutil"
)

const errDetailMax = 500

func routeConfig(c model.Company) notify.RouteConfig {
	return notify.RouteConfig{
		GlobalWebhookURL:  c.SlackWebhookURL,
		SummaryWebhookURL: c.SummaryWebhookURL,
		BrandWebhooks:     c.BrandWebhooks,
	}
}

// itemsFromRows maps feed rows onto alert items, coercing any legacy or
// malformed severity onto the canonical vocabulary.
func itemsFromRows(rows []csvfeed.Row) []model.AlertItem {
	items := make([]model.AlertItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.AlertItem{
			ID:        row.ID,
			Text:      row.Text,
			Severity:  model.ParseSeverity(row.Severity),
			Brand:     row.Brand,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return items
}

// quietSuppressed reports whether the batch must be suppressed by the
// company's quiet-hours window. Critical items always bypass suppression.
func quietSuppressed(c model.Company, localNow time.Time, items []model.AlertItem) bool {
	if !c.HasQuietHours() {
		return false
	}
	if !timeutil.WithinQuietHours(localNow, c.QuietStart, c.QuietEnd) {
		return false
	}
	return !notify.HasCrit(items)
}

func truncateErrDetail(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > errDetailMax {
		return s[:errDetailMax]
	}
	return s
}

// localDay returns the company's current local time and its business day
// bucket (local date pinned to UTC midnight).
func (uc *usecase) localDay(c model.Company) (time.Time, time.Time) {
	now := uc.clock()
	return timeutil.NowInTZ(now, c.Timezone), timeutil.LocalYMD(now, c.Timezone)
}

// decryptToken recovers the company's Meta access token.
func (uc *usecase) decryptToken(ctx context.Context, c model.Company) (string, error) {
	if c.MetaAccessToken == "" {
		return "", fmt.Errorf("company %s has no access token", c.ID)
	}
	token, err := uc.encrypter.Decrypt(c.MetaAccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "internal.digest.usecase.decryptToken.Decrypt: %v", err)
		return "", err
	}
	return token, nil
}

// spendForDay sums account-level spend for one local business day.
func (uc *usecase) spendForDay(ctx context.Context, token, actID, day string) (float64, error) {
	insights, err := uc.meta.DailyInsights(ctx, token, actID, day, day)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, in := range insights {
		total += in.Spend
	}
	return total, nil
}

// resolveAdAccountID picks the ad account to read spend from: the explicit
// settings override, then the most recent DB attachment, then the first
// account visible to the token.
func (uc *usecase) resolveAdAccountID(ctx context.Context, c model.Company, token string) (string, error) {
	if c.MetaAdAccountID != "" {
		return c.MetaAdAccountID, nil
	}

	attachment, err := uc.companyRepo.LatestAdAccount(ctx, c.ID, model.ProviderMeta)
	if err == nil {
		return attachment.ExternalID, nil
	}

	accounts, err := uc.meta.ListAdAccounts(ctx, token)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", fmt.Errorf("no ad accounts visible to token")
	}
	return accounts[0].ID, nil
}

// archiveSnapshot stores the raw feed payload when object storage is
// configured. Archive failures are logged and otherwise ignored.
func (uc *usecase) archiveSnapshot(ctx context.Context, c model.Company, day string, raw []byte) {
	if uc.storage == nil || uc.feedBucket == "" || len(raw) == 0 {
		return
	}
	object := fmt.Sprintf("%s/%s.csv", c.ID, day)
	if _, err := uc.storage.Upload(ctx, uc.feedBucket, object, bytes.NewReader(raw), int64(len(raw)), "text/csv"); err != nil {
		uc.l.Warnf(ctx, "internal.digest.usecase.archiveSnapshot.Upload: %v", err)
	}
}
