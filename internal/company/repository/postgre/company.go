package postgres

import (
	"context"
	"database/sql"
	"strings"

	"shield-srv/internal/company/repository"
	"shield-srv/internal/model"
	"shield-srv/pkg/paginator"
	postgresPkg "shield-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const companyColumns = `id, name, timezone, currency, min_severity, quiet_start, quiet_end, digest_hour_local,
	slack_webhook_url, summary_webhook_url, brand_webhooks, feed_url, daily_cap_amount,
	meta_access_token, meta_ad_account_id, created_at, updated_at`

func (r *implRepository) Detail(ctx context.Context, id string) (model.Company, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.Detail.IsUUID: %v", err)
		return model.Company{}, err
	}

	var row companyRow
	err := queries.Raw(
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`,
		id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Company{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.company.repository.postgres.Detail.Bind: %v", err)
		return model.Company{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Company, error) {
	var conds []string
	if opts.Filter.HasFeedURL {
		conds = append(conds, `feed_url IS NOT NULL AND feed_url <> ''`)
	}
	if opts.Filter.HasMetaToken {
		conds = append(conds, `meta_access_token IS NOT NULL AND meta_access_token <> ''`)
	}
	if opts.Filter.HasDailyCap {
		conds = append(conds, `daily_cap_amount IS NOT NULL AND daily_cap_amount > 0`)
	}

	query := `SELECT ` + companyColumns + ` FROM companies`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY created_at ASC`

	var rows []companyRow
	if err := queries.Raw(query).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.List.Bind: %v", err)
		return nil, err
	}

	companies := make([]model.Company, len(rows))
	for i, row := range rows {
		companies[i] = row.toModel()
	}
	return companies, nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Company, paginator.Paginator, error) {
	pq := opts.PaginateQuery
	pq.Adjust()

	var total struct {
		Count int64 `boil:"count"`
	}
	if err := queries.Raw(`SELECT COUNT(*) AS count FROM companies`).Bind(ctx, r.db, &total); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var rows []companyRow
	err := queries.Raw(
		`SELECT `+companyColumns+` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		pq.Limit, pq.Offset(),
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	companies := make([]model.Company, len(rows))
	for i, row := range rows {
		companies[i] = row.toModel()
	}

	return companies, paginator.Paginator{
		Total:       total.Count,
		Count:       int64(len(companies)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Company, error) {
	c := opts.Company
	if c.ID == "" {
		c.ID = postgresPkg.NewUUID()
	} else if err := postgresPkg.IsUUID(c.ID); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.Create.IsUUID: %v", err)
		return model.Company{}, err
	}

	now := r.clock()
	var row companyRow
	err := queries.Raw(
		`INSERT INTO companies (id, name, timezone, currency, min_severity, quiet_start, quiet_end, digest_hour_local,
			slack_webhook_url, summary_webhook_url, brand_webhooks, feed_url, daily_cap_amount,
			meta_access_token, meta_ad_account_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		RETURNING `+companyColumns,
		c.ID, c.Name, c.Timezone, c.Currency, string(c.MinSeverity),
		null.NewString(c.QuietStart, c.QuietStart != ""), null.NewString(c.QuietEnd, c.QuietEnd != ""),
		c.DigestHourLocal,
		null.NewString(c.SlackWebhookURL, c.SlackWebhookURL != ""),
		null.NewString(c.SummaryWebhookURL, c.SummaryWebhookURL != ""),
		brandWebhooksJSON(c.BrandWebhooks),
		null.NewString(c.FeedURL, c.FeedURL != ""),
		null.NewFloat64(c.DailyCapAmount, c.DailyCapAmount > 0),
		null.NewString(c.MetaAccessToken, c.MetaAccessToken != ""),
		null.NewString(c.MetaAdAccountID, c.MetaAdAccountID != ""),
		now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.Company{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.company.repository.postgres.Create.Bind: %v", err)
		return model.Company{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Company, error) {
	c := opts.Company
	if err := postgresPkg.IsUUID(c.ID); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.Update.IsUUID: %v", err)
		return model.Company{}, err
	}

	var row companyRow
	err := queries.Raw(
		`UPDATE companies SET name = $2, timezone = $3, currency = $4, min_severity = $5, quiet_start = $6,
			quiet_end = $7, digest_hour_local = $8, slack_webhook_url = $9, summary_webhook_url = $10,
			brand_webhooks = $11, feed_url = $12, daily_cap_amount = $13, meta_access_token = $14,
			meta_ad_account_id = $15, updated_at = $16
		WHERE id = $1
		RETURNING `+companyColumns,
		c.ID, c.Name, c.Timezone, c.Currency, string(c.MinSeverity),
		null.NewString(c.QuietStart, c.QuietStart != ""), null.NewString(c.QuietEnd, c.QuietEnd != ""),
		c.DigestHourLocal,
		null.NewString(c.SlackWebhookURL, c.SlackWebhookURL != ""),
		null.NewString(c.SummaryWebhookURL, c.SummaryWebhookURL != ""),
		brandWebhooksJSON(c.BrandWebhooks),
		null.NewString(c.FeedURL, c.FeedURL != ""),
		null.NewFloat64(c.DailyCapAmount, c.DailyCapAmount > 0),
		null.NewString(c.MetaAccessToken, c.MetaAccessToken != ""),
		null.NewString(c.MetaAdAccountID, c.MetaAdAccountID != ""),
		r.clock(),
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Company{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.company.repository.postgres.Update.Bind: %v", err)
		return model.Company{}, err
	}

	return row.toModel(), nil
}
