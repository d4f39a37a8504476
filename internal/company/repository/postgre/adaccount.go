package postgres

import (
	"context"
	"database/sql"

	"shield-srv/internal/company/repository"
	"shield-srv/internal/model"
	postgresPkg "shield-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const adAccountColumns = `id, brand_id, provider, external_id, meta, created_at, updated_at`

func (r *implRepository) CreateAdAccount(ctx context.Context, opts repository.CreateAdAccountOptions) (model.AdAccount, error) {
	a := opts.AdAccount
	if a.ID == "" {
		a.ID = postgresPkg.NewUUID()
	}
	if err := postgresPkg.IsUUID(a.BrandID); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.CreateAdAccount.IsUUID: %v", err)
		return model.AdAccount{}, err
	}

	now := r.clock()
	var row adAccountRow
	err := queries.Raw(
		`INSERT INTO ad_accounts (id, brand_id, provider, external_id, meta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+adAccountColumns,
		a.ID, a.BrandID, a.Provider, a.ExternalID,
		null.NewString(a.Meta, a.Meta != ""), now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.AdAccount{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.company.repository.postgres.CreateAdAccount.Bind: %v", err)
		return model.AdAccount{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) LatestAdAccount(ctx context.Context, companyID, provider string) (model.AdAccount, error) {
	if err := postgresPkg.IsUUID(companyID); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.LatestAdAccount.IsUUID: %v", err)
		return model.AdAccount{}, err
	}

	var row adAccountRow
	err := queries.Raw(
		`SELECT a.id, a.brand_id, a.provider, a.external_id, a.meta, a.created_at, a.updated_at
		FROM ad_accounts a
		JOIN brands b ON b.id = a.brand_id
		WHERE b.company_id = $1 AND a.provider = $2
		ORDER BY a.updated_at DESC
		LIMIT 1`,
		companyID, provider,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.AdAccount{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.company.repository.postgres.LatestAdAccount.Bind: %v", err)
		return model.AdAccount{}, err
	}

	return row.toModel(), nil
}
