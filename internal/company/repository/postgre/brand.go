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

const brandColumns = `id, company_id, name, currency, webhook_url, created_at, updated_at`

func (r *implRepository) CreateBrand(ctx context.Context, opts repository.CreateBrandOptions) (model.Brand, error) {
	b := opts.Brand
	if b.ID == "" {
		b.ID = postgresPkg.NewUUID()
	}
	if err := postgresPkg.IsUUID(b.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.CreateBrand.IsUUID: %v", err)
		return model.Brand{}, err
	}

	now := r.clock()
	var row brandRow
	err := queries.Raw(
		`INSERT INTO brands (id, company_id, name, currency, webhook_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+brandColumns,
		b.ID, b.CompanyID, b.Name, b.Currency,
		null.NewString(b.WebhookURL, b.WebhookURL != ""), now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if postgresPkg.IsUniqueViolation(err) {
			return model.Brand{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.company.repository.postgres.CreateBrand.Bind: %v", err)
		return model.Brand{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) ListBrands(ctx context.Context, companyID string) ([]model.Brand, error) {
	if err := postgresPkg.IsUUID(companyID); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.ListBrands.IsUUID: %v", err)
		return nil, err
	}

	var rows []brandRow
	err := queries.Raw(
		`SELECT `+brandColumns+` FROM brands WHERE company_id = $1 ORDER BY created_at ASC`,
		companyID,
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.ListBrands.Bind: %v", err)
		return nil, err
	}

	brands := make([]model.Brand, len(rows))
	for i, row := range rows {
		brands[i] = row.toModel()
	}
	return brands, nil
}

func (r *implRepository) GetBrandByName(ctx context.Context, companyID, name string) (model.Brand, error) {
	if err := postgresPkg.IsUUID(companyID); err != nil {
		r.l.Errorf(ctx, "internal.company.repository.postgres.GetBrandByName.IsUUID: %v", err)
		return model.Brand{}, err
	}

	var row brandRow
	err := queries.Raw(
		`SELECT `+brandColumns+` FROM brands WHERE company_id = $1 AND name = $2`,
		companyID, name,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Brand{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.company.repository.postgres.GetBrandByName.Bind: %v", err)
		return model.Brand{}, err
	}

	return row.toModel(), nil
}
