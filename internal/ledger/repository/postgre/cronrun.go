package postgres

import (
	"context"
	"database/sql"
	"time"

	"shield-srv/internal/ledger/repository"
	"shield-srv/internal/model"
	postgresPkg "shield-srv/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/strmangle"
)

const cronRunColumns = `id, company_id, run_date, source, ok, posted, spend, cap, error_detail, created_at, updated_at`

func (r *implRepository) Find(ctx context.Context, companyID string, runDate time.Time, source string) (model.CronRun, error) {
	if err := postgresPkg.IsUUID(companyID); err != nil {
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.Find.IsUUID: %v", err)
		return model.CronRun{}, err
	}

	var row cronRunRow
	err := queries.Raw(
		`SELECT `+cronRunColumns+` FROM cron_runs WHERE company_id = $1 AND run_date = $2 AND source = $3`,
		companyID, runDate, source,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.CronRun{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.Find.Bind: %v", err)
		return model.CronRun{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) UpsertPending(ctx context.Context, opts repository.UpsertPendingOptions) (model.CronRun, error) {
	if err := postgresPkg.IsUUID(opts.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.UpsertPending.IsUUID: %v", err)
		return model.CronRun{}, err
	}

	now := r.clock()
	var row cronRunRow
	err := queries.Raw(
		`INSERT INTO cron_runs (id, company_id, run_date, source, ok, posted, spend, cap, error_detail, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, FALSE, $5, $6, NULL, $7, $7)
		ON CONFLICT (company_id, run_date, source)
		DO UPDATE SET ok = TRUE, posted = FALSE, spend = EXCLUDED.spend, cap = EXCLUDED.cap, error_detail = NULL, updated_at = EXCLUDED.updated_at
		RETURNING `+cronRunColumns,
		postgresPkg.NewUUID(), opts.CompanyID, opts.RunDate, opts.Source, opts.Spend, opts.Cap, now,
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.UpsertPending.Bind: %v", err)
		return model.CronRun{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) MarkOutcome(ctx context.Context, opts repository.MarkOutcomeOptions) error {
	if err := postgresPkg.IsUUID(opts.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.MarkOutcome.IsUUID: %v", err)
		return err
	}

	errDetail := null.NewString(opts.ErrorDetail, opts.ErrorDetail != "")
	result, err := r.db.ExecContext(ctx,
		`UPDATE cron_runs SET posted = $1, ok = $2, error_detail = $3, updated_at = $4
		WHERE company_id = $5 AND run_date = $6 AND source = $7`,
		opts.Posted, opts.OK, errDetail, r.clock(), opts.CompanyID, opts.RunDate, opts.Source,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.MarkOutcome.Exec: %v", err)
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.MarkOutcome.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) ListWindow(ctx context.Context, opts repository.WindowOptions) ([]model.CronRun, error) {
	if err := postgresPkg.IsUUID(opts.CompanyID); err != nil {
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.ListWindow.IsUUID: %v", err)
		return nil, err
	}

	query := `SELECT ` + cronRunColumns + ` FROM cron_runs
		WHERE company_id = $1 AND run_date >= $2 AND run_date <= $3`
	args := []interface{}{opts.CompanyID, opts.From, opts.To}
	if len(opts.Sources) > 0 {
		query += ` AND source IN (` + strmangle.Placeholders(true, len(opts.Sources), 4, 1) + `)`
		for _, s := range opts.Sources {
			args = append(args, s)
		}
	}
	query += ` ORDER BY run_date ASC`

	var rows []cronRunRow
	err := queries.Raw(query, args...).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.ledger.repository.postgres.ListWindow.Bind: %v", err)
		return nil, err
	}

	runs := make([]model.CronRun, len(rows))
	for i, row := range rows {
		runs[i] = row.toModel()
	}
	return runs, nil
}
