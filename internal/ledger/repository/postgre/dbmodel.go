package postgres

import (
	"time"

	"shield-srv/internal/model"

	"github.com/aarondl/null/v8"
)

// cronRunRow maps the cron_runs table. The schema is managed outside this
// service, so the row type is written by hand rather than generated.
type cronRunRow struct {
	ID          string      `boil:"id"`
	CompanyID   string      `boil:"company_id"`
	RunDate     time.Time   `boil:"run_date"`
	Source      string      `boil:"source"`
	OK          bool        `boil:"ok"`
	Posted      bool        `boil:"posted"`
	Spend       null.Float64 `boil:"spend"`
	Cap         null.Float64 `boil:"cap"`
	ErrorDetail null.String `boil:"error_detail"`
	CreatedAt   time.Time   `boil:"created_at"`
	UpdatedAt   time.Time   `boil:"updated_at"`
}

func (r cronRunRow) toModel() model.CronRun {
	run := model.CronRun{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		RunDate:   r.RunDate.UTC(),
		Source:    r.Source,
		OK:        r.OK,
		Posted:    r.Posted,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Spend.Valid {
		run.Spend = r.Spend.Float64
	}
	if r.Cap.Valid {
		run.Cap = r.Cap.Float64
	}
	if r.ErrorDetail.Valid {
		run.ErrorDetail = r.ErrorDetail.String
	}
	return run
}
