package model

import "time"

// Run ledger sources. One ledger row exists per (company, business day, source).
const (
	SourceDigest = "digest"
	SourceSpend  = "meta-graph"
	SourceWeekly = "weekly"
	SourceAlerts = "alerts"
)

// CronRun is one run ledger entry. State machine per key:
// absent -> pending (ok, not posted) -> posted | failed.
type CronRun struct {
	ID        string
	CompanyID string
	RunDate   time.Time // local business day pinned to UTC midnight
	Source    string

	OK     bool
	Posted bool

	Spend       float64
	Cap         float64
	ErrorDetail string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPosted reports whether the bucket reached its terminal posted state.
func (r CronRun) IsPosted() bool {
	return r.Posted
}
