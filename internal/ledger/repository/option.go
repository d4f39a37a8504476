package repository

import "time"

// UpsertPendingOptions carries the pending write for one bucket.
type UpsertPendingOptions struct {
	CompanyID string
	RunDate   time.Time
	Source    string
	Spend     float64
	Cap       float64
}

// MarkOutcomeOptions records the result of a dispatch attempt.
type MarkOutcomeOptions struct {
	CompanyID   string
	RunDate     time.Time
	Source      string
	Posted      bool
	OK          bool
	ErrorDetail string
}

// WindowOptions selects entries for aggregation. An empty Sources slice
// matches every source.
type WindowOptions struct {
	CompanyID string
	Sources   []string
	From      time.Time
	To        time.Time
}
