package repository

import (
	"context"
	"errors"
	"time"

	"shield-srv/internal/model"
)

// ErrNotFound is returned when no ledger entry exists for the key.
var ErrNotFound = errors.New("not found")

// Repository persists run ledger entries. One row per
// (company_id, run_date, source).
//
// The posted short-circuit is read-then-write, not an atomic conditional
// update. Two near-simultaneous invocations for the same bucket could both
// dispatch; the scheduler is expected to invoke at most once per bucket.
type Repository interface {
	// Find returns the entry for the key, or ErrNotFound.
	Find(ctx context.Context, companyID string, runDate time.Time, source string) (model.CronRun, error)
	// UpsertPending writes the pending state (ok, not posted) with the
	// latest metric snapshot, before dispatch is attempted.
	UpsertPending(ctx context.Context, opts UpsertPendingOptions) (model.CronRun, error)
	// MarkOutcome records the dispatch outcome for the key.
	MarkOutcome(ctx context.Context, opts MarkOutcomeOptions) error
	// ListWindow returns entries for a company within [From, To],
	// optionally filtered by source, ordered by run date.
	ListWindow(ctx context.Context, opts WindowOptions) ([]model.CronRun, error)
}
