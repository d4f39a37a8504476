package digest

import "context"

// UseCase runs the cron-triggered notification orchestrations. Every run
// walks eligible companies sequentially; per-company failures become skip
// counters and never abort the batch.
type UseCase interface {
	// RunAlertScan ingests each company's CSV alert feed and routes
	// surviving items per brand.
	RunAlertScan(ctx context.Context, ip RunInput) (RunSummary, error)
	// RunDailyDigest posts the daily alert digest to the summary endpoint
	// and fans it out to company users by email.
	RunDailyDigest(ctx context.Context, ip RunInput) (RunSummary, error)
	// RunSpendDigest posts yesterday-to-date ad spend against the daily cap.
	RunSpendDigest(ctx context.Context, ip RunInput) (RunSummary, error)
	// RunGuardrail posts an over-budget alert when today's spend exceeds
	// the daily cap.
	RunGuardrail(ctx context.Context, ip RunInput) (RunSummary, error)
	// RunWeeklyReceipt aggregates the last seven local days of ledger rows
	// into a receipt.
	RunWeeklyReceipt(ctx context.Context, ip RunInput) (RunSummary, error)
}
