package digest

// RunInput selects the invocation mode.
type RunInput struct {
	// Dry computes and reports what would happen without dispatching or
	// finalizing ledger state.
	Dry bool
	// Force bypasses the digest-hour gate.
	Force bool
}

// Skip reasons reported in RunSummary.Skipped.
const (
	SkipSeverity       = "severity"
	SkipQuietHours     = "quietHours"
	SkipNoWebhook      = "noWebhook"
	SkipNotDue         = "notDue"
	SkipAlreadyPosted  = "alreadyPosted"
	SkipFetchFailed    = "fetchFailed"
	SkipDispatchFailed = "dispatchFailed"
	SkipNoItems        = "noItems"
	SkipNoAccount      = "noAccount"
	SkipUnderCap       = "underCap"
	SkipNoData         = "noData"
)

// RunSummary is the structured result of one orchestration run. Scanned
// counts candidates examined, Sent counts messages dispatched (or that
// would be dispatched under dry run), Skipped breaks down everything else.
type RunSummary struct {
	Scanned int            `json:"scanned"`
	Sent    int            `json:"sent"`
	Skipped map[string]int `json:"skipped"`
}

// NewRunSummary returns an empty summary with an initialized skip map.
func NewRunSummary() RunSummary {
	return RunSummary{Skipped: map[string]int{}}
}

// Skip records n candidates skipped for the given reason.
func (s *RunSummary) Skip(reason string, n int) {
	if n <= 0 {
		return
	}
	s.Skipped[reason] += n
}
