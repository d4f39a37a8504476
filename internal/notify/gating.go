package notify

import "shield-srv/internal/model"

// FilterMinSeverity returns the items at or above the company threshold.
func FilterMinSeverity(items []model.AlertItem, min model.Severity) []model.AlertItem {
	var kept []model.AlertItem
	for _, item := range items {
		if model.CompareSeverity(item.Severity, min) >= 0 {
			kept = append(kept, item)
		}
	}
	return kept
}

// HasCrit reports whether any item is critical. Critical items bypass
// quiet-hours suppression; they must never be silently dropped by a
// schedule.
func HasCrit(items []model.AlertItem) bool {
	for _, item := range items {
		if item.Severity == model.SeverityCrit {
			return true
		}
	}
	return false
}
