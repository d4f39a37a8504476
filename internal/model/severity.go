package model

import "strings"

// Severity is the canonical urgency classification for notifications.
type Severity string

const (
	SeverityOK   Severity = "OK"
	SeverityWarn Severity = "WARN"
	SeverityCrit Severity = "CRIT"
)

var severityRank = map[Severity]int{
	SeverityOK:   0,
	SeverityWarn: 1,
	SeverityCrit: 2,
}

// Rank returns the position of s in the severity order. Unknown severities
// rank lowest.
func (s Severity) Rank() int {
	return severityRank[s]
}

// CompareSeverity returns a negative, zero, or positive value as a is less
// than, equal to, or greater than b in the OK < WARN < CRIT order.
func CompareSeverity(a, b Severity) int {
	return a.Rank() - b.Rank()
}

// ParseSeverity maps an external severity string onto the canonical
// vocabulary. Legacy feed values (good, info) map to OK; anything
// unrecognized coerces to OK so one bad row never blocks a batch.
func ParseSeverity(raw string) Severity {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CRIT", "CRITICAL":
		return SeverityCrit
	case "WARN", "WARNING":
		return SeverityWarn
	case "OK", "GOOD", "INFO":
		return SeverityOK
	default:
		return SeverityOK
	}
}
