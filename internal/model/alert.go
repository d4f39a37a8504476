package model

// AlertItem is a transient feed entry. It is consumed once per notification
// cycle and never persisted.
type AlertItem struct {
	ID        string
	Text      string
	Severity  Severity
	Brand     string
	UpdatedAt string
}
