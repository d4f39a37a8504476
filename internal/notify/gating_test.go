package notify

import (
	"testing"

	"shield-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFilterMinSeverity(t *testing.T) {
	items := []model.AlertItem{
		{ID: "1", Severity: model.SeverityOK},
		{ID: "2", Severity: model.SeverityWarn},
		{ID: "3", Severity: model.SeverityCrit},
	}

	kept := FilterMinSeverity(items, model.SeverityWarn)
	assert.Len(t, kept, 2)
	assert.Equal(t, "2", kept[0].ID)
	assert.Equal(t, "3", kept[1].ID)

	assert.Len(t, FilterMinSeverity(items, model.SeverityOK), 3)
	assert.Len(t, FilterMinSeverity(items, model.SeverityCrit), 1)
	assert.Empty(t, FilterMinSeverity(nil, model.SeverityOK))
}

func TestHasCrit(t *testing.T) {
	assert.True(t, HasCrit([]model.AlertItem{
		{Severity: model.SeverityOK},
		{Severity: model.SeverityCrit},
	}))
	assert.False(t, HasCrit([]model.AlertItem{
		{Severity: model.SeverityOK},
		{Severity: model.SeverityWarn},
	}))
	assert.False(t, HasCrit(nil))
}
