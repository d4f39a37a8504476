package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shield-srv/internal/model"
)

func TestSpendBlocks_CapStates(t *testing.T) {
	c := model.Company{Name: "Acme", Currency: "USD", DailyCapAmount: 100}

	tests := []struct {
		name  string
		spend float64
		want  string
	}{
		{name: "within budget", spend: 10, want: "within budget"},
		{name: "approaching cap at 80 percent", spend: 80, want: "approaching cap"},
		{name: "over budget", spend: 100.01, want: "over budget"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := spendBlocks(c, "2026-08-29", tc.spend)
			last := msg.Blocks[len(msg.Blocks)-1]
			assert.Contains(t, last.Text.Text, tc.want)
		})
	}
}

func TestSpendBlocks_NoCapOmitsCapFields(t *testing.T) {
	c := model.Company{Name: "Acme", Currency: "USD"}
	msg := spendBlocks(c, "2026-08-29", 10)
	assert.Len(t, msg.Blocks[1].Fields, 1)
}

func TestAlertBlocks_BrandTag(t *testing.T) {
	msg := alertBlocks("Alerts", []model.AlertItem{
		{ID: "1", Text: "cpc spike", Severity: model.SeverityWarn, Brand: "shoes"},
	})
	assert.Contains(t, msg.Blocks[1].Text.Text, "cpc spike")
	assert.Contains(t, msg.Blocks[1].Text.Text, "shoes")
	assert.Contains(t, msg.Text, "1 item(s)")
}
