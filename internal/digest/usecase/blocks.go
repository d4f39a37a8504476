package usecase

import (
	"fmt"
	"strings"

	"shield-srv/internal/model"
	"shield-srv/pkg/money"
	"shield-srv/pkg/slack"
)

func severityEmoji(s model.Severity) string {
	switch s {
	case model.SeverityCrit:
		return ":rotating_light:"
	case model.SeverityWarn:
		return ":warning:"
	default:
		return ":white_check_mark:"
	}
}

// alertBlocks renders a batch of alert items as one Slack message.
func alertBlocks(title string, items []model.AlertItem) slack.Message {
	blocks := []slack.Block{slack.HeaderBlock(title)}
	for _, item := range items {
		line := fmt.Sprintf("%s *%s* %s", severityEmoji(item.Severity), item.Severity, item.Text)
		if item.Brand != "" {
			line += fmt.Sprintf(" _(%s)_", item.Brand)
		}
		blocks = append(blocks, slack.SectionBlock(line))
	}
	blocks = append(blocks, slack.ContextBlock(fmt.Sprintf("%d item(s)", len(items))))

	return slack.Message{
		Text:   fmt.Sprintf("%s: %d item(s)", title, len(items)),
		Blocks: blocks,
	}
}

// digestEmailHTML renders the daily digest for the email fan-out.
func digestEmailHTML(companyName string, items []model.AlertItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Daily digest for %s</h2><ul>", companyName)
	for _, item := range items {
		fmt.Fprintf(&b, "<li><b>%s</b> %s</li>", item.Severity, item.Text)
	}
	b.WriteString("</ul>")
	return b.String()
}

// spendBlocks renders the daily spend digest against the cap.
func spendBlocks(c model.Company, day string, spend float64) slack.Message {
	state := ":white_check_mark: within budget"
	if c.DailyCapAmount > 0 {
		switch {
		case spend > c.DailyCapAmount:
			state = ":rotating_light: over budget"
		case spend >= 0.8*c.DailyCapAmount:
			state = ":warning: approaching cap"
		}
	}

	fields := []string{
		fmt.Sprintf("*Spend*\n%s", money.Format(spend, c.Currency)),
	}
	if c.DailyCapAmount > 0 {
		fields = append(fields,
			fmt.Sprintf("*Daily cap*\n%s", money.Format(c.DailyCapAmount, c.Currency)),
			fmt.Sprintf("*Used*\n%s", money.Percent(spend, c.DailyCapAmount)),
		)
	}

	return slack.Message{
		Text: fmt.Sprintf("Spend digest %s: %s", day, money.Format(spend, c.Currency)),
		Blocks: []slack.Block{
			slack.HeaderBlock(fmt.Sprintf("Spend digest - %s", day)),
			slack.FieldsBlock(fields...),
			slack.SectionBlock(state),
		},
	}
}

// overBudgetBlocks renders the guardrail alert.
func overBudgetBlocks(c model.Company, day string, spend float64) slack.Message {
	return slack.Message{
		Text: fmt.Sprintf("Budget alert %s: spend %s exceeds cap %s",
			day, money.Format(spend, c.Currency), money.Format(c.DailyCapAmount, c.Currency)),
		Blocks: []slack.Block{
			slack.HeaderBlock(":rotating_light: Budget guardrail"),
			slack.FieldsBlock(
				fmt.Sprintf("*Date*\n%s", day),
				fmt.Sprintf("*Spend*\n%s", money.Format(spend, c.Currency)),
				fmt.Sprintf("*Daily cap*\n%s", money.Format(c.DailyCapAmount, c.Currency)),
				fmt.Sprintf("*Used*\n%s", money.Percent(spend, c.DailyCapAmount)),
			),
		},
	}
}

// weeklyStats aggregates one week of ledger rows.
type weeklyStats struct {
	totalSpend float64
	safeDays   int
	capHits    int
	capRisks   int
	failures   int
}

func aggregateWeek(rows []model.CronRun) weeklyStats {
	var st weeklyStats
	for _, row := range rows {
		if !row.OK {
			st.failures++
			continue
		}
		st.totalSpend += row.Spend
		switch {
		case row.Cap > 0 && row.Spend >= row.Cap:
			st.capHits++
		case row.Cap > 0 && row.Spend >= 0.8*row.Cap:
			st.capRisks++
		default:
			st.safeDays++
		}
	}
	return st
}

// weeklyBlocks renders the weekly receipt.
func weeklyBlocks(c model.Company, from, to string, st weeklyStats) slack.Message {
	return slack.Message{
		Text: fmt.Sprintf("Weekly receipt %s to %s: %s spent", from, to, money.Format(st.totalSpend, c.Currency)),
		Blocks: []slack.Block{
			slack.HeaderBlock(fmt.Sprintf("Weekly receipt - %s to %s", from, to)),
			slack.FieldsBlock(
				fmt.Sprintf("*Total spend*\n%s", money.Format(st.totalSpend, c.Currency)),
				fmt.Sprintf("*Safe days*\n%d", st.safeDays),
				fmt.Sprintf("*Cap hits*\n%d", st.capHits),
				fmt.Sprintf("*Cap risks*\n%d", st.capRisks),
				fmt.Sprintf("*Failures*\n%d", st.failures),
			),
			slack.ContextBlock(fmt.Sprintf("Company: %s", c.Name)),
		},
	}
}
