package meta

import "net/http"

// AdAccount is a Meta ad account.
type AdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

// Insight is one day of account-level delivery data.
type Insight struct {
	Spend       float64
	Impressions int64
	Clicks      int64
	DateStart   string
	DateStop    string
}

type adAccountsResponse struct {
	Data []AdAccount `json:"data"`
}

// Graph returns numeric insight fields as strings.
type insightRow struct {
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}

type insightsResponse struct {
	Data []insightRow `json:"data"`
}

type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

type client struct {
	cfg        Config
	httpClient *http.Client
}
