package email

import "net/http"

// Email is a single transactional message.
type Email struct {
	To      []string
	Subject string
	HTML    string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type client struct {
	cfg        Config
	httpClient *http.Client
}
