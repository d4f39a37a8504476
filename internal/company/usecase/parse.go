package usecase

import (
	"encoding/json"
	"strings"

	"shield-srv/internal/company"
)

// parseBrandWebhookMap accepts either a JSON object ({"brand": "url"}) or
// newline-separated "brand=url" lines. An empty input clears the map.
func parseBrandWebhookMap(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if strings.HasPrefix(raw, "{") {
		var m map[string]string
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, company.ErrInvalidBrandMap
		}
		return m, nil
	}

	m := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		brand, url, found := strings.Cut(line, "=")
		brand = strings.TrimSpace(brand)
		url = strings.TrimSpace(url)
		if !found || brand == "" || url == "" {
			return nil, company.ErrInvalidBrandMap
		}
		m[brand] = url
	}
	return m, nil
}
