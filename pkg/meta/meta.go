package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/friendsofgo/errors"
)

// ListAdAccounts implements IClient.
func (c *client) ListAdAccounts(ctx context.Context, accessToken string) ([]AdAccount, error) {
	q := url.Values{}
	q.Set("fields", "id,account_id,name")
	q.Set("limit", "100")

	body, err := c.get(ctx, accessToken, "/me/adaccounts", q)
	if err != nil {
		return nil, err
	}

	var resp adAccountsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "meta: decode adaccounts")
	}
	return resp.Data, nil
}

// DailyInsights implements IClient.
func (c *client) DailyInsights(ctx context.Context, accessToken, actID, since, until string) ([]Insight, error) {
	if !strings.HasPrefix(actID, "act_") {
		actID = "act_" + actID
	}

	q := url.Values{}
	q.Set("level", "account")
	q.Set("fields", "spend,impressions,clicks")
	q.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`, since, until))
	q.Set("time_increment", "1")

	body, err := c.get(ctx, accessToken, "/"+actID+"/insights", q)
	if err != nil {
		return nil, err
	}

	var resp insightsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "meta: decode insights")
	}

	insights := make([]Insight, 0, len(resp.Data))
	for _, row := range resp.Data {
		spend, _ := strconv.ParseFloat(row.Spend, 64)
		impressions, _ := strconv.ParseInt(row.Impressions, 10, 64)
		clicks, _ := strconv.ParseInt(row.Clicks, 10, 64)
		insights = append(insights, Insight{
			Spend:       spend,
			Impressions: impressions,
			Clicks:      clicks,
			DateStart:   row.DateStart,
			DateStop:    row.DateStop,
		})
	}
	return insights, nil
}

func (c *client) get(ctx context.Context, accessToken, path string, q url.Values) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/%s%s?%s", c.cfg.BaseURL, c.cfg.Version, path, q.Encode())

	var body []byte
	err := withRetries(ctx, c.cfg.Retries, func() (bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return false, errors.Wrap(err, "meta: build request")
		}
		req.Header.Set("Authorization", "Bearer "+accessToken)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// network failures are worth retrying
			return true, errors.Wrap(err, "meta: send request")
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return true, errors.Wrap(err, "meta: read response")
		}

		if resp.StatusCode == http.StatusOK {
			body = respBody
			return false, nil
		}

		var gerr graphError
		msg := string(respBody)
		if err := json.Unmarshal(respBody, &gerr); err == nil && gerr.Error.Message != "" {
			msg = gerr.Error.Message
		}
		return retryableStatus(resp.StatusCode), fmt.Errorf("meta %d: %s", resp.StatusCode, msg)
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
