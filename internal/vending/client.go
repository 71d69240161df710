package vending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"refstats/internal/referral"
	"strings"
	"time"
)

const handoverPath = "/vending/handover"

var ErrRequestFailed error = errors.New("API request failed")

// DefaultHTTPClient bounds every request by timeout.
func DefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Client fetches referral transactions from the vending backend.
type Client struct {
	baseURL string
	http    HTTPDoer
}

func NewClient(baseURL string, httpClient HTTPDoer) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchTransactions returns every transaction recorded for code.
// An empty slice means the code has no transactions and is not an error.
func (c *Client) FetchTransactions(ctx context.Context, code string) ([]referral.Transaction, error) {
	endpoint := c.baseURL + handoverPath + "?" + url.Values{"code": {code}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrRequestFailed, resp.StatusCode)
	}

	var transactions []referral.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	if transactions == nil {
		transactions = []referral.Transaction{}
	}

	return transactions, nil
}
