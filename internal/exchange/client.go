package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// RateEntry is one currency's buy/sell quote for a date.
type RateEntry struct {
	Currency string  `json:"currency"`
	BuyRate  float64 `json:"purchaseRateNB"`
	SellRate float64 `json:"saleRateNB"`
}

// RateTable is the upstream's full listing for one date; may be empty.
type RateTable []RateEntry

type ratesResponse struct {
	ExchangeRate RateTable `json:"exchangeRate"`
}

// Client queries the PrivatBank historical exchange rate API.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zerolog.Logger
}

// NewClient builds a rate client against baseURL with a bounded per-request
// timeout. No retries: a failed attempt surfaces immediately.
func NewClient(baseURL string, timeout time.Duration, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// Fetch retrieves the rate table for an already-validated DD.MM.YYYY date.
// Transport errors and non-200 statuses both collapse to ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context, date string) (RateTable, error) {
	reqURL := fmt.Sprintf("%s/p24api/exchange_rates?date=%s", c.baseURL, url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", reqURL).Msg("rates request failed")
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Str("date", date).Msg("rates request rejected")
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrFetchFailed, err)
	}
	return body.ExchangeRate, nil
}
