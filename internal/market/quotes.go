package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type quoteResponse struct {
	QuoteResponse struct {
		Result []map[string]interface{} `json:"result"`
		Error  interface{}              `json:"error"`
	} `json:"quoteResponse"`
}

// Quote is the latest traded price for a symbol.
type Quote struct {
	Symbol string
	Price  float64
}

// FetchQuotes requests current prices for the given symbols in one call.
// Symbols the endpoint does not know, or reports without a price, are left
// out of the result rather than failing the batch.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) ([]Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	reqURL := fmt.Sprintf("%s?symbols=%s", c.quoteURL, url.QueryEscape(strings.Join(symbols, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var qr quoteResponse
	if err := json.Unmarshal(body, &qr); err != nil {
		return nil, fmt.Errorf("parse quote response: %w", err)
	}

	var result []Quote
	for _, row := range qr.QuoteResponse.Result {
		symbol, _ := row["symbol"].(string)
		if symbol == "" {
			continue
		}

		price := toFloat64(row["regularMarketPrice"])
		if price == 0 {
			price = toFloat64(row["price"])
		}
		if price <= 0 {
			continue // halted or unknown instrument
		}

		result = append(result, Quote{Symbol: symbol, Price: price})
	}

	return result, nil
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
