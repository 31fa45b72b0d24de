package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	converter "github.com/smartconv/converter"
)

type (
	ExchangeRateHostFetcher struct {
		URL    string
		Client *http.Client
	}

	latestRatesResponse struct {
		Base  string             `json:"base,omitempty"`
		Rates map[string]float64 `json:"rates,omitempty"`
		Date  string             `json:"date,omitempty"`
	}
)

// Fetch performs a single GET against <url>?base=X[&symbols=A,B] and
// parses the rates object. No retry, the caller decides what to do
// with a failed attempt.
func (e ExchangeRateHostFetcher) Fetch(ctx context.Context, base string, symbols ...string) (converter.RateTable, error) {
	url := e.URL

	if url == "" {
		url = ExchangeRateHostURL
	}

	client := e.Client

	if client == nil {
		client = &http.Client{}
	}

	req, err := newRatesRequest(ctx, url, base, symbols)

	if err != nil {
		return nil, err
	}

	res, err := client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", converter.ErrRateUnavailable, err)
	}

	defer res.Body.Close()

	if err := statusCodeError(res); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", converter.ErrRateUnavailable, err)
	}

	var data latestRatesResponse

	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", converter.ErrMalformedRates, err)
	}

	if len(data.Rates) == 0 {
		return nil, fmt.Errorf("%w: no rates in response", converter.ErrMalformedRates)
	}

	table := make(converter.RateTable, len(data.Rates))

	for code, rate := range data.Rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("%w: invalid rate %f for %s", converter.ErrMalformedRates, rate, code)
		}

		table[strings.ToUpper(code)] = rate
	}

	return table, nil
}
