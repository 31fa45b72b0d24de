package fetchers

import (
	"context"
	"fmt"
	"math"
	"strings"

	converter "github.com/smartconv/converter"
)

// StaticFetcher serves a fixed table, used for offline runs and tests.
type StaticFetcher struct {
	Rates converter.RateTable
}

func (s StaticFetcher) Fetch(_ context.Context, _ string, symbols ...string) (converter.RateTable, error) {
	if len(s.Rates) == 0 {
		return nil, fmt.Errorf("%w: static table is empty", converter.ErrMalformedRates)
	}

	table := make(converter.RateTable, len(s.Rates))

	for code, rate := range s.Rates {
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("%w: invalid rate %f for %s", converter.ErrMalformedRates, rate, code)
		}

		table[strings.ToUpper(code)] = rate
	}

	if len(symbols) == 0 {
		return table, nil
	}

	filtered := make(converter.RateTable, len(symbols))

	for _, symbol := range symbols {
		code := strings.ToUpper(symbol)
		rate, ok := table[code]

		if !ok {
			return nil, fmt.Errorf("%w: %s", converter.ErrUnknownCurrency, code)
		}

		filtered[code] = rate
	}

	return filtered, nil
}
