package converter

import "context"

type (
	// RateSource fetches the full rate table for the base currency.
	// A second Fetch replaces the previous table, it never merges.
	RateSource interface {
		Fetch(ctx context.Context, base string, symbols ...string) (RateTable, error)
	}

	RateGetter interface {
		GetRate(ctx context.Context, code string) (float64, error)
	}

	Converter interface {
		Convert(ctx context.Context, amount float64, from, to string) (Record, error)
	}
)
