package converter

import "errors"

var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrUnknownCurrency = errors.New("unknown currency code")
	ErrRateUnavailable = errors.New("exchange rate endpoint is unavailable")
	ErrMalformedRates  = errors.New("exchange rate response is malformed")
)
