package converter

import "time"

type (
	// RateTable maps an uppercase ISO currency code to its rate
	// against the base currency. Replaced wholesale on every refresh.
	RateTable map[string]float64

	Record struct {
		Amount    float64
		From      string
		To        string
		Result    float64
		CreatedAt time.Time
	}

	RecordWithID struct {
		Record
		ID interface{}
	}

	ConversionRequest struct {
		Amount float64 `validate:"required,gt=0"`
		From   string  `validate:"required,len=3,alpha"`
		To     string  `validate:"required,len=3,alpha"`
	}
)
