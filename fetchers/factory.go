package fetchers

import (
	"net/http"

	converter "github.com/smartconv/converter"
)

type (
	BaseConfig struct {
		URL    string
		Client *http.Client
	}
	ExchangeRateHostConfig struct {
		BaseConfig
	}
	StaticConfig struct {
		Rates converter.RateTable
	}
)

func NewRateSource(provider converter.SourceProvider, config interface{}) converter.RateSource {
	switch provider {
	case converter.ExchangeRateHostProvider:
		c := config.(ExchangeRateHostConfig)

		return ExchangeRateHostFetcher{
			URL:    c.URL,
			Client: c.Client,
		}
	case converter.StaticProvider:
		c := config.(StaticConfig)

		return StaticFetcher{
			Rates: c.Rates,
		}
	}

	return nil
}
