package fetchers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	converter "github.com/smartconv/converter"
	"github.com/smartconv/converter/fetchers"
)

var rates = map[string]float64{"USD": 1, "INR": 83, "EUR": 0.9, "GBP": 0.78}

type ratesHandler struct{}

func (h ratesHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	base := request.URL.Query().Get("base")
	if base == "" {
		writer.WriteHeader(http.StatusBadRequest)
		return
	}

	data := rates

	if symbols := request.URL.Query().Get("symbols"); symbols != "" {
		data = make(map[string]float64)
		for _, symbol := range strings.Split(symbols, ",") {
			data[symbol] = rates[symbol]
		}
	}

	body, _ := json.Marshal(map[string]interface{}{
		"base":  base,
		"date":  "2024-06-01",
		"rates": data,
	})

	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(body)
}

func TestExchangeRateHostFetcher_Fetch(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(ratesHandler{})
	defer server.Close()

	t.Run("Retrieves full table from API", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := fetchers.ExchangeRateHostFetcher{URL: server.URL}

		table, err := fetcher.Fetch(context.Background(), "USD")

		asserts.Nilf(err, "Error while fetching rates: %v", err)
		asserts.Len(table, len(rates))
		for code, rate := range rates {
			asserts.Equal(rate, table[code])
		}
	})

	t.Run("Filters by symbols", func(t *testing.T) {
		asserts := require.New(t)
		fetcher := fetchers.ExchangeRateHostFetcher{URL: server.URL}

		table, err := fetcher.Fetch(context.Background(), "USD", "inr", "eur")

		asserts.Nil(err)
		asserts.Len(table, 2)
		asserts.Equal(83.0, table["INR"])
		asserts.Equal(0.9, table["EUR"])
	})
}

func TestExchangeRateHostFetcher_StatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{"Bad request", http.StatusBadRequest, fetchers.ErrClient},
		{"Not found", http.StatusNotFound, fetchers.ErrClient},
		{"Server error", http.StatusInternalServerError, fetchers.ErrServer},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			asserts := require.New(t)
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(test.status)
			}))
			defer server.Close()

			fetcher := fetchers.ExchangeRateHostFetcher{URL: server.URL}
			table, err := fetcher.Fetch(context.Background(), "USD")

			asserts.Nil(table)
			asserts.True(errors.Is(err, test.expected))
			asserts.True(errors.Is(err, converter.ErrRateUnavailable))
			asserts.Contains(err.Error(), strconv.Itoa(test.status))
		})
	}
}

func TestExchangeRateHostFetcher_MalformedBody(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"Not JSON":      "<html>oops</html>",
		"Missing rates": `{"base":"USD"}`,
		"Negative rate": `{"base":"USD","rates":{"INR":-83}}`,
		"Zero rate":     `{"base":"USD","rates":{"INR":0}}`,
	}

	for name, body := range bodies {
		body := body
		t.Run(name, func(t *testing.T) {
			asserts := require.New(t)
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
				writer.WriteHeader(http.StatusOK)
				_, _ = writer.Write([]byte(body))
			}))
			defer server.Close()

			fetcher := fetchers.ExchangeRateHostFetcher{URL: server.URL}
			table, err := fetcher.Fetch(context.Background(), "USD")

			asserts.Nil(table)
			asserts.True(errors.Is(err, converter.ErrMalformedRates))
		})
	}
}

func TestExchangeRateHostFetcher_ConnectionRefused(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	server := httptest.NewServer(ratesHandler{})
	url := server.URL
	server.Close()

	fetcher := fetchers.ExchangeRateHostFetcher{URL: url}
	table, err := fetcher.Fetch(context.Background(), "USD")

	asserts.Nil(table)
	asserts.True(errors.Is(err, converter.ErrRateUnavailable))
}
