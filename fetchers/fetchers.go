package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	converter "github.com/smartconv/converter"
)

const ExchangeRateHostURL = "https://api.exchangerate.host/latest"

var (
	ErrClient = fmt.Errorf("%w: request rejected by the remote endpoint", converter.ErrRateUnavailable)
	ErrServer = fmt.Errorf("%w: remote endpoint failure", converter.ErrRateUnavailable)
	ErrStatus = fmt.Errorf("%w: unexpected response status", converter.ErrRateUnavailable)
)

func newRatesRequest(ctx context.Context, url, base string, symbols []string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	q := req.URL.Query()
	q.Add("base", strings.ToUpper(base))

	if len(symbols) != 0 {
		var builder strings.Builder

		for _, s := range symbols {
			builder.WriteString(strings.ToUpper(s))
			builder.WriteRune(',')
		}

		q.Add("symbols", strings.TrimRight(builder.String(), ","))
	}

	req.URL.RawQuery = q.Encode()

	return req, nil
}

func statusCodeError(res *http.Response) error {
	if res.StatusCode == http.StatusOK {
		return nil
	}

	switch {
	case res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError:
		return fmt.Errorf("%w (%d)", ErrClient, res.StatusCode)
	case res.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w (%d)", ErrServer, res.StatusCode)
	default:
		return fmt.Errorf("%w (%d)", ErrStatus, res.StatusCode)
	}
}
