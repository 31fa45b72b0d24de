package converter

import (
	"fmt"
	"strings"
)

type SourceProvider string

const (
	ExchangeRateHostProvider SourceProvider = "ExchangeRateHost"
	StaticProvider           SourceProvider = "Static"
	EmptyProvider            SourceProvider = ""
)

func ConvertToSourceProvidersFromStringSlice(strings []string) ([]SourceProvider, error) {
	providers := make([]SourceProvider, 0, len(strings))

	for _, str := range strings {
		provider, err := ConvertToSourceProviderFromString(str)
		if err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	return providers, nil
}

func ConvertToSourceProviderFromString(str string) (SourceProvider, error) {
	switch strings.ToLower(str) {
	case "exchangeratehost":
		return ExchangeRateHostProvider, nil
	case "static":
		return StaticProvider, nil
	}

	return "", fmt.Errorf("value %s is not valid SourceProvider", str)
}
