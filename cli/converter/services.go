package main

import (
	"fmt"
	"log/slog"

	converter "github.com/smartconv/converter"
	"github.com/smartconv/converter/cache"
	"github.com/smartconv/converter/fetchers"
	"github.com/smartconv/converter/services"
	"github.com/smartconv/converter/storage"
)

func createStorages(config *Config) ([]converter.Storage, error) {
	storages := make([]converter.Storage, 0, len(config.Storage))

	for _, s := range config.Storage {
		c, ok := config.StorageConfig[s]
		if !ok {
			return nil, fmt.Errorf("storage %s does not exist", s)
		}

		st, err := storage.NewStorage(s, c)

		if err != nil {
			return nil, err
		}

		storages = append(storages, st)
	}

	return storages, nil
}

func createConverter(config *Config, logger *slog.Logger) (converter.Converter, error) {
	source := fetchers.NewRateSource(config.Source, config.SourceConfig)

	if source == nil {
		return nil, fmt.Errorf("rate source %s does not exist", config.Source)
	}

	rates := cache.New(source, config.BaseCurrency, config.TTL)

	return services.NewConversionService(rates, logger), nil
}

func createHistory(config *Config, storages []converter.Storage, logger *slog.Logger) *services.HistoryService {
	return services.NewHistoryService(storages, logger, config.HistoryBuffer)
}
