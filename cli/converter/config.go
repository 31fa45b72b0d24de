package main

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	converter "github.com/smartconv/converter"
	"github.com/smartconv/converter/cache"
	"github.com/smartconv/converter/fetchers"
	"github.com/smartconv/converter/storage"
)

const defaultHTTPTimeout = 15 * time.Second

type (
	StorageConfig map[storage.Provider]interface{}
	Config        struct {
		Source        converter.SourceProvider
		SourceConfig  interface{}
		Storage       []storage.Provider
		StorageConfig StorageConfig
		BaseCurrency  string
		TTL           time.Duration
		HistoryBuffer int
	}
)

func getMysqlDSN(config map[string]string) string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = config["user"]
	mysqlDriverConfig.Passwd = config["password"]
	mysqlDriverConfig.Addr = config["addr"]
	mysqlDriverConfig.Net = "tcp"
	mysqlDriverConfig.DBName = config["db"]

	return mysqlDriverConfig.FormatDSN()
}

func getStaticRates(raw map[string]string) (converter.RateTable, error) {
	table := make(converter.RateTable, len(raw))

	for code, value := range raw {
		rate, err := strconv.ParseFloat(value, 64)

		if err != nil {
			return nil, err
		}

		table[code] = rate
	}

	return table, nil
}

func getConfig(ctx context.Context) (*Config, error) {
	sourceName := viper.GetString("rates.source")

	if sourceName == "" {
		sourceName = string(converter.ExchangeRateHostProvider)
	}

	source, err := converter.ConvertToSourceProviderFromString(sourceName)

	if err != nil {
		return nil, err
	}

	timeout := viper.GetDuration("rates.timeout")

	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	var sourceConfig interface{}

	switch source {
	case converter.ExchangeRateHostProvider:
		sourceConfig = fetchers.ExchangeRateHostConfig{
			BaseConfig: fetchers.BaseConfig{
				URL:    viper.GetString("rates.url"),
				Client: &http.Client{Timeout: timeout},
			},
		}
	case converter.StaticProvider:
		rates, err := getStaticRates(viper.GetStringMapString("rates.table"))

		if err != nil {
			return nil, err
		}

		sourceConfig = fetchers.StaticConfig{Rates: rates}
	}

	storages, err := storage.ConvertToProvidersFromStringSlice(viper.GetStringSlice("storage"))

	if err != nil {
		return nil, err
	}

	mysqlConfig := viper.GetStringMapString("databases.mysql")
	mongodbConfig := viper.GetStringMapString("databases.mongo")

	storageBaseConfig := storage.BaseConfig{
		Ctx:     ctx,
		Migrate: viper.GetBool("migrate"),
	}

	baseCurrency := viper.GetString("rates.base")

	if baseCurrency == "" {
		baseCurrency = "USD"
	}

	ttl := viper.GetDuration("rates.ttl")

	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}

	return &Config{
		Source:       source,
		SourceConfig: sourceConfig,
		Storage:      storages,
		StorageConfig: StorageConfig{
			storage.MySQL: storage.MySQLConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: getMysqlDSN(mysqlConfig),
				TableName:        mysqlConfig["table"],
			},
			storage.MongoDB: storage.MongoDBConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: mongodbConfig["uri"],
				Database:         mongodbConfig["db"],
				Collection:       mongodbConfig["collection"],
			},
		},
		BaseCurrency:  baseCurrency,
		TTL:           ttl,
		HistoryBuffer: viper.GetInt("history.buffer"),
	}, nil
}
