package main

import (
	"context"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	"github.com/smartconv/converter/cli/cmd"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config := &cmd.Config{
		Ctx:  ctx,
		Wire: wire,
	}

	defer func() {
		if config.History != nil {
			config.History.Close()
		}

		for _, storage := range config.Storages {
			_ = storage.Close()
		}
	}()

	return cmd.Execute(config)
}

// wire runs after cobra parsed the flags, so viper already holds the
// file named by --config.
func wire(c *cmd.Config) error {
	logger := setupLogger(viper.GetString("log.level"))

	config, err := getConfig(c.Ctx)

	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	storages, err := createStorages(config)

	if err != nil {
		logger.Error("failed to set up storage", "error", err)
		return err
	}

	// Assigned before the remaining wiring so main's deferred cleanup
	// reaches the storages even when a later step fails.
	c.Storages = storages

	converterService, err := createConverter(config, logger)

	if err != nil {
		logger.Error("failed to set up converter", "error", err)
		return err
	}

	c.Converter = converterService
	c.History = createHistory(config, storages, logger)

	return nil
}
