package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	converter "github.com/smartconv/converter"
	"github.com/smartconv/converter/services"
)

var (
	rootCmd = &cobra.Command{
		Use:     "converter",
		Short:   "Smart live currency converter",
		Version: "v1.0.0",
	}
	debug      bool
	configFile string
)

type (
	Config struct {
		Ctx       context.Context
		Converter converter.Converter
		History   *services.HistoryService
		Storages  []converter.Storage

		// Wire builds the services from the loaded configuration. It
		// runs after flag parsing, so the --config flag is already
		// applied when it reads viper.
		Wire func(config *Config) error

		debug *bool
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")

	config.debug = &debug

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := readInConfig(); err != nil {
			return err
		}

		if config.Wire == nil {
			return nil
		}

		return config.Wire(config)
	}

	rootCmd.AddCommand(convert(config), console(config), migrate(config))

	return rootCmd.Execute()
}

func readInConfig() error {
	absolutePath, _ := filepath.Abs(configFile)

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix("CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running without a config file is fine, defaults cover the
		// live endpoint and a storage-less session.
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}

	return nil
}

func printResult(out io.Writer, record converter.Record) {
	fmt.Fprintln(out, "----------------------------------")
	color.New(color.FgGreen, color.Bold).Fprintf(out, "%v %s = %v %s\n", record.Amount, record.From, record.Result, record.To)
	fmt.Fprintln(out, "----------------------------------")
}

func (c *Config) printError(out io.Writer, err error) {
	red := color.New(color.FgRed)

	switch {
	case errors.Is(err, converter.ErrRateUnavailable), errors.Is(err, converter.ErrMalformedRates):
		red.Fprintln(out, "Could not fetch live rates, please try again.")

		if c.debug != nil && *c.debug {
			fmt.Fprintf(out, "%v\n", err)
		}
	default:
		red.Fprintf(out, "Error: %v\n", err)
	}
}
