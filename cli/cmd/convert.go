package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	converter "github.com/smartconv/converter"
)

func convert(config *Config) *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount between two currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)

			if err != nil {
				err = fmt.Errorf("%w: %s", converter.ErrInvalidAmount, args[0])
				config.printError(cmd.OutOrStderr(), err)
				return err
			}

			record, err := config.Converter.Convert(config.Ctx, amount, args[1], args[2])

			if err != nil {
				config.printError(cmd.OutOrStderr(), err)
				return err
			}

			printResult(cmd.OutOrStdout(), record)
			config.History.Record(record)

			return nil
		},
	}

	convertCmd.SilenceUsage = true
	convertCmd.SilenceErrors = true

	return convertCmd
}
