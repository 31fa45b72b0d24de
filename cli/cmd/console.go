package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	converter "github.com/smartconv/converter"
)

func console(config *Config) *cobra.Command {
	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Interactive conversion session, amount 0 ends it",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())

			color.New(color.FgCyan, color.Bold).Fprintln(out, "===== SMART LIVE CURRENCY CONVERTER =====")

			for {
				input, ok := prompt(scanner, out, "\nEnter amount (or 0 to exit): ")
				if !ok {
					return nil
				}

				amount, err := strconv.ParseFloat(input, 64)

				if err != nil {
					config.printError(out, fmt.Errorf("%w: %s", converter.ErrInvalidAmount, input))
					continue
				}

				if amount == 0 {
					break
				}

				from, ok := prompt(scanner, out, "From currency: ")
				if !ok {
					return nil
				}

				to, ok := prompt(scanner, out, "To currency: ")
				if !ok {
					return nil
				}

				record, err := config.Converter.Convert(config.Ctx, amount, from, to)

				if err != nil {
					config.printError(out, err)
					continue
				}

				printResult(out, record)
				config.History.Record(record)
			}

			fmt.Fprintln(out, "Program ended. Thank you!")

			return nil
		},
	}

	return consoleCmd
}

func prompt(scanner *bufio.Scanner, out io.Writer, message string) (string, bool) {
	fmt.Fprint(out, message)

	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}
