package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func migrate(config *Config) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the conversion history schema in every configured storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, storage := range config.Storages {
				if err := storage.Migrate(); err != nil {
					return err
				}

				slog.Info("storage migrated", "storage", storage.GetStorageProviderName())
			}

			return nil
		},
	}

	return migrateCmd
}
