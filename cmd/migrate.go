package cmd

import (
	"request-portal/pkg/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|reset|status|version]",
	Short:     "Apply or inspect database schema migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "reset", "status", "version"},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		return database.Migrate(cmd.Context(), config.Database, args[0], logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
