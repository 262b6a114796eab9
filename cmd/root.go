package cmd

import (
	"fmt"
	"log"
	"os"

	"request-portal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

// rootCmd runs the API server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "request-portal",
	Short: "Request portal API server",
	Long: `request-portal serves the users, requests, activity log and mail relay API.

Configuration is read from an optional .env file and the process environment;
environment variables take precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")
}

// bootstrap loads config and builds the logger. Commands that only touch
// the database pass databaseOnly to skip the session settings check.
func bootstrap(databaseOnly bool) (*utils.Config, *zap.Logger, error) {
	config, err := utils.LoadConfig(envFile)
	if err != nil {
		return nil, nil, err
	}

	validate := config.Validate
	if databaseOnly {
		validate = config.Database.Validate
	}
	if err := validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production defaults.", err)
		logger, _ = zap.NewProduction()
	}

	return config, logger, nil
}
