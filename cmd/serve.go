package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"request-portal/internal/data/repository"
	"request-portal/internal/usecase"
	"request-portal/internal/wire"
	"request-portal/pkg/database"
	"request-portal/pkg/mailer"
	"request-portal/pkg/token"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	config, logger, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokens, err := token.NewManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		return fmt.Errorf("session tokens: %w", err)
	}

	sender, err := mailer.NewSMTPSender(config.Email, logger)
	if err != nil {
		return fmt.Errorf("mail transport: %w", err)
	}

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repo := repository.NewRepository(db, logger)
	if err := usecase.VerifyRoles(ctx, repo.Role); err != nil {
		logger.Error("Role table is not ready", zap.Error(err))
		return err
	}

	app := wire.Wiring(wire.Deps{
		DB:     db,
		Repo:   repo,
		Tokens: tokens,
		Mailer: sender,
		Config: config,
		Logger: logger,
	})

	shutdownTimeout := time.Duration(config.App.ShutdownTimeout) * time.Second
	return APIServer(ctx, app.Router, config.App.Port, shutdownTimeout, logger)
}
