package cmd

import (
	"errors"
	"fmt"

	"request-portal/internal/data/repository"
	"request-portal/internal/dto/request"
	"request-portal/internal/usecase"
	"request-portal/pkg/database"

	"github.com/spf13/cobra"
)

var seedAdmin struct {
	username string
	email    string
	password string
	force    bool
}

// seedAdminCmd creates the first account; every data route needs a session.
var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create an admin user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, logger, err := bootstrap(true)
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := database.InitDB(cmd.Context(), config.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := repository.NewRepository(db, logger)
		if err := usecase.VerifyRoles(cmd.Context(), repo.Role); err != nil {
			return err
		}

		existing, err := repo.User.CountAll(cmd.Context())
		if err != nil {
			return err
		}
		if existing > 0 && !seedAdmin.force {
			return fmt.Errorf("%d users already exist; pass --force to add another admin", existing)
		}

		users := usecase.NewUserService(repo, logger)
		created, err := users.CreateUser(cmd.Context(), &request.CreateUserRequest{
			Username: seedAdmin.username,
			Email:    seedAdmin.email,
			Password: seedAdmin.password,
			Role:     "admin",
		})
		if err != nil {
			var validationErr *usecase.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("invalid admin account: %s", validationErr.Error())
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created admin %q with id %d\n", created.Username, created.ID)
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedAdmin.username, "username", "admin", "Admin username")
	seedAdminCmd.Flags().StringVar(&seedAdmin.email, "email", "", "Admin email")
	seedAdminCmd.Flags().StringVar(&seedAdmin.password, "password", "", "Admin password (8 to 72 characters)")
	seedAdminCmd.Flags().BoolVar(&seedAdmin.force, "force", false, "Create the admin even when users already exist")
	_ = seedAdminCmd.MarkFlagRequired("email")
	_ = seedAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(seedAdminCmd)
}
