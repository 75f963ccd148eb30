// Package admin provides operator commands for managing administrator access.
package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doramashorts/backend/internal/application/user/usecases"
	"github.com/doramashorts/backend/internal/infrastructure/config"
	"github.com/doramashorts/backend/internal/infrastructure/database"
	"github.com/doramashorts/backend/internal/infrastructure/repository"
	"github.com/doramashorts/backend/internal/shared/authorization"
	"github.com/doramashorts/backend/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
		Long: `Grant or revoke the admin role for a registered user.
The change applies from the user's next login.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newRoleCommand("grant", "Grant the admin role to a user", authorization.RoleAdmin),
		newRoleCommand("revoke", "Revoke the admin role from a user", authorization.RoleUser),
	)

	return cmd
}

func newRoleCommand(use, short string, role authorization.UserRole) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <email>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetRole(cmd.Context(), args[0], role)
		},
	}
}

func runSetRole(ctx context.Context, email string, role authorization.UserRole) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	setRoleUC := usecases.NewSetRoleUseCase(repository.NewUserRepository(database.Get(), log), log)

	result, err := setRoleUC.Execute(ctx, strings.TrimSpace(email), role)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}

	if !result.Changed {
		fmt.Printf("%s already has role %s\n", result.User.Email, result.User.Role)
		return nil
	}
	fmt.Printf("%s now has role %s\n", result.User.Email, result.User.Role)
	return nil
}
