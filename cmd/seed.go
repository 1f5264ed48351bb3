package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var seedUsersCmd = &cobra.Command{
	Use:   "seed-users",
	Short: "Create the demo accounts that do not exist yet",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		users := services.NewUserService(repository.NewUserRepository(a.db), auth.NewPasswordManager(), a.logger)
		created, err := users.Seed(cmd.Context(), services.DemoAccounts())
		if err != nil {
			return err
		}

		a.logger.Info("demo users seeded", slog.Int("created", created))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedUsersCmd)
}
