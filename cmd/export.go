package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	"task-tracker.com/task-tracker/internal/filters"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var exportFlags struct {
	email string
	out   string
	query string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a user's tasks to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := cmd.Context()
		userRepo := repository.NewUserRepository(a.db)
		users := services.NewUserService(userRepo, auth.NewPasswordManager(), a.logger)
		tasks := services.NewTaskService(repository.NewTaskRepository(a.db), userRepo, services.NewImageStore(a.cfg.UploadDir), a.logger)

		user, err := users.GetByEmail(ctx, exportFlags.email)
		if err != nil {
			return fmt.Errorf("%s: %w", exportFlags.email, err)
		}

		list, err := tasks.Export(ctx, user.ID, filters.Params{Q: exportFlags.query})
		if err != nil {
			return err
		}

		out := exportFlags.out
		if out == "" {
			out = services.ExportFilename(exportFlags.query, exportFlags.query != "", time.Now())
		}

		if err := writeExport(out, cmd.OutOrStdout(), list); err != nil {
			return err
		}
		a.logger.Info("tasks exported", slog.String("user_id", user.ID), slog.Int("count", len(list)), slog.String("out", out))
		return nil
	},
}

// writeExport writes tasks as CSV to the file out, or to stdout when out is
// "-".
func writeExport(out string, stdout io.Writer, tasks []model.Task) (err error) {
	if out == "-" {
		return services.WriteTasksCSV(stdout, tasks)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", out, cerr)
		}
	}()
	return services.WriteTasksCSV(f, tasks)
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.email, "email", "", "email of the task owner")
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "", "output file, - for stdout")
	exportCmd.Flags().StringVarP(&exportFlags.query, "query", "q", "", "only tasks whose name contains this text")
	_ = exportCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(exportCmd)
}
