package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"

	config "task-tracker.com/task-tracker/internal/configs"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

func setupEnv(t *testing.T) (dir, dsn string) {
	t.Helper()
	dir = t.TempDir()
	dsn = filepath.Join(dir, "tasks.db")
	t.Setenv("DATABASE_DSN", dsn)
	t.Setenv("LOG_DIR", dir)
	t.Setenv("LOG_DEV", "false")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("UPLOAD_DIR", dir)
	return dir, dsn
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	exportFlags.email, exportFlags.out, exportFlags.query = "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func openDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := config.OpenDatabase(dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestSeedUsers_CreatesDemoAccountsOnce(t *testing.T) {
	_, dsn := setupEnv(t)

	for i := 0; i < 2; i++ {
		if _, err := run(t, "seed-users"); err != nil {
			t.Fatalf("seed-users run %d: %v", i+1, err)
		}
	}

	var n int64
	if err := openDB(t, dsn).Model(&model.User{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != int64(len(services.DemoAccounts())) {
		t.Errorf("expected %d users, got %d", len(services.DemoAccounts()), n)
	}
}

func TestExport_WritesOwnersTasks(t *testing.T) {
	dir, dsn := setupEnv(t)
	if _, err := run(t, "seed-users"); err != nil {
		t.Fatalf("seed-users: %v", err)
	}

	db := openDB(t, dsn)
	ctx := context.Background()
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)

	jan, err := users.FindByEmail(ctx, "jan@example.com")
	if err != nil {
		t.Fatal(err)
	}
	anna, err := users.FindByEmail(ctx, "anna@example.com")
	if err != nil {
		t.Fatal(err)
	}
	for _, task := range []model.Task{
		{OwnerID: jan.ID, Name: "Quarterly report", DateFrom: "2024-03-01", IsDone: true},
		{OwnerID: jan.ID, Name: "Dentist", DateFrom: "2024-03-05"},
		{OwnerID: anna.ID, Name: "Anna's report", DateFrom: "2024-03-02"},
	} {
		task := task
		if err := tasks.Create(ctx, &task); err != nil {
			t.Fatal(err)
		}
	}

	out := filepath.Join(dir, "jan.csv")
	if _, err := run(t, "export", "--email", "jan@example.com", "--out", out, "-q", "report"); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "\ufeffName,Date from,Date to,Status\nQuarterly report,2024-03-01,,Done\n"
	if string(data) != want {
		t.Errorf("export file = %q, want %q", data, want)
	}

	stdout, err := run(t, "export", "--email", "jan@example.com", "--out", "-")
	if err != nil {
		t.Fatalf("export to stdout: %v", err)
	}
	if strings.Count(stdout, "\n") != 3 || strings.Contains(stdout, "Anna") {
		t.Errorf("unexpected stdout export: %q", stdout)
	}
}

func TestExport_UnknownEmail(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "export", "--email", "nobody@example.com", "--out", "-")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestWriteExport_ReportsFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-dir", "tasks.csv")
	if err := writeExport(missing, nil, nil); err == nil {
		t.Error("expected an error for an unwritable path")
	}

	var buf bytes.Buffer
	if err := writeExport("-", &buf, []model.Task{{Name: "a", DateFrom: "2024-01-01"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "a,2024-01-01,,To do\n") {
		t.Errorf("stdout export = %q", buf.String())
	}
}
