package cmd

import (
	"io"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	config "task-tracker.com/task-tracker/internal/configs"
	"task-tracker.com/task-tracker/internal/logger"
)

type app struct {
	cfg    config.Config
	logger *slog.Logger
	db     *gorm.DB
	closer io.Closer
}

// bootstrap prepares what every command needs: environment, logger and an
// open database.
func bootstrap() (*app, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := config.Load()

	logCfg := logger.DefaultConfig()
	logCfg.Dir = cfg.LogDir
	logCfg.File = cfg.LogFile
	logCfg.Level = cfg.LogLevel
	logCfg.Dev = cfg.LogDev

	lg, closer, err := logger.New(logCfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(lg)

	return &app{
		cfg:    cfg,
		logger: lg,
		db:     config.NewDatabaseClient(cfg.DatabaseDSN),
		closer: closer,
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.closer.Close()
}
