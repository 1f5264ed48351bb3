package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-tracker.com/task-tracker/internal/auth"
	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
	"task-tracker.com/task-tracker/internal/sessions"
	"task-tracker.com/task-tracker/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()
		cfg := a.cfg

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := telemetry.Setup(ctx, cfg.TraceStdout)
		if err != nil {
			return err
		}

		sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
		var store sessions.Store = sessions.NewMemoryStore(sessionTTL)
		if cfg.SessionStore == config.SessionStoreRedis {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			store = sessions.NewRedisStore(redisClient, cfg.SessionKeyPrefix, sessionTTL)
		}

		taskRepo := repository.NewTaskRepository(a.db)
		userRepo := repository.NewUserRepository(a.db)

		taskService := services.NewTaskService(taskRepo, userRepo, services.NewImageStore(cfg.UploadDir), a.logger)
		userService := services.NewUserService(userRepo, auth.NewPasswordManager(), a.logger)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		httpapi.Register(e, httpapi.NewHandler(taskService, userService, a.logger), httpapi.RouteConfig{
			RateLimitPerSecond: cfg.RateLimit,
			Session: middleware.SessionConfig{
				Store:      store,
				CookieName: cfg.SessionCookieName,
				Secure:     cfg.SessionCookieSecure,
				TTL:        sessionTTL,
				Logger:     a.logger,
			},
			Metrics: middleware.NewMetrics(),
			Logger:  a.logger,
		})

		go func() {
			a.logger.Info("HTTP server listening", slog.String("addr", cfg.AppURL), slog.String("session_store", cfg.SessionStore))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("server stopped", slog.Any("error", err))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("HTTP server shutdown failed", slog.Any("error", err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			a.logger.Error("tracer shutdown failed", slog.Any("error", err))
		}

		a.logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
