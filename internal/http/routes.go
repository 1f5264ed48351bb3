package http

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

type RouteConfig struct {
	RateLimitPerSecond int
	Session            middleware.SessionConfig
	Metrics            *middleware.Metrics
	Logger             *slog.Logger
}

func Register(e *echo.Echo, h *Handler, cfg RouteConfig) {
	e.HTTPErrorHandler = ErrorHandler(cfg.Logger)

	e.Use(echomw.RequestID())
	e.Use(cfg.Metrics.Middleware())
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(middleware.Recovery(cfg.Logger))
	e.Use(echomw.Secure())
	e.Use(middleware.RateLimiter(cfg.RateLimitPerSecond, time.Second))

	e.GET("/metrics", cfg.Metrics.Handler())

	// Session and auth are attached per route or under a path prefix, so
	// unknown paths still answer 404.
	session := middleware.Session(cfg.Session)
	auth := middleware.RequireAuth()

	e.POST("/register", h.Register, session)
	e.POST("/login", h.Login, session)
	e.POST("/logout", h.Logout, session)
	e.GET("/profile", h.Profile, session, auth)
	e.GET("/users", h.ListUsers, session, auth, middleware.RequireAdmin())

	tasks := e.Group("/tasks", session, auth)
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/filter-config", h.TaskFilterConfig)
	tasks.POST("/filters/clear", h.ClearTaskFilters)
	tasks.POST("/samples", h.GenerateSampleTasks)
	tasks.GET("/export", h.ExportTasks)
	tasks.GET("/export/all", h.ExportAllTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.PATCH("/:id/toggle", h.ToggleTask)
	tasks.DELETE("/:id", h.DeleteTask)
	tasks.DELETE("/:id/image", h.DeleteTaskImage)
}
