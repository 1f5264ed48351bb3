package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/filters"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	userService *services.UserService
	logger      *slog.Logger
}

func NewHandler(taskService *services.TaskService, userService *services.UserService, logger *slog.Logger) *Handler {
	return &Handler{
		taskService: taskService,
		userService: userService,
		logger:      logger,
	}
}

// ListTasks serves one page of the signed-in user's tasks. A submission of
// the advanced-filter form is remembered in the session; later requests
// without it reuse the remembered filters, with their own parameters taking
// precedence.
func (h *Handler) ListTasks(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	ctx := c.Request().Context()

	params := c.QueryParams()
	if filters.IsSubmission(params) {
		sess.SaveFilterState(params)
	}
	merged := filters.Merge(sess.FilterState(), params)
	p := filters.ParamsFromValues(merged)

	list, err := h.taskService.List(ctx, sess.UserID, p)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(ctx, sess.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":                 true,
		"tasks":                   list.Tasks,
		"pagination":              list.Pagination,
		"statistics":              list.Statistics,
		"showStatistics":          list.Statistics.Show(),
		"statusConflict":          p.StatusConflict(),
		"filterState":             sess.FilterState(),
		"hasGeneratedSampleTasks": user.HasGeneratedSampleTasks,
	})
}

func (h *Handler) ClearTaskFilters(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	sess.ClearFilterState()

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"filterState": sess.FilterState(),
	})
}

func (h *Handler) TaskFilterConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, filters.TaskConfig(services.ValidLimits, services.DefaultLimit))
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidPayload
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	sess := middleware.CurrentSession(c)
	task, err := h.taskService.Create(c.Request().Context(), sess.UserID, taskInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	task, err := h.taskService.Get(c.Request().Context(), c.Param("id"), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidPayload
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	sess := middleware.CurrentSession(c)
	task, err := h.taskService.Update(c.Request().Context(), c.Param("id"), sess.UserID, taskInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ToggleTask(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	task, err := h.taskService.Toggle(c.Request().Context(), c.Param("id"), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if err := h.taskService.Delete(c.Request().Context(), c.Param("id"), sess.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) DeleteTaskImage(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	task, err := h.taskService.DeleteImage(c.Request().Context(), c.Param("id"), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) GenerateSampleTasks(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	created, err := h.taskService.GenerateSamples(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "created": created})
}

// ExportTasks downloads every task the current listing filters match.
func (h *Handler) ExportTasks(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	p := filters.ParamsFromValues(filters.Merge(sess.FilterState(), c.QueryParams()))

	tasks, err := h.taskService.Export(c.Request().Context(), sess.UserID, p)
	if err != nil {
		return err
	}
	return writeCSV(c, services.ExportFilename(p.Q, true, time.Now()), tasks)
}

func (h *Handler) ExportAllTasks(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	tasks, err := h.taskService.ExportAll(c.Request().Context(), sess.UserID)
	if err != nil {
		return err
	}
	return writeCSV(c, services.ExportFilename("", false, time.Now()), tasks)
}

func writeCSV(c echo.Context, filename string, tasks []model.Task) error {
	var buf bytes.Buffer
	if err := services.WriteTasksCSV(&buf, tasks); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func taskInput(req dto.TaskRequest) services.TaskInput {
	return services.TaskInput{
		Name:     req.Name,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		IsDone:   req.IsDone,
	}
}
