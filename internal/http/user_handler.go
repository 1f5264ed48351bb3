package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/filters"
)

func (h *Handler) ListUsers(c echo.Context) error {
	p := filters.ParamsFromValues(c.QueryParams())

	list, err := h.userService.List(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":        true,
		"users":          list.Users,
		"statistics":     list.Statistics,
		"showStatistics": list.Statistics.Show(),
		"filterConfig":   filters.UserConfig(),
	})
}
