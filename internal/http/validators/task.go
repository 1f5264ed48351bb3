package validators

import (
	"strings"
	"time"
	"unicode/utf8"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

const minNameLength = 3

// ValidateTaskRequest checks a create or update payload. dateTo may precede
// dateFrom; nothing has ever rejected that.
func ValidateTaskRequest(r *dto.TaskRequest) error {
	verr := apperrors.NewValidationError()

	if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < minNameLength {
		verr.Add("name", "name must be at least 3 characters long")
	}

	if strings.TrimSpace(r.DateFrom) == "" {
		verr.Add("dateFrom", "dateFrom is required")
	} else if !validDate(r.DateFrom) {
		verr.Add("dateFrom", "dateFrom must be a date in YYYY-MM-DD format")
	}

	if strings.TrimSpace(r.DateTo) != "" && !validDate(r.DateTo) {
		verr.Add("dateTo", "dateTo must be a date in YYYY-MM-DD format")
	}

	return verr.OrNil()
}

func validDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}
