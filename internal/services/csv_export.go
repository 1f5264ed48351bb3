package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	model "task-tracker.com/task-tracker/internal/models"
)

// utf8BOM makes spreadsheet tools pick UTF-8 for the export.
const utf8BOM = "\ufeff"

var csvHeader = []string{"Name", "Date from", "Date to", "Status"}

const (
	statusDone = "Done"
	statusTodo = "To do"
)

// WriteTasksCSV writes tasks as a CSV document to w.
func WriteTasksCSV(w io.Writer, tasks []model.Task) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		dateTo := ""
		if t.DateTo != nil {
			dateTo = *t.DateTo
		}
		status := statusTodo
		if t.IsDone {
			status = statusDone
		}
		if err := cw.Write([]string{t.Name, t.DateFrom, dateTo, status}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_-]+`)

// ExportFilename names a filtered export after its search text. All exports
// use the plain tasks-<ms>.csv form.
func ExportFilename(q string, filtered bool, now time.Time) string {
	if !filtered {
		return fmt.Sprintf("tasks-%d.csv", now.UnixMilli())
	}

	suffix := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(q), "_"), "_")
	if suffix != "" {
		suffix = "-" + suffix
	}
	return fmt.Sprintf("tasks-filtered%s-%d.csv", suffix, now.UnixMilli())
}
