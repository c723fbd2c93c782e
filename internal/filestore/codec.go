package filestore

import (
	"strings"

	"github.com/benvon/zenith-task/internal/models"
)

// Delimiter separates the task text from its category on a task line
const Delimiter = " = "

// FormatLine renders a task as "<marker> <description> = <category>"
func FormatLine(task models.Task) string {
	return task.Label() + Delimiter + task.Category
}

// ParseLine parses a task line. It reports false for lines that do not
// contain exactly one delimiter. Text without a known marker is kept as
// an incomplete task with the whole text as description.
func ParseLine(line string) (models.Task, bool) {
	line = strings.TrimSpace(line)
	if strings.Count(line, Delimiter) != 1 {
		return models.Task{}, false
	}

	text, category, _ := strings.Cut(line, Delimiter)
	task := models.Task{Category: category}

	switch {
	case strings.HasPrefix(text, models.MarkerDone+" "):
		task.Completed = true
		task.Description = strings.TrimPrefix(text, models.MarkerDone+" ")
	case strings.HasPrefix(text, models.MarkerPending+" "):
		task.Description = strings.TrimPrefix(text, models.MarkerPending+" ")
	default:
		task.Description = text
	}
	return task, true
}
