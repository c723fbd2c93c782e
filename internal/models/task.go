package models

// DefaultCategory is the category used when none is given
const DefaultCategory = "General"

const (
	// MarkerPending prefixes an incomplete task in the flat-file format
	MarkerPending = "[ ]"
	// MarkerDone prefixes a completed task in the flat-file format
	MarkerDone = "[✔]"
)

// Task represents a single unit of work
type Task struct {
	Description string `json:"task"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
}

// NewTask creates an incomplete task, falling back to DefaultCategory
func NewTask(description, category string) Task {
	if category == "" {
		category = DefaultCategory
	}
	return Task{Description: description, Category: category}
}

// Marker returns the flat-file completion marker for the task
func (t Task) Marker() string {
	if t.Completed {
		return MarkerDone
	}
	return MarkerPending
}

// Label renders the task the way the console shows it, e.g. "[ ] Write report"
func (t Task) Label() string {
	return t.Marker() + " " + t.Description
}
