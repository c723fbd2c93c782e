package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/benvon/zenith-task/internal/models"
)

func TestTaskHandler_AddThenList(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := serve(r, newTestRequest(http.MethodPost, "/tasks", map[string]string{"task": "Write report", "category": "Work"}))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	added := decodeBody[MessageResponse](t, w)
	if added.Message != "Task added!" {
		t.Errorf("Expected message 'Task added!', got %q", added.Message)
	}
	want := models.Task{Description: "Write report", Category: "Work"}
	if added.Task == nil || *added.Task != want {
		t.Errorf("Expected task %+v, got %+v", want, added.Task)
	}

	w = serve(r, newTestRequest(http.MethodGet, "/tasks", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `[{"task":"Write report","category":"Work","completed":false}]` {
		t.Errorf("Unexpected body: %s", got)
	}
}

func TestTaskHandler_AddTask_DefaultCategory(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := serve(r, newTestRequest(http.MethodPost, "/tasks", map[string]string{"task": "Read"}))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	added := decodeBody[MessageResponse](t, w)
	if added.Task == nil || added.Task.Category != models.DefaultCategory {
		t.Errorf("Expected default category, got %+v", added.Task)
	}
}

func TestTaskHandler_AddTask_LongestTask(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := serve(r, newTestRequest(http.MethodPost, "/tasks", map[string]string{"task": strings.Repeat("x", 10000)}))
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for a 10000 character task, got %d", w.Code)
	}
}

func TestTaskHandler_AddTask_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed json", "{"},
		{"missing task", `{"category":"Work"}`},
		{"blank task", `{"task":"   "}`},
		{"wrong type", `{"task":42}`},
		{"task too long", `{"task":"` + strings.Repeat("x", 10001) + `"}`},
		{"category too long", `{"task":"a","category":"` + strings.Repeat("c", 201) + `"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, s := newTestRouter(t)

			w := serve(r, newRawRequest(http.MethodPost, "/tasks", tt.body))
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d: %s", w.Code, w.Body.String())
			}
			if body := decodeBody[ErrorResponse](t, w); body.Error == "" {
				t.Error("Expected error message")
			}

			tasks, _ := s.ListTasks(context.Background())
			if len(tasks) != 0 {
				t.Errorf("Expected no tasks to be stored, got %d", len(tasks))
			}
		})
	}
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	t.Parallel()
	r, s := newTestRouter(t)
	for _, d := range []string{"a", "b", "c"} {
		_, _ = s.AddTask(context.Background(), d, "")
	}

	w := serve(r, newTestRequest(http.MethodDelete, "/tasks/1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	deleted := decodeBody[MessageResponse](t, w)
	if deleted.Message != "Task deleted!" || deleted.Task == nil || deleted.Task.Description != "b" {
		t.Errorf("Unexpected response: %+v", deleted)
	}

	tasks, _ := s.ListTasks(context.Background())
	if len(tasks) != 2 || tasks[0].Description != "a" || tasks[1].Description != "c" {
		t.Errorf("Expected [a c], got %+v", tasks)
	}
}

func TestTaskHandler_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"delete past end", http.MethodDelete, "/tasks/5"},
		{"delete at length", http.MethodDelete, "/tasks/2"},
		{"complete past end", http.MethodPatch, "/tasks/5/complete"},
		{"index overflow", http.MethodDelete, "/tasks/99999999999999999999999"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, s := newTestRouter(t)
			_, _ = s.AddTask(context.Background(), "a", "")
			_, _ = s.AddTask(context.Background(), "b", "")

			w := serve(r, newTestRequest(tt.method, tt.path, nil))
			if w.Code != http.StatusNotFound {
				t.Fatalf("Expected status 404, got %d", w.Code)
			}
			if body := decodeBody[ErrorResponse](t, w); body.Error != "Task not found!" {
				t.Errorf("Expected 'Task not found!', got %q", body.Error)
			}
		})
	}
}

func TestTaskHandler_NonNumericIndexIsUnrouted(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	for _, path := range []string{"/tasks/-1", "/tasks/abc", "/tasks/abc/complete"} {
		w := serve(r, newTestRequest(http.MethodDelete, path, nil))
		if w.Code == http.StatusOK {
			t.Errorf("Expected %s not to match a task route", path)
		}
	}
}

func TestTaskHandler_CompleteTask(t *testing.T) {
	t.Parallel()
	r, s := newTestRouter(t)
	_, _ = s.AddTask(context.Background(), "a", "")

	for i := 0; i < 2; i++ {
		w := serve(r, newTestRequest(http.MethodPatch, "/tasks/0/complete", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		completed := decodeBody[MessageResponse](t, w)
		if completed.Message != "Task marked as completed!" || completed.Task == nil || !completed.Task.Completed {
			t.Errorf("Unexpected response: %+v", completed)
		}
	}
}
