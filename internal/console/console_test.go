package console

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benvon/zenith-task/internal/filestore"
	"github.com/benvon/zenith-task/internal/store"
	"github.com/benvon/zenith-task/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *filestore.Store {
	t.Helper()
	dir := t.TempDir()
	files := filestore.NewFiles(filepath.Join(dir, "tasks.txt"), filepath.Join(dir, "categories.txt"), nil)
	return filestore.New(files, nil)
}

func instantSleep(context.Context, time.Duration) error { return nil }

func blockingSleep(ctx context.Context, _ time.Duration) error {
	<-ctx.Done()
	return ctx.Err()
}

// runMenu drives the menu with scripted answers and returns its output
func runMenu(t *testing.T, s *filestore.Store, opts []Option, answers ...string) string {
	t.Helper()
	var out bytes.Buffer
	app := New(s, ScriptedLines(answers...), &out, opts...)
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func TestRun_AddAndView(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	out := runMenu(t, s, nil,
		"1", "Write report", "Work",
		"1", "Read", "",
		"2",
		"8",
	)

	assert.Contains(t, out, "🔹 Zenith Task Manager 🔹")
	assert.Contains(t, out, "⚠️ Category 'Work' does not exist. Creating it now...")
	assert.Contains(t, out, "✅ Task added under Work: Write report")
	assert.Contains(t, out, "✅ Task added under General: Read")
	assert.Contains(t, out, "📌 Work:\n   1. [ ] Write report\n")
	assert.Contains(t, out, "📌 General:\n   1. [ ] Read\n")
	assert.True(t, strings.HasSuffix(out, "👋 Exiting Zenith Task. Stay productive!\n"))
}

func TestRun_CompleteAndDelete(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	_, err := s.AddTask("a", "Work")
	require.NoError(t, err)
	_, err = s.AddTask("b", "Work")
	require.NoError(t, err)

	out := runMenu(t, s, nil,
		"3", "Work", "2",
		"4", "Work", "1",
		"2",
		"8",
	)

	assert.Contains(t, out, "✅ Task 2 in Work marked as completed!")
	assert.Contains(t, out, "🗑️ Deleted task: [ ] a")
	assert.Contains(t, out, "📌 Work:\n   1. [✔] b\n")
}

func TestRun_ReportsBadInputAndContinues(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	out := runMenu(t, s, nil,
		"9",
		"3", "Work", "abc",
		"4", "Nowhere", "1",
		"5", "General",
		"8",
	)

	assert.Contains(t, out, "❌ Invalid choice. Please select 1-8.")
	assert.Contains(t, out, "❌ Please enter a whole number.")
	assert.Contains(t, out, "❌ Invalid task number or category.")
	assert.Contains(t, out, "⚠️ Category already exists!")
	assert.Contains(t, out, "👋 Exiting Zenith Task. Stay productive!")
}

func TestRun_EndOfInputExits(t *testing.T) {
	t.Parallel()

	out := runMenu(t, newTestStore(t), nil)
	assert.Contains(t, out, "👋 Exiting Zenith Task. Stay productive!")

	// Input ending halfway through a prompt also exits cleanly
	out = runMenu(t, newTestStore(t), nil, "1", "Write report")
	assert.NotContains(t, out, "Task added")
	assert.Contains(t, out, "👋 Exiting Zenith Task. Stay productive!")
}

func TestRun_TimerStoppedWithEnter(t *testing.T) {
	t.Parallel()

	out := runMenu(t, newTestStore(t), []Option{WithClock(time.Second, blockingSleep)},
		"7", "", "",
		"", // ENTER stops the session
		"8",
	)

	assert.Contains(t, out, "Enter focus time in minutes (default 25): ")
	assert.Contains(t, out, "Enter break time in minutes (default 5): ")
	assert.Contains(t, out, "⏳ Pomodoro started! Press ENTER to stop early...")
	assert.Contains(t, out, "🛑 Pomodoro Timer Stopped Early!")
	assert.NotContains(t, out, "Time for a break!")
	assert.Contains(t, out, "👋 Exiting Zenith Task. Stay productive!")
}

func TestRun_TimerDefaultsFromOptions(t *testing.T) {
	t.Parallel()

	out := runMenu(t, newTestStore(t), []Option{WithTimerDefaults(50, 10), WithClock(time.Second, blockingSleep)},
		"7", "", "", "", "8",
	)

	assert.Contains(t, out, "Enter focus time in minutes (default 50): ")
	assert.Contains(t, out, "Enter break time in minutes (default 10): ")
	assert.Contains(t, out, "🛑 Pomodoro Timer Stopped Early!")
}

func TestStartTimer_Completes(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app := New(newTestStore(t), make(chan string), &out, WithClock(30*time.Second, instantSleep))

	outcome, err := app.StartTimer(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, timer.OutcomeCompleted, outcome)

	got := out.String()
	assert.Contains(t, got, "🕒 1:00 remaining...")
	assert.Contains(t, got, "🕒 0:30 remaining...")
	assert.Contains(t, got, "🚀 Time for a break!")
	assert.Contains(t, got, "☕ 1:00 remaining...")
	assert.Contains(t, got, "🎉 Break over! Ready for another session?")
	assert.NotContains(t, got, "Stopped Early")
}

func TestStartTimer_OutOfRangeMinutes(t *testing.T) {
	t.Parallel()

	for _, minutes := range [][2]int{{-1, 5}, {25, -1}, {timer.MaxMinutes + 1, 5}, {200000000, 5}} {
		var out bytes.Buffer
		app := New(newTestStore(t), make(chan string), &out)

		_, err := app.StartTimer(context.Background(), minutes[0], minutes[1])
		require.ErrorIs(t, err, timer.ErrInvalidDuration)
		assert.Empty(t, out.String())
	}
}

func TestStartTimer_LeavesLaterInputUnread(t *testing.T) {
	t.Parallel()

	lines := make(chan string, 1)
	var out bytes.Buffer
	app := New(newTestStore(t), lines, &out, WithClock(time.Minute, instantSleep))

	_, err := app.StartTimer(context.Background(), 0, 0)
	require.NoError(t, err)

	lines <- "next"
	assert.Equal(t, "next", <-lines)
}

func TestViewTasks_Empty(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app := New(newTestStore(t), ScriptedLines(), &out)
	require.NoError(t, app.ViewTasks())
	assert.Equal(t, "📭 No tasks found.\n", out.String())
}

func TestViewSchedule(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	_, err := s.AddTask("Chapter 3", "Math")
	require.NoError(t, err)
	_, err = s.AddTask("Essay", "English")
	require.NoError(t, err)

	var out bytes.Buffer
	app := New(s, ScriptedLines(), &out)
	require.NoError(t, app.ViewSchedule())

	assert.Equal(t,
		"\n📅 Your Study Schedule for Today:\n\n📌 Math:\n   - [ ] Chapter 3\n\n📌 English:\n   - [ ] Essay\n",
		out.String())
}

func TestViewCategories(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	require.NoError(t, s.CreateCategory("Work"))

	var out bytes.Buffer
	app := New(s, ScriptedLines(), &out)
	require.NoError(t, app.ViewCategories())
	assert.Equal(t, "\n📂 Available Categories:\n - General\n - Work\n", out.String())
}

func TestReport(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app := New(newTestStore(t), ScriptedLines(), &out)

	assert.NoError(t, app.Report(nil))
	assert.Empty(t, out.String())

	err := app.Report(store.ErrNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, "❌ Invalid task number or category.\n", out.String())
}

func TestLines(t *testing.T) {
	t.Parallel()

	ch := Lines(context.Background(), strings.NewReader("one\r\ntwo\n\nthree"))

	var got []string
	for l := range ch {
		got = append(got, l)
	}
	assert.Equal(t, []string{"one", "two", "", "three"}, got)
}
