// Package console is the interactive front end over the flat-file store:
// menu prompts, task listings and the Pomodoro countdown.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/benvon/zenith-task/internal/filestore"
	"github.com/benvon/zenith-task/internal/store"
	"github.com/benvon/zenith-task/internal/timer"
	"github.com/benvon/zenith-task/internal/validation"
	"go.uber.org/zap"
)

var (
	// ErrNotANumber is reported when a prompt expects a whole number
	ErrNotANumber = errors.New("not a whole number")
	// ErrInputClosed means the input ended while a prompt was waiting
	ErrInputClosed = errors.New("input closed")
)

// App runs console operations against a file store, reading answers
// from lines and writing everything the user sees to out.
type App struct {
	store  *filestore.Store
	lines  <-chan string
	out    io.Writer
	logger *zap.Logger

	workMinutes  int
	breakMinutes int
	tick         time.Duration
	sleep        timer.Sleeper
}

// Option configures an App
type Option func(*App)

// WithLogger sets the logger for I/O failures
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithTimerDefaults sets the minutes offered when a timer prompt is left blank
func WithTimerDefaults(workMinutes, breakMinutes int) Option {
	return func(a *App) {
		a.workMinutes = workMinutes
		a.breakMinutes = breakMinutes
	}
}

// WithClock replaces the countdown tick and sleeper
func WithClock(tick time.Duration, sleep timer.Sleeper) Option {
	return func(a *App) {
		a.tick = tick
		a.sleep = sleep
	}
}

// New creates an App
func New(s *filestore.Store, lines <-chan string, out io.Writer, opts ...Option) *App {
	a := &App{
		store:        s,
		lines:        lines,
		out:          out,
		logger:       zap.NewNop(),
		workMinutes:  timer.DefaultWorkMinutes,
		breakMinutes: timer.DefaultBreakMinutes,
		tick:         timer.DefaultTick,
		sleep:        timer.Sleep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

// prompt prints text and waits for the next input line
func (a *App) prompt(text string) (string, error) {
	a.printf("%s", text)
	line, ok := <-a.lines
	if !ok {
		return "", ErrInputClosed
	}
	return line, nil
}

// promptInt reads a whole number, returning def for a blank answer
func (a *App) promptInt(text string, def int) (int, error) {
	line, err := a.prompt(text)
	if err != nil {
		return 0, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrNotANumber)
	}
	return n, nil
}

// Report prints the user-facing text for err and returns it unchanged
func (a *App) Report(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		a.printf("❌ Invalid task number or category.\n")
	case errors.Is(err, store.ErrInvalidInput):
		a.printf("❌ Invalid input: %v\n", err)
	case errors.Is(err, store.ErrConflict):
		a.printf("⚠️ Category already exists!\n")
	case errors.Is(err, ErrNotANumber):
		a.printf("❌ Please enter a whole number.\n")
	case errors.Is(err, timer.ErrInvalidDuration):
		a.printf("❌ Timer minutes must be between 0 and %d.\n", timer.MaxMinutes)
	case errors.Is(err, ErrInputClosed):
	default:
		a.logger.Error("console_operation_failed", zap.Error(err))
		a.printf("❌ Error: %v\n", err)
	}
	return err
}

// AddTask files a task, creating its category when needed. A blank
// category means General.
func (a *App) AddTask(description, category string) error {
	description = validation.SanitizeLine(description)
	category = validation.SanitizeLine(category)

	result, err := a.store.AddTask(description, category)
	if err != nil {
		return err
	}
	if result.CategoryCreated {
		a.printf("⚠️ Category '%s' does not exist. Creating it now...\n", result.Task.Category)
		a.printf("✅ Category '%s' created!\n", result.Task.Category)
	}
	a.printf("✅ Task added under %s: %s\n", result.Task.Category, result.Task.Description)
	return nil
}

// ViewTasks prints tasks grouped by category with 1-based numbers
func (a *App) ViewTasks() error {
	book, err := a.store.LoadTasks()
	if err != nil {
		return err
	}
	if book.Len() == 0 {
		a.printf("📭 No tasks found.\n")
		return nil
	}

	a.printf("\n📋 Task List:\n")
	for _, category := range book.Categories() {
		a.printf("\n📌 %s:\n", category)
		for i, task := range book.Tasks(category) {
			a.printf("   %d. %s\n", i+1, task.Label())
		}
	}
	return nil
}

// CompleteTask marks task number (1-based) in category as done
func (a *App) CompleteTask(number int, category string) error {
	if _, err := a.store.CompleteTask(number, category); err != nil {
		return err
	}
	a.printf("✅ Task %d in %s marked as completed!\n", number, category)
	return nil
}

// DeleteTask removes task number (1-based) from category
func (a *App) DeleteTask(number int, category string) error {
	task, err := a.store.DeleteTask(number, category)
	if err != nil {
		return err
	}
	a.printf("🗑️ Deleted task: %s\n", task.Label())
	return nil
}

// CreateCategory adds a category name as typed
func (a *App) CreateCategory(name string) error {
	if err := a.store.CreateCategory(name); err != nil {
		return err
	}
	a.printf("✅ Category '%s' created!\n", name)
	return nil
}

// ViewCategories lists every known category
func (a *App) ViewCategories() error {
	categories, err := a.store.LoadCategories()
	if err != nil {
		return err
	}
	a.printf("\n📂 Available Categories:\n")
	for _, c := range categories {
		a.printf(" - %s\n", c)
	}
	return nil
}

// ViewSchedule prints today's study plan: every task under its category
func (a *App) ViewSchedule() error {
	book, err := a.store.LoadTasks()
	if err != nil {
		return err
	}
	a.printf("\n📅 Your Study Schedule for Today:\n")
	for _, category := range book.Categories() {
		a.printf("\n📌 %s:\n", category)
		for _, task := range book.Tasks(category) {
			a.printf("   - %s\n", task.Label())
		}
	}
	return nil
}

// StartTimer runs one work and break session. The next input line ends
// the session early; the line is consumed only in that case.
func (a *App) StartTimer(ctx context.Context, workMinutes, breakMinutes int) (timer.Outcome, error) {
	cfg, err := timer.FromMinutes(workMinutes, breakMinutes)
	if err != nil {
		return "", err
	}
	cfg.Tick = a.tick

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.printf("\n⏳ Pomodoro started! Press ENTER to stop early...\n")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		timer.Listen(sessionCtx, a.lines, cancel)
	}()

	outcome, err := timer.Run(sessionCtx, cfg,
		timer.WithSleeper(a.sleep),
		timer.WithTickFunc(func(phase timer.Phase, remaining time.Duration) {
			icon := "🕒"
			if phase == timer.PhaseBreak {
				icon = "☕"
			}
			a.printf("\r%s %s remaining...", icon, timer.FormatRemaining(remaining))
		}),
		timer.WithPhaseFunc(func(phase timer.Phase) {
			switch phase {
			case timer.PhaseBreak:
				a.printf("\n🚀 Time for a break!\n")
			case timer.PhaseCancelled:
				a.printf("\n🛑 Pomodoro Timer Stopped Early!\n")
			}
		}),
	)

	// Stop the listener before anyone else reads input
	cancel()
	wg.Wait()

	if err != nil {
		return "", err
	}
	if outcome == timer.OutcomeCompleted {
		a.printf("\n🎉 Break over! Ready for another session?\n")
	}
	a.logger.Debug("timer_session_ended", zap.String("outcome", string(outcome)))
	return outcome, nil
}
