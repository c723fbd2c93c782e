package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benvon/zenith-task/internal/console"
	"github.com/benvon/zenith-task/internal/models"
	"github.com/spf13/cobra"
)

// NewAddCmd creates the add command
func NewAddCmd(opts *rootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <description>...",
		Short: "Add a task",
		Long:  "Add a task under a category. The category is created when it does not exist yet.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			defer s.close()

			return s.report(s.app.AddTask(strings.Join(args, " "), category))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", models.DefaultCategory, "Category to file the task under")

	return cmd
}

// NewListCmd creates the list command
func NewListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks grouped by category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			defer s.close()

			return s.report(s.app.ViewTasks())
		},
	}
}

// NewCompleteCmd creates the complete command
func NewCompleteCmd(opts *rootOptions) *cobra.Command {
	return numberedTaskCmd(opts, "complete", "Mark a task as completed", func(app *console.App, n int, category string) error {
		return app.CompleteTask(n, category)
	})
}

// NewDeleteCmd creates the delete command
func NewDeleteCmd(opts *rootOptions) *cobra.Command {
	return numberedTaskCmd(opts, "delete", "Delete a task", func(app *console.App, n int, category string) error {
		return app.DeleteTask(n, category)
	})
}

// numberedTaskCmd builds a command addressing one task by category and
// its 1-based number as shown by list
func numberedTaskCmd(opts *rootOptions, use, short string, run func(*console.App, int, string) error) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   use + " <number>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			defer s.close()

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return s.report(fmt.Errorf("%q: %w", args[0], console.ErrNotANumber))
			}
			return s.report(run(s.app, n, category))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category of the task (required)")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

// NewScheduleCmd creates the schedule command
func NewScheduleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Show today's study schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			defer s.close()

			return s.report(s.app.ViewSchedule())
		},
	}
}
