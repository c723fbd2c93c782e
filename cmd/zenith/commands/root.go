package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benvon/zenith-task/internal/config"
	"github.com/benvon/zenith-task/internal/console"
	"github.com/benvon/zenith-task/internal/filestore"
	"github.com/benvon/zenith-task/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath string
	debug      bool
}

// reportedError marks failures the console already explained to the user
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// NewRootCmd creates the zenith command tree. Without a subcommand the
// interactive menu starts.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "zenith",
		Short:         "Zenith task manager",
		Long:          "Track tasks by category in plain text files and run Pomodoro focus sessions",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the YAML config file (default "+config.DefaultConsoleConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(NewMenuCmd(opts))
	rootCmd.AddCommand(NewAddCmd(opts))
	rootCmd.AddCommand(NewListCmd(opts))
	rootCmd.AddCommand(NewCompleteCmd(opts))
	rootCmd.AddCommand(NewDeleteCmd(opts))
	rootCmd.AddCommand(NewCategoryCmd(opts))
	rootCmd.AddCommand(NewTimerCmd(opts))
	rootCmd.AddCommand(NewScheduleCmd(opts))
	rootCmd.AddCommand(NewConfigCmd(opts))

	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context, args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	return execute(ctx, rootCmd, os.Stderr)
}

func execute(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

// session bundles what a command needs to talk to the task files
type session struct {
	cfg    *config.ConsoleConfig
	app    *console.App
	logger *zap.Logger
}

func (s *session) close() {
	_ = logger.Sync(s.logger)
}

// report prints err through the console and marks it as handled
func (s *session) report(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: s.app.Report(err)}
}

func newSession(cmd *cobra.Command, opts *rootOptions, lines <-chan string) (*session, error) {
	cfg, err := config.LoadConsole(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewConsoleLogger(opts.debug || cfg.Debug, cmd.ErrOrStderr())
	log.Debug("console_config_loaded",
		zap.String("tasks_file", cfg.TasksFile),
		zap.String("categories_file", cfg.CategoriesFile),
	)

	files := filestore.NewFiles(cfg.TasksFile, cfg.CategoriesFile, log)
	if lines == nil {
		lines = console.ScriptedLines()
	}
	app := console.New(filestore.New(files, log), lines, cmd.OutOrStdout(),
		console.WithLogger(log),
		console.WithTimerDefaults(cfg.WorkMinutes, cfg.BreakMinutes),
	)

	return &session{cfg: cfg, app: app, logger: log}, nil
}
