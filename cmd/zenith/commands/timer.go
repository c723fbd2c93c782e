package commands

import (
	"github.com/benvon/zenith-task/internal/console"
	"github.com/spf13/cobra"
)

// NewTimerCmd creates the timer command
func NewTimerCmd(opts *rootOptions) *cobra.Command {
	var workMinutes, breakMinutes int

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run one Pomodoro work and break session",
		Long:  "Count down a work phase followed by a break. Press ENTER to stop early.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := console.Lines(cmd.Context(), cmd.InOrStdin())
			s, err := newSession(cmd, opts, lines)
			if err != nil {
				return err
			}
			defer s.close()

			if !cmd.Flags().Changed("work") {
				workMinutes = s.cfg.WorkMinutes
			}
			if !cmd.Flags().Changed("break") {
				breakMinutes = s.cfg.BreakMinutes
			}

			_, err = s.app.StartTimer(cmd.Context(), workMinutes, breakMinutes)
			return s.report(err)
		},
	}

	cmd.Flags().IntVarP(&workMinutes, "work", "w", 25, "Focus time in minutes (default from config)")
	cmd.Flags().IntVarP(&breakMinutes, "break", "b", 5, "Break time in minutes (default from config)")

	return cmd
}
