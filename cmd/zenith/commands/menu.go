package commands

import (
	"github.com/benvon/zenith-task/internal/console"
	"github.com/spf13/cobra"
)

// NewMenuCmd creates the menu command
func NewMenuCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}
}

func runMenu(cmd *cobra.Command, opts *rootOptions) error {
	lines := console.Lines(cmd.Context(), cmd.InOrStdin())
	s, err := newSession(cmd, opts, lines)
	if err != nil {
		return err
	}
	defer s.close()

	return s.app.Run(cmd.Context())
}
