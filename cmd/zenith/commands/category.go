package commands

import (
	"github.com/spf13/cobra"
)

// NewCategoryCmd creates the category command
func NewCategoryCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	cmd.AddCommand(newCategoryCreateCmd(opts))
	cmd.AddCommand(newCategoryListCmd(opts))
	return cmd
}

func newCategoryCreateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			defer s.close()

			return s.report(s.app.CreateCategory(args[0]))
		},
	}
}

func newCategoryListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, nil)
			if err != nil {
				return err
			}
			defer s.close()

			return s.report(s.app.ViewCategories())
		},
	}
}
