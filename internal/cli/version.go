package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grammatek/KeyboardKit/pkg/version"
)

func NewVersionCmd(_ *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cmdName, version.Summary())
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
	}
}
