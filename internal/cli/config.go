package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grammatek/KeyboardKit/pkg/config"
)

func NewConfigCmd(ra *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the kbkit configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the active configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				b, err := ra.Config.MarshalYAML()
				if err != nil {
					return err //nolint:wrapcheck // Already wrapped.
				}

				_, err = cmd.OutOrStdout().Write(b)
				if err != nil {
					return fmt.Errorf("write output: %w", err)
				}

				return nil
			},
		},
		&cobra.Command{
			Use:   "schema",
			Short: "Print the JSON schema of the configuration file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				b, err := config.Schema()
				if err != nil {
					return err //nolint:wrapcheck // Already wrapped.
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
				if err != nil {
					return fmt.Errorf("write output: %w", err)
				}

				return nil
			},
		},
		newConfigWriteCmd(ra),
	)

	return cmd
}

func newConfigWriteCmd(ra *RootArgs) *cobra.Command {
	var force, effective bool

	cmd := &cobra.Command{
		Use:   "write [PATH]",
		Short: "Write the default configuration file",
		Long: "Write the commented default configuration to PATH, or to the active configuration path. " +
			"With --effective, write the active configuration with defaults filled in instead.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ra.ConfigPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				path = config.GetPath()
			}

			if effective {
				return ra.Config.Write(path, force) //nolint:wrapcheck // Already wrapped.
			}

			return config.WriteDefaultConfig(path, force) //nolint:wrapcheck // Already wrapped.
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&effective, "effective", false, "Write the active configuration instead of the default")

	return cmd
}
