package cli

import (
	"github.com/spf13/cobra"

	"github.com/grammatek/KeyboardKit/pkg/mcp"
)

func NewServeMCPCmd(_ *RootArgs) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve-mcp",
		Short: "Serve locale and screen lookups over MCP",
		Long:  "Serve locale and screen lookups over the Model Context Protocol, on stdio or, if --address is set, over streamable HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcp.NewServer(address).Serve(cmd.Context()) //nolint:wrapcheck // Already wrapped.
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Serve over HTTP at this address instead of stdio")

	return cmd
}
