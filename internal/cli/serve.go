package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Starts the MCP server. Requests are read from stdin one JSON-RPC message
per line and responses are written to stdout. Logs go to stderr.

This is also what running color-mcp without a subcommand does, so MCP
clients can be configured with just the binary path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	srv := server.New(opts.cfg, opts.build.Version)
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
