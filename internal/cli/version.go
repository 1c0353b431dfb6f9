package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of color-mcp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return printJSON(cmd, map[string]string{
					"version":    opts.build.Version,
					"build_time": opts.build.BuildTime,
					"git_commit": opts.build.GitCommit,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "color-mcp %s\n", opts.build.Version)
			fmt.Fprintf(out, "  Build time: %s\n", opts.build.BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", opts.build.GitCommit)
			return nil
		},
	}
}
