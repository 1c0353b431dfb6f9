// Package cli implements the color-mcp command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/pkg/logging"
)

// BuildInfo is stamped into the binary with ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// rootOptions holds the persistent flags and the configuration they produce.
type rootOptions struct {
	configPath string
	logLevel   string
	jsonOutput bool

	build BuildInfo
	cfg   config.Config
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand starts the MCP server.
func NewRootCmd(build BuildInfo) *cobra.Command {
	opts := &rootOptions{build: build}

	rootCmd := &cobra.Command{
		Use:   "color-mcp",
		Short: "Color contrast tools over MCP and on the command line",
		Long: `color-mcp decodes hex colors, measures WCAG luminance and contrast, and
lightens or darkens colors until text is readable on its background.

Run without a subcommand (or with 'serve') it speaks the Model Context
Protocol on stdin/stdout so AI assistants can call the same operations.

Configuration is read from ~/.config/color-mcp/config.yaml, then
./.color-mcp/config.yaml, then --config, then COLOR_MCP_* variables.`,
		Version: build.Version,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. invalid colors)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	rootCmd.SetVersionTemplate(`{{printf "color-mcp version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (merged over ~/.config/color-mcp/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newDecodeCmd(opts))
	rootCmd.AddCommand(newLuminanceCmd(opts))
	rootCmd.AddCommand(newContrastCmd(opts))
	rootCmd.AddCommand(newShadeCmd(opts))
	rootCmd.AddCommand(newAdaptCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))

	return rootCmd
}

// init loads configuration and sets up logging. Logs always go to stderr;
// stdout carries results or the MCP protocol.
func (o *rootOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logging.Init(level, cmd.ErrOrStderr())
	logging.Debug("cli", "configuration loaded: %+v", cfg)

	o.cfg = cfg
	return nil
}

// Execute runs the command tree and exits non-zero on failure.
// This is called by main.main().
func Execute(build BuildInfo) {
	if err := NewRootCmd(build).Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
