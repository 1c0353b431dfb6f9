package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/adapt"
	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/ironsheep/color-tools-mcp/internal/terminal"
	"github.com/ironsheep/color-tools-mcp/pkg/logging"
)

// background returns args[i] when present, otherwise the terminal's
// background (or the configured fallback).
func (o *rootOptions) background(args []string, i int) (string, error) {
	if len(args) > i {
		return color.NormalizeHex(args[i])
	}
	bg, source := terminal.DetectBackground(o.cfg.Terminal.DetectEnabled(), o.cfg.Terminal.Background)
	logging.Debug("cli", "using %s background %s", source, bg)
	return bg, nil
}

func newContrastCmd(opts *rootOptions) *cobra.Command {
	var delta float64

	cmd := &cobra.Command{
		Use:   "contrast FOREGROUND [BACKGROUND]",
		Short: "Compute the contrast ratio of two colors",
		Long: `Computes the WCAG contrast ratio of FOREGROUND on BACKGROUND and grades it.

When BACKGROUND is omitted the terminal is asked for its background color,
falling back to terminal.background from the configuration.`,
		Example: `  color-mcp contrast '#777777' '#1e1e1e'
  color-mcp contrast ffd700`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("delta") {
				delta = opts.cfg.Contrast.Delta
			}
			if delta < 0 {
				return fmt.Errorf("--delta %v must be non-negative", delta)
			}

			fg, err := color.DecodeHex(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bgHex, err := opts.background(args, 1)
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}
			bg, _ := color.DecodeHex(bgHex)

			res := server.ContrastResult{
				Foreground: fg.Hex(),
				Background: bg.Hex(),
				LuminanceA: fg.Luminance(),
				LuminanceB: bg.Luminance(),
				Delta:      delta,
			}
			res.Ratio = color.ContrastRatioDelta(res.LuminanceA, res.LuminanceB, delta)
			res.Level = adapt.Grade(res.Ratio)

			if opts.jsonOutput {
				return printJSON(cmd, res)
			}

			printTable(cmd, []string{"", "Color", "Luminance"}, [][]string{
				{"Foreground", res.Foreground, formatFloat(res.LuminanceA)},
				{"Background", res.Background, formatFloat(res.LuminanceB)},
				{"Ratio", formatRatio(res.Ratio), string(res.Level)},
			}, terminal.Swatch(res.Foreground, res.Background, "The quick brown fox"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&delta, "delta", color.DefaultContrastDelta, "additive offset in the ratio formula (default from config)")
	return cmd
}
