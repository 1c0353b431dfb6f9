package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/adapt"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/ironsheep/color-tools-mcp/internal/terminal"
)

func newAdaptCmd(opts *rootOptions) *cobra.Command {
	var (
		minRatio float64
		step     float64
		bestText bool
	)

	cmd := &cobra.Command{
		Use:   "adapt FOREGROUND [BACKGROUND]",
		Short: "Shade a foreground color until it is readable on a background",
		Long: `Lightens or darkens FOREGROUND in steps until its contrast ratio on
BACKGROUND reaches --min-ratio. Colors that already pass are left alone.

When BACKGROUND is omitted the terminal is asked for its background color,
falling back to terminal.background from the configuration.

With --best-text FOREGROUND is ignored and black or white is chosen,
whichever contrasts more with BACKGROUND.`,
		Example: `  color-mcp adapt '#777777' '#1e1e1e'
  color-mcp adapt 336699 --min-ratio 7
  color-mcp adapt - '#ffd700' --best-text`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := opts.cfg.Contrast
			if cmd.Flags().Changed("min-ratio") {
				o.MinRatio = minRatio
			}
			if cmd.Flags().Changed("step") {
				o.Step = step
			}

			bg, err := opts.background(args, 1)
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			if bestText {
				return runBestText(cmd, opts, bg)
			}

			res, err := adapt.EnsureContrast(args[0], bg, o)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return printJSON(cmd, res)
			}

			status := "already readable"
			switch {
			case res.Changed && res.Satisfied:
				status = "adjusted"
			case !res.Satisfied:
				status = "target not reachable, best effort"
			}

			printTable(cmd, []string{"", "Color", "Ratio", "Level"}, [][]string{
				{"Original", res.Foreground, formatRatio(res.OriginalRatio), string(adapt.Grade(res.OriginalRatio))},
				{"Adjusted", res.Adjusted, formatRatio(res.Ratio), string(res.Level)},
				{"Shade", formatFloat(res.Percent), "drift " + formatFloat(res.Drift), status},
			}, terminal.Swatch(res.Foreground, res.Background, "before")+" "+terminal.Swatch(res.Adjusted, res.Background, "after"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&minRatio, "min-ratio", adapt.RatioAA, "contrast ratio to reach (default from config)")
	cmd.Flags().Float64Var(&step, "step", 0.1, "shade increment per iteration (default from config)")
	cmd.Flags().BoolVar(&bestText, "best-text", false, "pick black or white text for the background instead")
	return cmd
}

func runBestText(cmd *cobra.Command, opts *rootOptions, bg string) error {
	text, ratio, err := adapt.BestText(bg)
	if err != nil {
		return err
	}
	res := server.BestTextResult{Background: bg, Text: text, Ratio: ratio, Level: adapt.Grade(ratio)}

	if opts.jsonOutput {
		return printJSON(cmd, res)
	}

	printTable(cmd, []string{"", "Color", "Ratio", "Level"}, [][]string{
		{"Background", res.Background, "", ""},
		{"Text", res.Text, formatRatio(res.Ratio), string(res.Level)},
	}, terminal.Swatch(res.Text, res.Background, "The quick brown fox"))
	return nil
}
