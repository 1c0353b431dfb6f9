package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/ironsheep/color-tools-mcp/internal/terminal"
)

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX...",
		Short: "Show the channels of one or more hex colors",
		Example: `  color-mcp decode '#1E90FF'
  color-mcp decode ff8800 336699 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]server.DecodeResult, 0, len(args))
			for _, arg := range args {
				c, err := color.DecodeHex(arg)
				if err != nil {
					return err
				}
				results = append(results, server.DecodeResult{Hex: c.Hex(), RGB: c, Packed: c.Packed()})
			}

			if opts.jsonOutput {
				return printJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					terminal.Block(r.Hex),
					r.Hex,
					strconv.Itoa(int(r.RGB.R)),
					strconv.Itoa(int(r.RGB.G)),
					strconv.Itoa(int(r.RGB.B)),
					fmt.Sprintf("%d", r.Packed),
				})
			}
			printTable(cmd, []string{"", "Hex", "R", "G", "B", "Packed"}, rows, "")
			return nil
		},
	}
}

func newLuminanceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "luminance HEX...",
		Short:   "Print the WCAG relative luminance of one or more colors",
		Example: `  color-mcp luminance '#808080' '#1e90ff'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]server.LuminanceResult, 0, len(args))
			for _, arg := range args {
				c, err := color.DecodeHex(arg)
				if err != nil {
					return err
				}
				results = append(results, server.LuminanceResult{Hex: c.Hex(), Luminance: c.Luminance()})
			}

			if opts.jsonOutput {
				return printJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{terminal.Block(r.Hex), r.Hex, formatFloat(r.Luminance)})
			}
			printTable(cmd, []string{"", "Hex", "Luminance"}, rows, "")
			return nil
		},
	}
}
