package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/color"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/ironsheep/color-tools-mcp/internal/terminal"
)

func newShadeCmd(opts *rootOptions) *cobra.Command {
	var percent float64

	cmd := &cobra.Command{
		Use:   "shade HEX --percent P",
		Short: "Lighten or darken a color",
		Long: `Moves every channel of HEX toward white (positive percent) or black
(negative percent). P is a fraction in [-1, 1]: 0.25 lightens by 25%.`,
		Example: `  color-mcp shade '#1e90ff' --percent 0.25
  color-mcp shade 1e90ff --percent=-0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := color.ShadeColor(args[0], percent)
			if err != nil {
				return err
			}
			in, _ := color.NormalizeHex(args[0])
			res := server.ShadeResult{Input: in, Output: out, Percent: percent}

			if opts.jsonOutput {
				return printJSON(cmd, res)
			}

			printTable(cmd, []string{"", "Color"}, [][]string{
				{"Input", res.Input},
				{"Percent", formatFloat(res.Percent)},
				{"Output", res.Output},
			}, terminal.Block(res.Input)+" → "+terminal.Block(res.Output))
			return nil
		},
	}

	cmd.Flags().Float64VarP(&percent, "percent", "p", 0, "shade fraction in [-1, 1]")
	_ = cmd.MarkFlagRequired("percent")
	return cmd
}
