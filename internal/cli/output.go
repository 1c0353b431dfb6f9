package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/terminal"
)

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printTable writes a rendered table followed by an optional preview line.
func printTable(cmd *cobra.Command, headers []string, rows [][]string, preview string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, terminal.Table(headers, rows))
	if preview != "" {
		fmt.Fprintln(out, preview)
	}
}

func formatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64) + ":1"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
