package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/toyinlola/fmtai/pkg/interfaces"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages offered for formatting",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if format == "json" {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(interfaces.Languages)
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tLABEL\tEXT")
		for _, l := range interfaces.Languages {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", l.ID, l.Label, l.Ext)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
