package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sghaida/odp/catalog"
)

func listCmd(reg *catalog.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the demo names and one-line descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range reg.Names() {
				d, err := reg.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Brief)
			}
			return tw.Flush()
		},
	}
}
