package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sghaida/odp/catalog"
)

func runCmd(reg *catalog.Registry) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [name]",
		Short: "Run one demo, or every demo with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if all {
				if len(args) != 0 {
					return fmt.Errorf("run: --all takes no demo name")
				}
				return reg.RunAll(out)
			}

			if len(args) != 1 {
				return fmt.Errorf("run: demo name required (one of %v)", reg.Names())
			}
			return reg.Run(args[0], out)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every demo in name order")
	return cmd
}
