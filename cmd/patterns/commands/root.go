package commands

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/odp/catalog"
)

// newRootCmd builds the CLI against the given registry.
//
// It exists separately from Execute to allow tests to run commands against
// a buffer without touching os.Stdout.
func newRootCmd(reg *catalog.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:          "patterns",
		Short:        "Run classic design pattern demonstrations",
		SilenceUsage: true,
	}

	root.AddCommand(listCmd(reg), runCmd(reg))
	return root
}

// Execute runs the CLI against the default demo catalog.
func Execute() error {
	return newRootCmd(defaultRegistry()).Execute()
}
