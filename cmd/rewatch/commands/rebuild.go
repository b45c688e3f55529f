package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild [watches...]",
		Short: "Replace the snapshot with the current state without reporting changes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Rebuild(cmd.Context(), options(cmd, args))
		},
	}
}
