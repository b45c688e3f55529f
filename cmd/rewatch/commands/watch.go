package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rewatch/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [watches...]",
		Short: "Detect and report changes continuously until interrupted",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Options: options(cmd, args),
				JSON:    jsonMode,
			})
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Write one JSON document per changed watch")
	return cmd
}
