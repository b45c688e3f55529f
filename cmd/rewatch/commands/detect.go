package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rewatch/internal/app"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [watches...]",
		Short: "Report changes since the last pass and update the snapshot",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonMode, _ := cmd.Flags().GetBool("json")
			exitCode, _ := cmd.Flags().GetBool("exit-code")

			return c.app.Detect(cmd.Context(), app.DetectOptions{
				Options:  options(cmd, args),
				JSON:     jsonMode,
				ExitCode: exitCode,
			})
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Write one JSON document per watch")
	cmd.Flags().Bool("exit-code", false, "Exit with status 1 when any watch changed")
	return cmd
}
