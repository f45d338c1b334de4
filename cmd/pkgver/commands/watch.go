package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the version file whenever the lock or config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := c.overrides()
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), overrides)
		},
	}
}
