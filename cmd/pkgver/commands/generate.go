package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the version file from the lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := c.overrides()
			if err != nil {
				return err
			}
			_, err = c.app.DumpVersions(cmd.Context(), overrides)
			return err
		},
	}
}
