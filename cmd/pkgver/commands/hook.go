package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newHookCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "hook <event>",
		Short: "Handle a dependency manager lifecycle event",
		Long: "Handle a dependency manager lifecycle event.\n\n" +
			"Register this command for post-install-cmd and post-update-cmd so the\n" +
			"version file is regenerated whenever the installed packages change.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				out := cmd.OutOrStdout()
				for _, event := range c.app.Events() {
					_, _ = fmt.Fprintln(out, event)
				}
				return nil
			}
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			overrides, err := c.overrides()
			if err != nil {
				return err
			}
			return c.app.HandleEvent(cmd.Context(), args[0], overrides)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the events pkgver handles")
	return cmd
}
