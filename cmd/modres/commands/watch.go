package commands

import "github.com/spf13/cobra"

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [specifiers...]",
		Short: "Resolve specifiers again whenever the project changes",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			return c.app.Watch(cmd.Context(), args, resolveOptions(cmd))
		},
	}
	addResolveFlags(cmd)
	return cmd
}
