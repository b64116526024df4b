package commands

import "github.com/spf13/cobra"

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the artifacts and the files cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := c.workingDir()
			if err != nil {
				return err
			}
			return c.app.Clean(cmd.Context(), cwd)
		},
	}
}
