package commands

import "github.com/spf13/cobra"

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compile",
		Aliases: []string{"build"},
		Short:   "Compile the project's Solidity sources",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.compileOptions(cmd)
			if err != nil {
				return err
			}
			_, err = c.app.Compile(cmd.Context(), opts)
			return err
		},
	}
	addCompileFlags(cmd)
	return cmd
}
