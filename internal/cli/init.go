package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rileylov/dropzone/internal/config"
)

func (c *CLI) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print the built-in puzzle as TOML",
		Long:  `Print the built-in puzzle. Redirect it to a file and edit it to make your own.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.DefaultTOML())
			return err
		},
	}
}
