package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rileylov/dropzone/internal/config"
	"github.com/rileylov/dropzone/internal/game"
)

func (c *CLI) checkCommand() *cobra.Command {
	var opts puzzleOpts
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a puzzle file and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			// Building the game loads the rules script, so broken hooks fail here.
			g, err := game.New(cfg, logger)
			if err != nil {
				return err
			}
			defer g.Close()

			printSummary(cmd.OutOrStdout(), cfg, g)
			logger.Debug("puzzle ok", "config", opts.config)
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func printSummary(w io.Writer, cfg config.Config, g *game.Game) {
	d := cfg.Drag
	fmt.Fprintf(w, "%s\n", cfg.Title)
	fmt.Fprintf(w, "board:   %dx%d, %d zones, %d tiles\n",
		cfg.Board.Width, cfg.Board.Height, len(cfg.Board.Zones), len(cfg.Board.Tiles))
	fmt.Fprintf(w, "drag:    start=%s success=%s failure=%s lock=%t align=%t\n",
		d.Start, d.OnSuccess, d.OnFailure, d.LockOnSuccess, d.AlignOnSuccess)
	fmt.Fprintf(w, "rules:   %s\n", g.Rules)
	for _, z := range cfg.Board.Zones {
		accepts := z.Accepts
		if accepts == "" {
			accepts = "anything"
		}
		fmt.Fprintf(w, "zone:    %s (takes %s, holds %d)\n", z.Label, accepts, z.Capacity)
	}
}
