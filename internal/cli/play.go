package cli

import (
	"fmt"

	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/rileylov/dropzone/internal/config"
	"github.com/rileylov/dropzone/internal/game"
	"github.com/rileylov/dropzone/internal/tui"
)

type puzzleOpts struct {
	config string
	rules  string
}

func (o *puzzleOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.config, "config", "c", "", "puzzle file (default: built-in puzzle)")
	cmd.Flags().StringVarP(&o.rules, "rules", "r", "", "Lua rules script, overrides the puzzle's [rules] script")
}

// load reads the puzzle named by the flags, falling back to the built-in one.
func (o *puzzleOpts) load() (config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return config.Config{}, err
		}
	}
	if o.rules != "" {
		cfg.Rules.Script = o.rules
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (c *CLI) playCommand() *cobra.Command {
	var opts puzzleOpts
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a puzzle in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := opts.load()
			if err != nil {
				return err
			}

			zone.NewGlobal()
			defer zone.Close()

			m, err := tui.New(func() (*game.Game, error) {
				return game.New(cfg, logger)
			}, tui.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("start game: %w", err)
			}
			logger.Info("playing", "title", cfg.Title, "config", opts.config)
			return tui.Run(ctx, m)
		},
	}
	opts.register(cmd)
	return cmd
}
