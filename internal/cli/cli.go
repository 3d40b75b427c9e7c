// Package cli implements the dropzone command-line interface.
//
// # Commands
//
//   - play: run the puzzle in the terminal
//   - check: validate a puzzle file and print what it contains
//   - init: print the built-in puzzle as a starting point
//
// # Logging
//
// All commands accept --verbose (-v) for debug-level logging. The TUI owns
// the terminal while playing, so play only logs when --log-file is given.
// Loggers travel to commands through context.Context.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information shown by --version. main calls it
// with values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by every command.
type CLI struct {
	stderr  io.Writer
	level   log.Level
	logFile string
	closers []io.Closer
}

// New creates a CLI logging to stderr at level.
func New(stderr io.Writer, level log.Level) *CLI {
	return &CLI{stderr: stderr, level: level}
}

// SetLogLevel changes the level of loggers created from now on.
func (c *CLI) SetLogLevel(level log.Level) {
	c.level = level
}

// RootCommand builds the dropzone command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dropzone",
		Short:        "Dropzone is a drag-and-drop sorting puzzle for the terminal",
		Long:         `Dropzone lays out tiles and bins on a board; drag each tile with the mouse into the bin it belongs to.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := c.logger(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.close()
		},
	}
	root.SetVersionTemplate("{{.Name}} " + version + "\ncommit: " + commit + "\nbuilt: " + date + "\n")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "append logs to this file")

	root.AddCommand(c.playCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.initCommand())
	return root
}

// logger builds the logger for cmd. With --log-file set, logs go to that
// file; otherwise they go to stderr, except for play, which discards them.
func (c *CLI) logger(cmd *cobra.Command) (*log.Logger, error) {
	if c.logFile != "" {
		f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, f)
		return newLogger(f, c.level), nil
	}
	if cmd.Name() == "play" {
		return newLogger(io.Discard, c.level), nil
	}
	return newLogger(c.stderr, c.level), nil
}

func (c *CLI) close() {
	for _, cl := range c.closers {
		_ = cl.Close()
	}
	c.closers = nil
}
