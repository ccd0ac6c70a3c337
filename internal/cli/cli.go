package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/mosaic"
	"github.com/gogpu/mosaic/screen"
)

// appName is used for the config directory and window titles.
const appName = "mosaic"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	// Screen answers --fit and the screen command.
	Screen screen.Provider
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Screen: screen.Primary(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mosaic tiles same-sized images into one grid",
		Long:         `Mosaic composes equally sized images into a single grid canvas, optionally scales it, and shows it in the terminal.`,
		Version:      mosaic.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			mosaic.SetLogger(slog.New(c.Logger))
			return nil
		},
	}

	root.AddCommand(c.showCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.screenCommand())

	return root
}
