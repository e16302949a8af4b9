package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sylvainf/bellows/pkg/buildinfo"
	"github.com/sylvainf/bellows/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used in help output and the version line.
const appName = "bellows"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives the human-readable report. Logs go to the logger.
	Out io.Writer
}

// New creates a new CLI instance logging to w at level. Reports go to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand generates a pattern, so
// every generate flag is also accepted at the top level.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	flags := newPatternFlags()

	root := &cobra.Command{
		Use:   appName,
		Short: "Bellows generates flat cutting patterns for tapered camera bellows",
		Long: `Bellows computes the flattened pattern of a tapered, pleated camera bellows
from the front and rear frame sizes and the maximum draw, and exports it as
SVG, PDF or raster images, optionally one file per face and tiled onto A4 or
A3 pages for home printing.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.bind(root)

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner that logs through the CLI logger.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
