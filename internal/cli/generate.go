package cli

import (
	"github.com/spf13/cobra"

	"github.com/sylvainf/bellows/pkg/errors"
)

// generateCommand creates the generate command, which computes the pattern
// and writes it in the chosen format.
func (c *CLI) generateCommand() *cobra.Command {
	flags := newPatternFlags()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a bellows pattern",
		Long: `Generate computes the bellows pattern and writes it to --output.

The extension of --output is replaced by the extension of --format. With
--separate-faces each face is written to its own file (name_face1_top.svg,
...); with --split a4 or a3 each drawing is tiled onto pages
(name_page_1_2.svg, ...). Drawings that already fit on one page are kept whole.`,
		Example: `  bellows generate --front-w 96 --front-h 96 --rear-w 145 --rear-h 145 --max-draw 300
  bellows generate --format pdf --separate-faces --split a4 -o out/pattern.pdf
  bellows generate --config camera.toml --stroke-color red`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, flags)
		},
	}

	flags.bind(cmd)
	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, flags *patternFlags) error {
	opts, err := flags.resolve(cmd)
	if err != nil {
		return err
	}

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(cmd.Context(), opts)
	if err != nil {
		logger.Debug("generation failed", "code", errors.GetCode(err))
		return err
	}
	prog.done("Generated " + plural(len(result.Artifacts), "file"))

	printSummary(c.Out, result.Model.Summary())
	printArtifacts(c.Out, result)
	return nil
}
