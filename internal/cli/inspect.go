package cli

import (
	"github.com/spf13/cobra"

	"github.com/sylvainf/bellows/pkg/io"
)

// inspectCommand creates the inspect command: it computes the pattern
// without rendering it, prints the dimensions of every face and can dump
// the full model for other tools.
func (c *CLI) inspectCommand() *cobra.Command {
	flags := newPatternFlags()
	var dump string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the dimensions of a bellows pattern without rendering it",
		Example: `  bellows inspect --max-draw 250
  bellows inspect --config camera.yaml --dump model.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			m, err := c.newRunner().Compute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			printSummary(c.Out, m.Summary())
			printPanels(c.Out, m)

			if dump == "" {
				return nil
			}
			if err := io.ExportModel(m, dump); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("dumped model", "path", dump)
			printSuccess(c.Out, "Wrote model")
			printFile(c.Out, dump)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&dump, "dump", "", "write the computed model to a .json or .yaml file")
	_ = cmd.MarkFlagFilename("dump", "json", "yaml", "yml")
	return cmd
}
