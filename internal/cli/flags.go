package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sylvainf/bellows/pkg/pipeline"
	"github.com/sylvainf/bellows/pkg/render/sink"
)

// patternFlags holds the command-line flags shared by generate, inspect and
// the root command.
type patternFlags struct {
	opts    pipeline.Options
	config  string // TOML, YAML or JSON options file
	splitA4 bool   // shorthand for --split a4
	splitA3 bool   // shorthand for --split a3; wins over --split-a4
}

func newPatternFlags() *patternFlags {
	return &patternFlags{opts: pipeline.DefaultOptions()}
}

// bind registers the flags on cmd.
func (f *patternFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	bindOptions(fs, &f.opts)
	fs.StringVarP(&f.config, "config", "c", "", "load options from a TOML, YAML or JSON file")
	fs.BoolVar(&f.splitA4, "split-a4", false, "split each drawing into A4 pages")
	fs.BoolVar(&f.splitA3, "split-a3", false, "split each drawing into A3 pages (overrides --split-a4)")

	fs.SortFlags = false
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(sink.Formats(), cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("split", cobra.FixedCompletions([]string{"none", "a4", "a3"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.MarkFlagFilename("config", "toml", "yaml", "yml", "json")
}

// bindOptions registers one flag per option, using the current values of o
// as defaults.
func bindOptions(fs *pflag.FlagSet, o *pipeline.Options) {
	// Camera dimensions
	fs.Float64Var(&o.Camera.FrontWidth, "front-w", o.Camera.FrontWidth, "front frame width (mm)")
	fs.Float64Var(&o.Camera.FrontHeight, "front-h", o.Camera.FrontHeight, "front frame height (mm)")
	fs.Float64Var(&o.Camera.RearWidth, "rear-w", o.Camera.RearWidth, "rear frame width (mm)")
	fs.Float64Var(&o.Camera.RearHeight, "rear-h", o.Camera.RearHeight, "rear frame height (mm)")
	fs.Float64Var(&o.Camera.MaxDraw, "max-draw", o.Camera.MaxDraw, "maximum extension (mm)")

	// Construction
	fs.Float64Var(&o.Construction.StiffenerHeight, "stiffener-height", o.Construction.StiffenerHeight, "stiffener card depth (mm)")
	fs.Float64Var(&o.Construction.GapHeight, "gap-height", o.Construction.GapHeight, "fold gap between stiffeners (mm)")
	fs.Float64Var(&o.Construction.Chamfer, "chamfer", o.Construction.Chamfer, "corner chamfer (mm)")
	fs.Float64Var(&o.Construction.FaceGap, "face-gap", o.Construction.FaceGap, "spacing between faces in the combined pattern (mm)")

	// Rendering
	fs.Float64Var(&o.Render.Margin, "margin", o.Render.Margin, "margin around each drawing (mm)")
	fs.Float64Var(&o.Render.StrokeWidth, "stroke-width", o.Render.StrokeWidth, "line width (mm)")
	fs.StringVar(&o.Render.StrokeColor, "stroke-color", o.Render.StrokeColor, "line color: SVG color name or #rrggbb")

	// Output
	fs.BoolVar(&o.SeparateFaces, "separate-faces", o.SeparateFaces, "write one file per face")
	fs.StringVar(&o.Split, "split", o.Split, "tile drawings onto pages: none, a4, a3")
	fs.StringVarP(&o.Format, "format", "f", o.Format, "output format: svg, png, jpeg, webp, pdf")
	fs.Float64Var(&o.DPI, "dpi", o.DPI, "raster resolution in dots per inch")
	fs.StringVarP(&o.Output, "output", "o", o.Output, "output file; the extension follows --format")
}

// resolve returns the options for one run: defaults, then the --config
// file, then every flag set explicitly on cmd.
func (f *patternFlags) resolve(cmd *cobra.Command) (pipeline.Options, error) {
	opts := f.opts
	if f.config != "" {
		loaded, err := pipeline.LoadOptions(f.config, pipeline.DefaultOptions())
		if err != nil {
			return opts, err
		}
		replay := pflag.NewFlagSet(appName, pflag.ContinueOnError)
		bindOptions(replay, &loaded)
		cmd.Flags().Visit(func(fl *pflag.Flag) {
			if replay.Lookup(fl.Name) != nil && err == nil {
				err = replay.Set(fl.Name, fl.Value.String())
			}
		})
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	switch {
	case f.splitA3:
		opts.Split = "a3"
	case f.splitA4:
		opts.Split = "a4"
	}
	return opts, nil
}
