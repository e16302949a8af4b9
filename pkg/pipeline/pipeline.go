// Package pipeline runs the bellows generator from options to files on disk.
//
// This package implements the complete compute → layout → export pipeline
// used by the CLI. Configuration is an explicit [Options] value: start from
// [DefaultOptions], overlay a config file with [LoadOptions], then apply
// flags. Nothing is read from package-level state.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Compute: validate dimensions and build the pattern model
//  2. Layout: place the pattern on one drawing or one drawing per face, then
//     optionally tile it onto A4/A3 pages
//  3. Export: encode every drawing and commit it atomically to disk
//
// Each stage can be run on its own through the [Runner].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.DefaultOptions()
//	opts.Format = "pdf"
//	opts.Split = "a4"
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range result.Artifacts {
//	    fmt.Println(a.Path)
//	}
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sylvainf/bellows/pkg/bellows"
	"github.com/sylvainf/bellows/pkg/errors"
	pio "github.com/sylvainf/bellows/pkg/io"
	"github.com/sylvainf/bellows/pkg/layout"
	"github.com/sylvainf/bellows/pkg/render/sink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutput is the output file name when none is given. Its extension
	// is replaced by the extension of the chosen format.
	DefaultOutput = "bellows_pattern.svg"

	// DefaultFormat is the default export format.
	DefaultFormat = sink.FormatSVG

	// DefaultSplit disables page splitting.
	DefaultSplit = "none"

	// DefaultDPI is the raster resolution for PNG, JPEG and WebP output.
	DefaultDPI = sink.DefaultDPI
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one generator run. It is passed by
// value; the pipeline never modifies the caller's copy.
type Options struct {
	Camera       bellows.CameraSpec         `json:"camera" yaml:"camera" toml:"camera"`
	Construction bellows.ConstructionParams `json:"construction" yaml:"construction" toml:"construction"`
	Render       layout.RenderParams        `json:"render" yaml:"render" toml:"render"`

	// SeparateFaces writes one file per face instead of one combined pattern.
	SeparateFaces bool `json:"separate_faces" yaml:"separate_faces" toml:"separate_faces"`

	// Split tiles each drawing onto pages: "none", "a4" or "a3".
	Split string `json:"split" yaml:"split" toml:"split"`

	Format string  `json:"format" yaml:"format" toml:"format"`
	DPI    float64 `json:"dpi" yaml:"dpi" toml:"dpi"`
	Output string  `json:"output" yaml:"output" toml:"output"`
}

// DefaultOptions returns the stock configuration: a 96×96 mm front standard,
// a 145×145 mm rear standard and 300 mm of draw, written to
// bellows_pattern.svg.
func DefaultOptions() Options {
	return Options{
		Camera:       bellows.DefaultCamera(),
		Construction: bellows.DefaultConstruction(),
		Render:       layout.DefaultRenderParams(),
		Split:        DefaultSplit,
		Format:       DefaultFormat,
		DPI:          DefaultDPI,
		Output:       DefaultOutput,
	}
}

// LoadOptions overlays the TOML, YAML or JSON file at path onto base. Keys
// absent from the file keep their value from base.
func LoadOptions(path string, base Options) (Options, error) {
	opts := base
	if err := pio.DecodeFile(path, &opts); err != nil {
		return base, err
	}
	return opts, nil
}

// Validate checks every option before any geometry is computed.
func (o Options) Validate() error {
	if err := o.Camera.Validate(); err != nil {
		return err
	}
	if err := o.Construction.Validate(); err != nil {
		return err
	}
	if err := ValidateRender(o.Render); err != nil {
		return err
	}
	if _, err := o.Exporter(); err != nil {
		return err
	}
	if _, err := o.PageSize(); err != nil {
		return err
	}
	if err := errors.ValidatePositive("DPI", o.DPI); err != nil {
		return err
	}
	return errors.ValidateOutputPath(o.Output)
}

// ValidateRender checks margin, stroke width and stroke color.
func ValidateRender(p layout.RenderParams) error {
	if err := errors.ValidateNonNegative("margin", p.Margin); err != nil {
		return err
	}
	if err := errors.ValidatePositive("stroke width", p.StrokeWidth); err != nil {
		return err
	}
	_, err := sink.ParseColor(p.StrokeColor)
	return err
}

// Exporter returns the exporter for the configured format and DPI.
func (o Options) Exporter() (sink.Exporter, error) {
	return sink.New(o.Format, o.DPI)
}

// PageSize returns the configured page size; the zero value means no split.
func (o Options) PageSize() (layout.PageSize, error) {
	return layout.ParsePageSize(o.Split)
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Model is the computed pattern.
	Model *bellows.PatternModel

	// Artifacts lists the written files in the order they were produced.
	Artifacts []Artifact

	// Stats contains timing and size information.
	Stats Stats
}

// Paths returns the paths of all written files.
func (r *Result) Paths() []string {
	paths := make([]string, len(r.Artifacts))
	for i, a := range r.Artifacts {
		paths[i] = a.Path
	}
	return paths
}

// Artifact is one written output file.
type Artifact struct {
	Path   string
	Name   string // drawing name, e.g. "face1_top_page_1_2"; empty for the full pattern
	Format string
	Size   int64
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Folds       int
	Pairs       int
	Drawings    int
	Pages       int
	ComputeTime time.Duration
	LayoutTime  time.Duration
	ExportTime  time.Duration
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
