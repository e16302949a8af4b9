package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sylvainf/bellows/pkg/bellows"
	"github.com/sylvainf/bellows/pkg/observability"
)

// Runner executes the pipeline and reports progress through its logger.
//
// The Runner holds no state besides the logger, so one Runner can serve
// several runs with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete compute → layout → export pipeline. Stage
// events are reported to the registered observability hooks.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	hooks := observability.Pipeline()

	// Stage 1: Compute
	computeStart := time.Now()
	hooks.OnComputeStart(ctx, opts.Camera.String())
	m, err := r.Compute(ctx, opts)
	folds := 0
	if m != nil {
		folds = m.Folds
	}
	hooks.OnComputeComplete(ctx, folds, time.Since(computeStart), err)
	if err != nil {
		return nil, err
	}
	exp, err := opts.Exporter()
	if err != nil {
		return nil, err
	}
	result := &Result{Model: m}
	result.Stats.Folds = m.Folds
	result.Stats.Pairs = m.Pairs
	result.Stats.ComputeTime = time.Since(computeStart)

	r.Logger.Info("computed pattern",
		"folds", m.Folds,
		"pairs", m.Pairs,
		"size", fmt.Sprintf("%.1f×%.1f mm", m.Width(), m.Height()),
		"duration", result.Stats.ComputeTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	size, _ := opts.PageSize()
	hooks.OnLayoutStart(ctx, opts.SeparateFaces, size.String())
	plan, err := GenerateLayout(m, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	hooks.OnLayoutComplete(ctx, len(plan.Drawings), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Stats.Drawings = len(plan.Drawings)
	result.Stats.Pages = plan.Pages

	for _, name := range plan.Unsplit {
		r.Logger.Info("fits on a single page", "drawing", displayName(name), "page", size)
	}
	r.Logger.Info("laid out drawings",
		"drawings", len(plan.Drawings),
		"pages", plan.Pages,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Export
	exportStart := time.Now()
	hooks.OnExportStart(ctx, exp.Format(), len(plan.Drawings))
	artifacts, err := Render(ctx, plan.Drawings, exp, opts.Output)
	result.Artifacts = artifacts
	result.Stats.ExportTime = time.Since(exportStart)
	hooks.OnExportComplete(ctx, exp.Format(), len(artifacts), result.Stats.ExportTime, err)
	for _, a := range artifacts {
		r.Logger.Debug("wrote file", "path", a.Path, "bytes", a.Size)
	}
	if err != nil {
		return result, err
	}

	r.Logger.Info("exported",
		"format", exp.Format(),
		"files", len(artifacts),
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Compute validates opts and builds the pattern model. Nothing is written.
func (r *Runner) Compute(ctx context.Context, opts Options) (*bellows.PatternModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r.Logger.Debug("computing pattern",
		"camera", opts.Camera.String(),
		"max_draw", opts.Camera.MaxDraw,
		"cycle", opts.Construction.FoldCycle())
	return bellows.ComputePattern(opts.Camera, opts.Construction)
}

func displayName(name string) string {
	if name == "" {
		return "pattern"
	}
	return name
}
