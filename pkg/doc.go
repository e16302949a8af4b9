// Package pkg provides the core libraries of the bellows pattern generator.
//
// # Overview
//
// Bellows turns the frame sizes of a view camera (front standard, rear
// standard, maximum draw) into the flat cutting pattern of a tapered,
// pleated bellows: four trapezoidal panels, one stiffener card per pleat and
// alternating mountain and valley fold lines. The pattern is exported at 1:1
// scale so it can be printed, optionally tiled onto A4 or A3 sheets.
//
// # Architecture
//
// The data flow through bellows:
//
//	CameraSpec + ConstructionParams
//	         ↓
//	    [bellows] package (fold count, taper, panels, stiffeners)
//	         ↓
//	    [layout] package (drawings, per-face split, page tiling)
//	         ↓
//	    [render/sink] package (SVG, PDF, PNG, JPEG, WebP)
//	         ↓
//	    [io] package (atomic file commit, model dump)
//
// [pipeline] runs the three stages from a single Options value and is what
// the CLI calls.
//
// # Quick Start
//
//	m, err := bellows.ComputePattern(bellows.DefaultCamera(), bellows.DefaultConstruction())
//	if err != nil {
//	    return err
//	}
//	d := layout.LayOut(m, layout.DefaultRenderParams())
//	svg, err := sink.RenderSVG(d)
//
// # Main Packages
//
// [bellows] - The geometry engine. Pure and deterministic: the same inputs
// always give the same model.
//
// [layout] - Places panels on drawings with a margin, splits the pattern into
// one drawing per face and clips drawings into page-sized tiles.
//
// [render/sink] - Exporters for every output format.
//
// [io] - Atomic writes, JSON/YAML model dumps and TOML/YAML/JSON option
// decoding.
//
// [pipeline] - Options, validation and the compute → layout → export runner.
//
// [errors] - Structured error codes shared by all packages.
//
// [observability] - Hooks for instrumenting pipeline runs.
//
// # Testing
//
//	go test ./...                  # All tests
//	go test ./pkg/bellows/...      # Geometry only
//
// [bellows]: https://pkg.go.dev/github.com/sylvainf/bellows/pkg/bellows
// [layout]: https://pkg.go.dev/github.com/sylvainf/bellows/pkg/layout
// [render/sink]: https://pkg.go.dev/github.com/sylvainf/bellows/pkg/render/sink
// [io]: https://pkg.go.dev/github.com/sylvainf/bellows/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/sylvainf/bellows/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/sylvainf/bellows/pkg/errors
// [observability]: https://pkg.go.dev/github.com/sylvainf/bellows/pkg/observability
package pkg
