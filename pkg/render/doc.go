// Package render groups the output stages of the bellows generator.
//
// Geometry is computed by [bellows] and placed on drawings by [layout]; the
// packages below render turn those drawings into files:
//
//   - [sink]: SVG, PDF, PNG, JPEG and WebP exporters
//
// Renderers never change geometry. A drawing exported twice with the same
// options produces identical bytes.
//
// [bellows]: github.com/sylvainf/bellows/pkg/bellows
// [layout]: github.com/sylvainf/bellows/pkg/layout
// [sink]: github.com/sylvainf/bellows/pkg/render/sink
package render
