// Package sink writes laid-out bellows drawings to output formats.
//
// # Overview
//
// A "sink" turns a [layout.Drawing] (millimeter coordinates, origin at the
// top-left corner) into bytes. Every format implements [Exporter]:
//
//   - [Vector]: SVG sized in millimeters so it prints at 1:1 scale
//   - [Raster]: PNG, JPEG or WebP rasterized at a chosen DPI
//   - [PDF]: a single page sized to the drawing
//
// Use [New] to pick an exporter from a format name:
//
//	exp, err := sink.New("png", 300)
//	if err != nil {
//	    return err
//	}
//	err = exp.Export(f, drawing)
//
// # Strokes
//
// Outlines and stiffener strips are closed paths; fold lines are open
// polylines. Valley folds are dashed with a 4:2 pattern scaled by the stroke
// width. The stroke color accepts SVG color keywords or #rgb/#rrggbb hex
// values (see [ParseColor]).
//
// # Raster Output
//
// [Raster] strokes each path with golang.org/x/image/vector onto a white
// canvas and encodes it with github.com/disintegration/imaging (PNG, JPEG) or
// github.com/chai2010/webp (lossless WebP). At the default 300 DPI a full
// pattern is several thousand pixels wide.
//
// [layout.Drawing]: github.com/sylvainf/bellows/pkg/layout.Drawing
package sink
