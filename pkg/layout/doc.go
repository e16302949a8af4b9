// Package layout composes computed bellows patterns into drawings and splits
// them into printable pages.
//
// # Overview
//
// The layout stage sits between the geometry engine ([bellows.ComputePattern])
// and the output sinks. It never changes geometry; it only translates and
// clips it:
//
//   - [LayOut] places the whole pattern on one drawing, padded by a margin.
//   - [SplitFaces] separates the four panels into independent single-panel
//     models, and [FaceDrawings] lays each of them out on its own drawing.
//   - [Paginate] tiles a drawing into A4 or A3 sheets, clipping outlines and
//     fold lines against each sheet and dropping sheets left empty.
//
// All coordinates stay in millimeters with the origin at the drawing's
// top-left corner. Converting to points or pixels is left to the sinks.
//
// [bellows.ComputePattern]: github.com/sylvainf/bellows/pkg/bellows.ComputePattern
package layout
