// Package bellows computes flat, foldable cutting patterns for tapered
// camera bellows.
//
// # Overview
//
// A bellows joins a rectangular front frame to a (usually larger) rectangular
// rear frame. Unfolded, each of its four sides is a long tapering panel that
// is pleated along its length. [ComputePattern] derives the four panels from a
// [CameraSpec] and [ConstructionParams] and returns a [PatternModel]:
//
//	model, err := bellows.ComputePattern(
//	    bellows.CameraSpec{FrontWidth: 96, FrontHeight: 96, RearWidth: 145, RearHeight: 145, MaxDraw: 300},
//	    bellows.DefaultConstruction(),
//	)
//
// # Geometry
//
// All lengths are millimeters. The model's origin is the top-left corner of
// its bounding box; x grows to the right across the faces and y grows down
// the panel length, from the front (near) edge at y=0 to the rear (far) edge
// at y=MaxDraw. Faces are laid out left to right in the order top, right,
// bottom, left, separated by the face gap.
//
// Each panel is a sequence of [FoldSegment] values. Pleats have the
// stiffener height as depth and alternate mountain and valley folds; each
// pleat is followed by a flat gap connector. The last connector absorbs the
// part of the draw that does not fit a whole pleat, so segment depths always
// sum to the maximum draw.
//
// Widths are interpolated per pleat index in pairs: pair p brackets the width
// levels L(p) and L(p+1), with its mountain pleat running from L(p) to the
// midpoint and its valley pleat from the midpoint to L(p+1). Connectors keep
// the width their pleat ended at.
//
// # Output
//
// The model exposes closed outlines ([Polygon]) for panels and stiffener
// cards plus open fold lines ([Polyline]). It carries no paper sizes, stroke
// styles or device units; those belong to the layout and sink packages.
package bellows
