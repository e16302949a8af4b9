// Package io handles file output for bellows patterns and decoding of
// option files.
//
// # Atomic Writes
//
// [Commit] writes a file through a temporary sibling and renames it into
// place, so a failed export never leaves a truncated pattern behind:
//
//	err := io.Commit("bellows_pattern.svg", func(w io.Writer) error {
//	    return exporter.Export(w, drawing)
//	})
//
// Failures are reported as EXPORT_FAILURE errors naming the target path.
//
// # Model Export
//
// [WriteJSON] and [WriteYAML] serialize a computed [bellows.PatternModel]
// with every panel, segment, stiffener strip and fold line, for use by
// external tools. [ExportModel] picks the encoding from the file extension.
//
// # Decoding
//
// [DecodeFile] reads a TOML, YAML or JSON file into any value, choosing the
// decoder from the extension. The pipeline uses it to load option files.
//
// [bellows.PatternModel]: github.com/sylvainf/bellows/pkg/bellows.PatternModel
package io
