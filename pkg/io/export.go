package io

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sylvainf/bellows/pkg/bellows"
	"github.com/sylvainf/bellows/pkg/errors"
)

// WriteJSON encodes m as indented JSON and writes it to w.
func WriteJSON(m *bellows.PatternModel, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes m as YAML and writes it to w.
func WriteYAML(m *bellows.PatternModel, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ExportModel writes m to path as JSON (.json) or YAML (.yaml, .yml).
func ExportModel(m *bellows.PatternModel, path string) error {
	var write func(*bellows.PatternModel, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".yaml", ".yml":
		write = WriteYAML
	default:
		return errors.New(errors.ErrCodeUnsupportedFormat,
			"cannot dump model to %s: use a .json, .yaml or .yml file", path)
	}
	return Commit(path, func(w io.Writer) error { return write(m, w) })
}
