package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sylvainf/bellows/pkg/errors"
)

// DecodeFile reads path and decodes it into v. The decoder is chosen from
// the extension: .toml, .yaml/.yml or .json. Keys missing from the file leave
// the corresponding fields of v untouched, so v can be pre-filled with
// defaults.
func DecodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	if err := Decode(data, filepath.Ext(path), v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	return nil
}

// Decode decodes data into v using the format named by ext (with or without
// the leading dot).
func Decode(data []byte, ext string, v any) error {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "toml":
		md, err := toml.Decode(string(data), v)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
		return nil
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && err != io.EOF {
			return err
		}
		return nil
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	default:
		return fmt.Errorf("unsupported file type %q (use .toml, .yaml or .json)", ext)
	}
}
