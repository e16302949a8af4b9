package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/sylvainf/bellows/pkg/bellows"
	"github.com/sylvainf/bellows/pkg/errors"
)

func TestCommit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.svg")

	if err := Commit(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<svg/>")
		return err
	}); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<svg/>" {
		t.Errorf("content = %q, want <svg/>", got)
	}
	assertNoTemps(t, filepath.Dir(path))
}

func TestCommitFailureKeepsOldFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Commit(path, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return fmt.Errorf("renderer crashed")
	})
	if !errors.Is(err, errors.ErrCodeExportFailure) {
		t.Fatalf("Commit() error = %v, want %s", err, errors.ErrCodeExportFailure)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name %s", err, path)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "old" {
		t.Errorf("content = %q, want old file untouched", got)
	}
	assertNoTemps(t, dir)
}

func TestCommitKeepsCodedErrors(t *testing.T) {
	err := Commit(filepath.Join(t.TempDir(), "x.png"), func(io.Writer) error {
		return errors.New(errors.ErrCodeInvalidInput, "bad color")
	})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Commit() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func assertNoTemps(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func testModel(t *testing.T) *bellows.PatternModel {
	t.Helper()
	m, err := bellows.ComputePattern(bellows.DefaultCamera(), bellows.DefaultConstruction())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestWriteJSON(t *testing.T) {
	m := testModel(t)
	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var out struct {
		Folds  int `json:"folds"`
		Pairs  int `json:"pairs"`
		Panels []struct {
			Face     string `json:"face"`
			Segments []struct {
				FoldType string `json:"fold_type"`
			} `json:"segments"`
		} `json:"panels"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if out.Folds != 20 || out.Pairs != 10 {
		t.Errorf("folds/pairs = %d/%d, want 20/10", out.Folds, out.Pairs)
	}

	var faces []string
	for _, p := range out.Panels {
		faces = append(faces, p.Face)
	}
	if diff := cmp.Diff([]string{"top", "right", "bottom", "left"}, faces); diff != "" {
		t.Errorf("faces mismatch (-want +got):\n%s", diff)
	}
	if got := out.Panels[0].Segments[0].FoldType; got != "mountain" {
		t.Errorf("first fold type = %q, want mountain", got)
	}
}

func TestWriteYAML(t *testing.T) {
	m := testModel(t)
	var buf bytes.Buffer
	if err := WriteYAML(m, &buf); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	var out map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if out["folds"] != 20 {
		t.Errorf("folds = %v, want 20", out["folds"])
	}
	if panels, ok := out["panels"].([]any); !ok || len(panels) != 4 {
		t.Errorf("panels = %T, want 4 entries", out["panels"])
	}
}

func TestExportModel(t *testing.T) {
	m := testModel(t)
	dir := t.TempDir()

	for _, name := range []string{"model.json", "model.yaml", "model.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := ExportModel(m, path); err != nil {
				t.Fatalf("ExportModel() error = %v", err)
			}
			if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
				t.Errorf("model file missing or empty: %v", err)
			}
		})
	}

	err := ExportModel(m, filepath.Join(dir, "model.xml"))
	if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
		t.Errorf("ExportModel(.xml) error = %v, want %s", err, errors.ErrCodeUnsupportedFormat)
	}
}

type testOptions struct {
	Name  string  `toml:"name" yaml:"name" json:"name"`
	Width float64 `toml:"width" yaml:"width" json:"width"`
	Keep  string  `toml:"keep" yaml:"keep" json:"keep"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		ext     string
		data    string
		want    testOptions
		wantErr bool
	}{
		{".toml", "name = \"a\"\nwidth = 96.5\n", testOptions{Name: "a", Width: 96.5, Keep: "default"}, false},
		{".yaml", "name: b\nwidth: 145\n", testOptions{Name: "b", Width: 145, Keep: "default"}, false},
		{"yml", "", testOptions{Keep: "default"}, false},
		{".json", `{"name": "c"}`, testOptions{Name: "c", Keep: "default"}, false},
		{".toml", "colour = \"red\"\n", testOptions{}, true},
		{".yaml", "colour: red\n", testOptions{}, true},
		{".json", `{"colour": "red"}`, testOptions{}, true},
		{".ini", "name=a", testOptions{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.ext+"/"+tt.data, func(t *testing.T) {
			got := testOptions{Keep: "default"}
			err := Decode([]byte(tt.data), tt.ext, &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.toml")
	if err := os.WriteFile(path, []byte("name = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var got testOptions
	if err := DecodeFile(path, &got); err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if got.Name != "x" {
		t.Errorf("Name = %q, want x", got.Name)
	}

	err := DecodeFile(filepath.Join(t.TempDir(), "missing.toml"), &got)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("DecodeFile(missing) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
