package io

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sylvainf/bellows/pkg/errors"
)

// Commit creates or replaces path with whatever write produces. The content
// goes to a temporary file in the same directory first and is renamed over
// path only after write and close succeed. Missing parent directories are
// created.
func Commit(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "create directory for %s", path)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "create %s", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := write(f); err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeExportFailure, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "write %s", path)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailure, err, "rename into %s", path)
	}
	return nil
}
