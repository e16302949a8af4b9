package pipeline

import (
	"context"
	"io"

	pio "github.com/sylvainf/bellows/pkg/io"
	"github.com/sylvainf/bellows/pkg/layout"
	"github.com/sylvainf/bellows/pkg/observability"
	"github.com/sylvainf/bellows/pkg/render/sink"
)

// Render exports each drawing with exp and commits it next to output.
// Drawings the exporter can reject up front are checked before the first
// file is written. After that it stops at the first failure; files already
// written are kept and returned alongside the error.
func Render(ctx context.Context, drawings []layout.Drawing, exp sink.Exporter, output string) ([]Artifact, error) {
	if err := sink.Check(exp, drawings); err != nil {
		return nil, err
	}
	artifacts := make([]Artifact, 0, len(drawings))
	for _, d := range drawings {
		if err := ctx.Err(); err != nil {
			return artifacts, err
		}

		path := OutputPath(output, exp.Ext(), d.Name)
		cw := &countingWriter{}
		err := pio.Commit(path, func(w io.Writer) error {
			cw.w = w
			return exp.Export(cw, d)
		})
		if err != nil {
			return artifacts, err
		}
		observability.File().OnFileWritten(ctx, path, cw.n)
		artifacts = append(artifacts, Artifact{
			Path:   path,
			Name:   d.Name,
			Format: exp.Format(),
			Size:   cw.n,
		})
	}
	return artifacts, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
