package layout

import (
	"seehuhn.de/go/geom/rect"

	"github.com/sylvainf/bellows/pkg/bellows"
)

// Default rendering values.
const (
	DefaultMargin      = 30.0
	DefaultStrokeWidth = 1.0
	DefaultStrokeColor = "black"
)

// RenderParams controls how a pattern is placed and stroked.
type RenderParams struct {
	Margin      float64 `json:"margin" yaml:"margin" toml:"margin"`
	StrokeWidth float64 `json:"stroke_width" yaml:"stroke_width" toml:"stroke_width"`
	StrokeColor string  `json:"stroke_color" yaml:"stroke_color" toml:"stroke_color"`
}

// DefaultRenderParams returns a 30mm margin with 1mm black strokes.
func DefaultRenderParams() RenderParams {
	return RenderParams{
		Margin:      DefaultMargin,
		StrokeWidth: DefaultStrokeWidth,
		StrokeColor: DefaultStrokeColor,
	}
}

// Line is an open fold line. Valley folds are drawn dashed.
type Line struct {
	Points bellows.Polyline
	Dashed bool
}

// Drawing is a positioned set of outlines and fold lines on a sheet of the
// given size, ready for a sink.
type Drawing struct {
	Name     string
	Width    float64
	Height   float64
	Polygons []bellows.Polygon
	Lines    []Line
	Style    RenderParams
}

// Bounds returns the drawing's sheet rectangle.
func (d Drawing) Bounds() rect.Rect {
	return rect.Rect{URx: d.Width, URy: d.Height}
}

// Empty reports whether the drawing has nothing to stroke.
func (d Drawing) Empty() bool {
	return len(d.Polygons) == 0 && len(d.Lines) == 0
}

// LayOut places every panel of m on one drawing, padded by the margin on all sides.
func LayOut(m *bellows.PatternModel, params RenderParams) Drawing {
	return layOut(m, params, "")
}

func layOut(m *bellows.PatternModel, params RenderParams, name string) Drawing {
	dx := params.Margin - m.BoundingBox.LLx
	dy := params.Margin - m.BoundingBox.LLy

	d := Drawing{
		Name:   name,
		Width:  m.Width() + 2*params.Margin,
		Height: m.Height() + 2*params.Margin,
		Style:  params,
	}
	for _, p := range m.Polygons() {
		d.Polygons = append(d.Polygons, p.Translate(dx, dy))
	}
	for _, l := range m.FoldLines() {
		d.Lines = append(d.Lines, Line{
			Points: l.Line.Translate(dx, dy),
			Dashed: l.Type == bellows.Valley,
		})
	}
	return d
}

// SplitFaces returns one single-panel model per face. Each panel is moved
// back to the origin, removing the face-gap offset it had in m.
func SplitFaces(m *bellows.PatternModel) map[bellows.Face]*bellows.PatternModel {
	out := make(map[bellows.Face]*bellows.PatternModel, len(m.Panels))
	for _, p := range m.Panels {
		local := p.Translate(-p.Offset.X, -p.Offset.Y)
		out[p.Face] = &bellows.PatternModel{
			Spec:        m.Spec,
			Params:      m.Params,
			Folds:       m.Folds,
			Pairs:       m.Pairs,
			Panels:      []bellows.Panel{local},
			BoundingBox: rect.Rect{URx: local.Width, URy: local.Length},
		}
	}
	return out
}

// FaceDrawings lays out each face on its own drawing, in face order, named
// "face1_top", "face2_right", "face3_bottom" and "face4_left".
func FaceDrawings(m *bellows.PatternModel, params RenderParams) []Drawing {
	faces := SplitFaces(m)
	out := make([]Drawing, 0, len(faces))
	for _, f := range bellows.Faces {
		fm, ok := faces[f]
		if !ok {
			continue
		}
		out = append(out, layOut(fm, params, f.Name()))
	}
	return out
}
