package bellows

import (
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Face identifies one side of the bellows.
type Face int

// Faces in pattern order.
const (
	Top Face = iota
	Right
	Bottom
	Left
)

// Faces lists all faces in the order they are laid out.
var Faces = [4]Face{Top, Right, Bottom, Left}

var faceNames = [4]string{"top", "right", "bottom", "left"}

// String returns the lowercase face name.
func (f Face) String() string {
	if f < Top || f > Left {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return faceNames[f]
}

// Index returns the 1-based position of the face in the pattern.
func (f Face) Index() int { return int(f) + 1 }

// Name returns the deterministic per-face name, e.g. "face2_right".
func (f Face) Name() string { return fmt.Sprintf("face%d_%s", f.Index(), f) }

// SpansWidth reports whether the face runs along the frame width (top and bottom).
func (f Face) SpansWidth() bool { return f == Top || f == Bottom }

// MarshalText lets faces serve as map keys in JSON and YAML dumps.
func (f Face) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// FoldType is the direction a pleat folds.
type FoldType int

const (
	// FoldNone marks flat gap connectors.
	FoldNone FoldType = iota
	Mountain
	Valley
)

// String returns "mountain", "valley" or "none".
func (t FoldType) String() string {
	switch t {
	case Mountain:
		return "mountain"
	case Valley:
		return "valley"
	default:
		return "none"
	}
}

// MarshalText encodes the fold type by name.
func (t FoldType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// foldTypeFor returns the fold of the pleat with the given index.
func foldTypeFor(pleat int) FoldType {
	if pleat%2 == 0 {
		return Mountain
	}
	return Valley
}

// FoldSegment is one slice of a panel along its length: either a pleat
// (IsGap false) or the flat connector that follows it.
type FoldSegment struct {
	Index     int      `json:"index" yaml:"index"`
	Pair      int      `json:"pair" yaml:"pair"`
	Start     float64  `json:"start" yaml:"start"`
	Depth     float64  `json:"depth" yaml:"depth"`
	NearWidth float64  `json:"near_width" yaml:"near_width"`
	FarWidth  float64  `json:"far_width" yaml:"far_width"`
	FoldType  FoldType `json:"fold_type" yaml:"fold_type"`
	IsGap     bool     `json:"is_gap" yaml:"is_gap"`
}

// End returns the position along the panel where the segment ends.
func (s FoldSegment) End() float64 { return s.Start + s.Depth }

// StiffenerStrip is the stiffener card glued onto one pleat. Every pleat is
// followed by exactly one connector, so strips and connectors pair one to one.
type StiffenerStrip struct {
	Face      Face    `json:"face" yaml:"face"`
	Index     int     `json:"index" yaml:"index"`
	Position  float64 `json:"position" yaml:"position"`
	Height    float64 `json:"height" yaml:"height"`
	NearWidth float64 `json:"near_width" yaml:"near_width"`
	FarWidth  float64 `json:"far_width" yaml:"far_width"`
	Outline   Polygon `json:"outline" yaml:"outline"`
}

// FoldLine marks where the fabric folds inside a connector.
type FoldLine struct {
	Face  Face     `json:"face" yaml:"face"`
	Index int      `json:"index" yaml:"index"`
	Type  FoldType `json:"type" yaml:"type"`
	Line  Polyline `json:"line" yaml:"line"`
}

// Panel is one flattened face of the bellows.
type Panel struct {
	Face       Face             `json:"face" yaml:"face"`
	NearEdge   float64          `json:"near_edge" yaml:"near_edge"`
	FarEdge    float64          `json:"far_edge" yaml:"far_edge"`
	Length     float64          `json:"length" yaml:"length"`
	Width      float64          `json:"width" yaml:"width"`
	Offset     vec.Vec2         `json:"offset" yaml:"offset"`
	Segments   []FoldSegment    `json:"segments" yaml:"segments"`
	Stiffeners []StiffenerStrip `json:"stiffeners" yaml:"stiffeners"`
	FoldLines  []FoldLine       `json:"fold_lines" yaml:"fold_lines"`
	Outline    Polygon          `json:"outline" yaml:"outline"`
}

// Translate returns a deep copy of the panel moved by (dx, dy).
// Segments are positions along the panel and do not move.
func (p Panel) Translate(dx, dy float64) Panel {
	out := p
	out.Offset = vec.Vec2{X: p.Offset.X + dx, Y: p.Offset.Y + dy}
	out.Segments = append([]FoldSegment(nil), p.Segments...)
	out.Outline = p.Outline.Translate(dx, dy)

	out.Stiffeners = make([]StiffenerStrip, len(p.Stiffeners))
	for i, s := range p.Stiffeners {
		s.Outline = s.Outline.Translate(dx, dy)
		out.Stiffeners[i] = s
	}
	out.FoldLines = make([]FoldLine, len(p.FoldLines))
	for i, l := range p.FoldLines {
		l.Line = l.Line.Translate(dx, dy)
		out.FoldLines[i] = l
	}
	return out
}

// Pleats returns the non-gap segments in order.
func (p Panel) Pleats() []FoldSegment {
	out := make([]FoldSegment, 0, len(p.Segments)/2)
	for _, s := range p.Segments {
		if !s.IsGap {
			out = append(out, s)
		}
	}
	return out
}

// Polygons returns the panel outline followed by its stiffener cards.
func (p Panel) Polygons() []Polygon {
	out := make([]Polygon, 0, 1+len(p.Stiffeners))
	out = append(out, p.Outline)
	for _, s := range p.Stiffeners {
		out = append(out, s.Outline)
	}
	return out
}

// PatternModel is the flattened bellows: its panels and their common extent.
// A model is produced once and never mutated by its consumers.
type PatternModel struct {
	Spec        CameraSpec         `json:"spec" yaml:"spec"`
	Params      ConstructionParams `json:"params" yaml:"params"`
	Folds       int                `json:"folds" yaml:"folds"`
	Pairs       int                `json:"pairs" yaml:"pairs"`
	Panels      []Panel            `json:"panels" yaml:"panels"`
	BoundingBox rect.Rect          `json:"bounding_box" yaml:"bounding_box"`
}

// Panel returns the panel for face f.
func (m *PatternModel) Panel(f Face) (Panel, bool) {
	for _, p := range m.Panels {
		if p.Face == f {
			return p, true
		}
	}
	return Panel{}, false
}

// Polygons returns every closed outline in panel order.
func (m *PatternModel) Polygons() []Polygon {
	var out []Polygon
	for _, p := range m.Panels {
		out = append(out, p.Polygons()...)
	}
	return out
}

// FoldLines returns every fold line in panel order.
func (m *PatternModel) FoldLines() []FoldLine {
	var out []FoldLine
	for _, p := range m.Panels {
		out = append(out, p.FoldLines...)
	}
	return out
}

// Width returns the bounding box width in millimeters.
func (m *PatternModel) Width() float64 { return m.BoundingBox.Dx() }

// Height returns the bounding box height in millimeters.
func (m *PatternModel) Height() float64 { return m.BoundingBox.Dy() }

// Summary describes a computed pattern for logs and reports.
type Summary struct {
	Spec        CameraSpec
	Folds       int
	Pairs       int
	PleatLength float64
	Width       float64
	Height      float64
}

// Summary returns the headline numbers of the pattern.
func (m *PatternModel) Summary() Summary {
	return Summary{
		Spec:        m.Spec,
		Folds:       m.Folds,
		Pairs:       m.Pairs,
		PleatLength: float64(m.Folds) * m.Params.FoldCycle(),
		Width:       m.Width(),
		Height:      m.Height(),
	}
}
