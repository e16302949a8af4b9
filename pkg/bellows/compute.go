package bellows

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/sylvainf/bellows/pkg/errors"
)

// MaxFolds bounds the number of pleats per panel. Beyond it the stiffeners
// are too thin relative to the draw to be a real bellows.
const MaxFolds = 10000

// ComputePattern derives the flattened bellows for the given camera and
// construction. It is a pure function: identical inputs give identical models.
//
// It fails with an INVALID_DIMENSION error when a length is missing, negative
// or not finite, and with a [errors.DrawLengthError] when the draw cannot hold
// a single fold pair.
func ComputePattern(spec CameraSpec, params ConstructionParams) (*PatternModel, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	folds, err := FoldCount(spec.MaxDraw, params)
	if err != nil {
		return nil, err
	}

	m := &PatternModel{
		Spec:   spec,
		Params: params,
		Folds:  folds,
		Pairs:  folds / 2,
		Panels: make([]Panel, 0, len(Faces)),
	}

	x := 0.0
	for i, f := range Faces {
		if i > 0 {
			x += params.FaceGap
		}
		near, far := spec.Edges(f)
		p := buildPanel(f, near, far, spec.MaxDraw, folds, params)
		m.Panels = append(m.Panels, p.Translate(x, 0))
		x += p.Width
	}
	m.BoundingBox = rect.Rect{URx: x, URy: spec.MaxDraw}
	return m, nil
}

// FoldCount returns the number of pleats that fit the draw: the whole
// number of nominal fold cycles, rounded down to complete pairs.
func FoldCount(maxDraw float64, params ConstructionParams) (int, error) {
	cycle := params.FoldCycle()
	n := math.Floor(maxDraw / cycle)
	if n > MaxFolds {
		return 0, errors.New(errors.ErrCodeInvalidDimension,
			"max draw %gmm needs %.0f folds of %gmm (limit %d); increase the stiffener height",
			maxDraw, n, cycle, MaxFolds)
	}
	folds := int(n)
	folds -= folds % 2
	if folds < 2 {
		return 0, &errors.DrawLengthError{MaxDraw: maxDraw, MinDraw: params.MinDraw()}
	}
	return folds, nil
}

// progression interpolates panel widths by pleat index in pairs.
type progression struct {
	near, far float64
	pairs     int
}

// level returns the width at the start of pair k; level(pairs) is exactly far.
func (g progression) level(k int) float64 {
	if k >= g.pairs {
		return g.far
	}
	return g.near + (g.far-g.near)*float64(k)/float64(g.pairs)
}

// boundary returns the width where pleat j starts (j = 0..2*pairs).
// Even boundaries sit on pair levels, odd ones halfway to the next level.
func (g progression) boundary(j int) float64 {
	p := j / 2
	lo := g.level(p)
	if j%2 == 0 || p >= g.pairs {
		return lo
	}
	hi := g.level(p + 1)
	return lo + (hi-lo)/2
}

// buildPanel computes one face in local coordinates: the panel axis at
// x = width/2, the near edge at y = 0.
func buildPanel(f Face, near, far, length float64, folds int, params ConstructionParams) Panel {
	g := progression{near: near, far: far, pairs: folds / 2}
	p := Panel{
		Face:       f,
		NearEdge:   near,
		FarEdge:    far,
		Length:     length,
		Width:      math.Max(near, far),
		Segments:   make([]FoldSegment, 0, 2*folds),
		Stiffeners: make([]StiffenerStrip, 0, folds),
		FoldLines:  make([]FoldLine, 0, folds-1),
	}
	cx := p.Width / 2

	// Right and left edges, top to bottom, through every segment boundary.
	right := []vec.Vec2{{X: cx + near/2, Y: 0}}
	left := []vec.Vec2{{X: cx - near/2, Y: 0}}
	edge := func(w, y float64) {
		right = append(right, vec.Vec2{X: cx + w/2, Y: y})
		left = append(left, vec.Vec2{X: cx - w/2, Y: y})
	}

	y := 0.0
	for j := 0; j < folds; j++ {
		wn, wf := g.boundary(j), g.boundary(j+1)
		typ := foldTypeFor(j)

		pleat := FoldSegment{
			Index:     len(p.Segments),
			Pair:      j / 2,
			Start:     y,
			Depth:     params.StiffenerHeight,
			NearWidth: wn,
			FarWidth:  wf,
			FoldType:  typ,
		}
		p.Segments = append(p.Segments, pleat)
		y = pleat.End()
		edge(wf, y)

		p.Stiffeners = append(p.Stiffeners, StiffenerStrip{
			Face:      f,
			Index:     j,
			Position:  pleat.Start,
			Height:    pleat.Depth,
			NearWidth: wn,
			FarWidth:  wf,
			Outline:   stiffenerOutline(cx, pleat, params.Chamfer),
		})

		gap := FoldSegment{
			Index:     len(p.Segments),
			Pair:      j / 2,
			Start:     y,
			Depth:     params.GapHeight,
			NearWidth: wf,
			FarWidth:  wf,
			FoldType:  FoldNone,
			IsGap:     true,
		}
		if j == folds-1 {
			// The rear flap takes up whatever the pleats leave of the draw.
			gap.Depth = length - y
		} else {
			mid := gap.Start + gap.Depth/2
			p.FoldLines = append(p.FoldLines, FoldLine{
				Face:  f,
				Index: j,
				Type:  typ,
				Line:  Polyline{{X: cx - wf/2, Y: mid}, {X: cx + wf/2, Y: mid}},
			})
		}
		p.Segments = append(p.Segments, gap)
		y = gap.End()
		if j == folds-1 {
			y = length
		}
		edge(wf, y)
	}

	p.Outline = panelOutline(right, left, params.Chamfer)
	return p
}

// panelOutline joins the right edge (top to bottom) with the left edge
// (bottom to top) and chamfers the four extreme corners.
func panelOutline(right, left []vec.Vec2, c float64) Polygon {
	right = simplify(right)
	left = simplify(left)

	outline := make(Polygon, 0, len(right)+len(left))
	outline = append(outline, right...)
	for i := len(left) - 1; i >= 0; i-- {
		outline = append(outline, left[i])
	}
	nr := len(right)
	return chamfer(outline, c, 0, nr-1, nr, len(outline)-1)
}

// stiffenerOutline returns the card for a pleat as a chamfered quad.
func stiffenerOutline(cx float64, s FoldSegment, c float64) Polygon {
	y0, y1 := s.Start, s.End()
	quad := Polygon{
		{X: cx - s.NearWidth/2, Y: y0},
		{X: cx + s.NearWidth/2, Y: y0},
		{X: cx + s.FarWidth/2, Y: y1},
		{X: cx - s.FarWidth/2, Y: y1},
	}
	return chamfer(quad, c, 0, 1, 2, 3)
}
