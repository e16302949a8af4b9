package layout

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/sylvainf/bellows/pkg/bellows"
)

// clipEdge is one side of an axis-aligned clip rectangle.
type clipEdge struct {
	vertical bool    // true: compares x, false: compares y
	value    float64 // position of the edge
	keepLess bool    // true: inside is <= value
}

func (e clipEdge) coord(v vec.Vec2) float64 {
	if e.vertical {
		return v.X
	}
	return v.Y
}

func (e clipEdge) inside(v vec.Vec2) bool {
	if e.keepLess {
		return e.coord(v) <= e.value
	}
	return e.coord(v) >= e.value
}

// intersect returns where segment ab crosses the edge. The crossing
// coordinate is set exactly so adjacent pages share their cut.
func (e clipEdge) intersect(a, b vec.Vec2) vec.Vec2 {
	t := (e.value - e.coord(a)) / (e.coord(b) - e.coord(a))
	if e.vertical {
		return vec.Vec2{X: e.value, Y: a.Y + t*(b.Y-a.Y)}
	}
	return vec.Vec2{X: a.X + t*(b.X-a.X), Y: e.value}
}

func clipEdges(r rect.Rect) [4]clipEdge {
	return [4]clipEdge{
		{vertical: true, value: r.LLx},
		{vertical: true, value: r.URx, keepLess: true},
		{vertical: false, value: r.LLy},
		{vertical: false, value: r.URy, keepLess: true},
	}
}

// ClipPolygon returns the part of p inside r (Sutherland–Hodgman). Concave
// outlines may come back with zero-width bridges between their pieces; these
// carry no area. A nil result means nothing is left.
func ClipPolygon(p bellows.Polygon, r rect.Rect) bellows.Polygon {
	if len(p) < 3 {
		return nil
	}
	b := p.Bounds()
	if b.LLx >= r.LLx && b.URx <= r.URx && b.LLy >= r.LLy && b.URy <= r.URy {
		return append(bellows.Polygon(nil), p...)
	}
	if b.URx <= r.LLx || b.LLx >= r.URx || b.URy <= r.LLy || b.LLy >= r.URy {
		return nil
	}

	out := []vec.Vec2(p)
	for _, e := range clipEdges(r) {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]vec.Vec2, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			curIn, prevIn := e.inside(cur), e.inside(prev)
			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn:
				out = append(out, e.intersect(prev, cur), cur)
			case prevIn:
				out = append(out, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	if len(out) < 3 {
		return nil
	}
	return bellows.Polygon(out)
}

// ClipSegment returns the part of segment ab inside r (Liang–Barsky).
func ClipSegment(a, b vec.Vec2, r rect.Rect) (vec.Vec2, vec.Vec2, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0
	checks := [4][2]float64{
		{-dx, a.X - r.LLx},
		{dx, r.URx - a.X},
		{-dy, a.Y - r.LLy},
		{dy, r.URy - a.Y},
	}
	for _, c := range checks {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	if t0 >= t1 {
		return a, b, false
	}
	return vec.Vec2{X: a.X + t0*dx, Y: a.Y + t0*dy}, vec.Vec2{X: a.X + t1*dx, Y: a.Y + t1*dy}, true
}

// ClipPolyline returns the pieces of l inside r. Consecutive segments that
// stay inside are joined into one piece.
func ClipPolyline(l bellows.Polyline, r rect.Rect) []bellows.Polyline {
	var out []bellows.Polyline
	var cur bellows.Polyline
	for i := 0; i+1 < len(l); i++ {
		a, b, ok := ClipSegment(l[i], l[i+1], r)
		if !ok {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		if len(cur) > 0 && cur[len(cur)-1] == a {
			cur = append(cur, b)
			continue
		}
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = bellows.Polyline{a, b}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
