package bellows

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed outline. The closing edge from the last point back to
// the first is implicit.
type Polygon []vec.Vec2

// Polyline is an open sequence of connected line segments.
type Polyline []vec.Vec2

// collinearEps is the cross-product tolerance below which three points are
// treated as lying on one line.
const collinearEps = 1e-9

// Area returns the signed shoelace area. Clockwise outlines in the y-down
// model coordinates have positive area.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Bounds returns the smallest rectangle containing every point.
// In model coordinates LLx/LLy hold the minimum corner and URx/URy the maximum.
func (p Polygon) Bounds() rect.Rect {
	return bounds(p)
}

// Translate returns a copy of p moved by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	return Polygon(translate(p, dx, dy))
}

// Bounds returns the smallest rectangle containing every point.
func (l Polyline) Bounds() rect.Rect {
	return bounds(l)
}

// Translate returns a copy of l moved by (dx, dy).
func (l Polyline) Translate(dx, dy float64) Polyline {
	return Polyline(translate(l, dx, dy))
}

func translate(pts []vec.Vec2, dx, dy float64) []vec.Vec2 {
	if pts == nil {
		return nil
	}
	out := make([]vec.Vec2, len(pts))
	for i, v := range pts {
		out[i] = vec.Vec2{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

func bounds(pts []vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, v := range pts[1:] {
		r.LLx = math.Min(r.LLx, v.X)
		r.LLy = math.Min(r.LLy, v.Y)
		r.URx = math.Max(r.URx, v.X)
		r.URy = math.Max(r.URy, v.Y)
	}
	return r
}

// simplify drops interior points that lie on the line through their neighbours.
// The first and last points are always kept.
func simplify(pts []vec.Vec2) []vec.Vec2 {
	if len(pts) < 3 {
		return pts
	}
	out := []vec.Vec2{pts[0]}
	for i := 1; i < len(pts)-1; i++ {
		a, b, c := out[len(out)-1], pts[i], pts[i+1]
		if samePoint(a, b) || math.Abs(cross(a, b, c)) <= collinearEps {
			continue
		}
		out = append(out, b)
	}
	if last := pts[len(pts)-1]; !samePoint(out[len(out)-1], last) {
		out = append(out, last)
	}
	return out
}

// chamfer clips the listed vertices of a closed polygon at 45°, replacing each
// by two points c millimeters along its incident edges. The cut is clamped to
// half the shorter incident edge so neighbouring cuts never cross.
func chamfer(p Polygon, c float64, corners ...int) Polygon {
	if c <= 0 || len(p) < 3 {
		return p
	}
	cut := make(map[int]bool, len(corners))
	for _, i := range corners {
		cut[i] = true
	}

	n := len(p)
	out := make(Polygon, 0, n+len(corners))
	for i, v := range p {
		if !cut[i] {
			out = append(out, v)
			continue
		}
		prev, next := p[(i+n-1)%n], p[(i+1)%n]
		d := math.Min(c, math.Min(dist(v, prev), dist(v, next))/2)
		out = append(out, towards(v, prev, d), towards(v, next, d))
	}
	return out
}

func cross(a, b, c vec.Vec2) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func dist(a, b vec.Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func samePoint(a, b vec.Vec2) bool {
	return a.X == b.X && a.Y == b.Y
}

// towards returns the point d millimeters from a in the direction of b.
func towards(a, b vec.Vec2, d float64) vec.Vec2 {
	l := dist(a, b)
	if l == 0 {
		return a
	}
	return vec.Vec2{X: a.X + (b.X-a.X)*d/l, Y: a.Y + (b.Y-a.Y)*d/l}
}
