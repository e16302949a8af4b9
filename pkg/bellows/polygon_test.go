package bellows

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func square(s float64) Polygon {
	return Polygon{{X: 0, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0, Y: s}}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name string
		p    Polygon
		want float64
	}{
		{"square", square(10), 100},
		{"reversed", Polygon{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}, -100},
		{"triangle", Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}, 6},
		{"degenerate", Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Area(); math.Abs(got-tt.want) > tolerance {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChamfer(t *testing.T) {
	tests := []struct {
		name     string
		p        Polygon
		c        float64
		corners  []int
		wantLen  int
		wantArea float64
	}{
		{"all corners", square(10), 1, []int{0, 1, 2, 3}, 8, 100 - 4*0.5},
		{"two corners", square(10), 2, []int{0, 2}, 6, 100 - 2*2},
		{"clamped to half edge", square(2), 5, []int{0, 1, 2, 3}, 8, 4 - 4*0.5},
		{"zero chamfer", square(10), 0, []int{0, 1, 2, 3}, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chamfer(tt.p, tt.c, tt.corners...)
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
			if a := got.Area(); math.Abs(a-tt.wantArea) > tolerance {
				t.Errorf("Area() = %v, want %v", a, tt.wantArea)
			}
		})
	}
}

func TestChamferCutsAt45Degrees(t *testing.T) {
	got := chamfer(square(10), 1.5, 0)
	want := Polygon{{X: 0, Y: 1.5}, {X: 1.5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("chamfer() mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplify(t *testing.T) {
	in := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 4}, {X: 2, Y: 5}, {X: 2, Y: 5}}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 4}, {X: 2, Y: 5}}
	if diff := cmp.Diff(want, simplify(in)); diff != "" {
		t.Errorf("simplify() mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundsAndTranslate(t *testing.T) {
	p := Polygon{{X: 1, Y: 2}, {X: 5, Y: -1}, {X: 3, Y: 7}}
	want := rect.Rect{LLx: 1, LLy: -1, URx: 5, URy: 7}
	if diff := cmp.Diff(want, p.Bounds()); diff != "" {
		t.Errorf("Bounds() mismatch (-want +got):\n%s", diff)
	}

	moved := p.Translate(10, 20)
	if moved[0] != (vec.Vec2{X: 11, Y: 22}) {
		t.Errorf("Translate()[0] = %v, want (11, 22)", moved[0])
	}
	if p[0] != (vec.Vec2{X: 1, Y: 2}) {
		t.Error("Translate() modified its receiver")
	}
	if Polyline(nil).Translate(1, 1) != nil {
		t.Error("Translate(nil) should stay nil")
	}
}
