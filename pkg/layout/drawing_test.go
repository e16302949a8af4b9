package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sylvainf/bellows/pkg/bellows"
)

const tolerance = 1e-6

func defaultModel(t *testing.T) *bellows.PatternModel {
	t.Helper()
	m, err := bellows.ComputePattern(bellows.DefaultCamera(), bellows.DefaultConstruction())
	if err != nil {
		t.Fatalf("ComputePattern() error = %v", err)
	}
	return m
}

func totalArea(polys []bellows.Polygon) float64 {
	var sum float64
	for _, p := range polys {
		sum += math.Abs(p.Area())
	}
	return sum
}

func TestLayOut(t *testing.T) {
	m := defaultModel(t)
	d := LayOut(m, DefaultRenderParams())

	if d.Width != 655 || d.Height != 360 {
		t.Errorf("size = %vx%v, want 655x360", d.Width, d.Height)
	}
	if len(d.Polygons) != len(m.Polygons()) {
		t.Errorf("got %d polygons, want %d", len(d.Polygons), len(m.Polygons()))
	}
	if len(d.Lines) != len(m.FoldLines()) {
		t.Errorf("got %d lines, want %d", len(d.Lines), len(m.FoldLines()))
	}

	var all []float64
	for _, p := range d.Polygons {
		b := p.Bounds()
		all = append(all, b.LLx, b.LLy)
		if b.URx > d.Width-DefaultMargin+tolerance || b.URy > d.Height-DefaultMargin+tolerance {
			t.Errorf("polygon %v extends into the right or bottom margin", b)
		}
	}
	for _, v := range all {
		if v < DefaultMargin-tolerance {
			t.Errorf("coordinate %v lies inside the %vmm margin", v, DefaultMargin)
		}
	}

	if math.Abs(totalArea(d.Polygons)-totalArea(m.Polygons())) > tolerance {
		t.Error("LayOut() changed polygon area")
	}
}

func TestLayOutDashesValleys(t *testing.T) {
	m := defaultModel(t)
	d := LayOut(m, DefaultRenderParams())

	for i, l := range m.FoldLines() {
		want := l.Type == bellows.Valley
		if d.Lines[i].Dashed != want {
			t.Errorf("line %d (%s) dashed = %v, want %v", i, l.Type, d.Lines[i].Dashed, want)
		}
	}
}

func TestLayOutZeroMargin(t *testing.T) {
	m := defaultModel(t)
	params := DefaultRenderParams()
	params.Margin = 0

	d := LayOut(m, params)
	if d.Width != m.Width() || d.Height != m.Height() {
		t.Errorf("size = %vx%v, want %vx%v", d.Width, d.Height, m.Width(), m.Height())
	}
	if diff := cmp.Diff(m.Panels[0].Outline, d.Polygons[0]); diff != "" {
		t.Errorf("first outline mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitFaces(t *testing.T) {
	m := defaultModel(t)
	faces := SplitFaces(m)

	if len(faces) != 4 {
		t.Fatalf("got %d faces, want 4", len(faces))
	}
	for _, p := range m.Panels {
		fm, ok := faces[p.Face]
		if !ok {
			t.Fatalf("missing face %s", p.Face)
		}
		if len(fm.Panels) != 1 {
			t.Fatalf("face %s has %d panels, want 1", p.Face, len(fm.Panels))
		}

		got := fm.Panels[0]
		want := p.Outline.Translate(-p.Offset.X, -p.Offset.Y)
		if diff := cmp.Diff(want, got.Outline); diff != "" {
			t.Errorf("face %s outline mismatch (-want +got):\n%s", p.Face, diff)
		}
		if len(got.Stiffeners) != len(p.Stiffeners) || len(got.FoldLines) != len(p.FoldLines) {
			t.Errorf("face %s lost stiffeners or fold lines", p.Face)
		}
		if got.Offset.X != 0 || got.Offset.Y != 0 {
			t.Errorf("face %s offset = %v, want origin", p.Face, got.Offset)
		}
		if fm.Width() != p.Width || fm.Height() != p.Length {
			t.Errorf("face %s bbox = %vx%v, want %vx%v", p.Face, fm.Width(), fm.Height(), p.Width, p.Length)
		}
	}

	// m itself is untouched.
	if m.Panels[1].Offset.X == 0 {
		t.Error("SplitFaces() modified the source model")
	}
}

func TestFaceDrawings(t *testing.T) {
	m := defaultModel(t)
	ds := FaceDrawings(m, DefaultRenderParams())

	wantNames := []string{"face1_top", "face2_right", "face3_bottom", "face4_left"}
	var names []string
	var area float64
	for _, d := range ds {
		names = append(names, d.Name)
		area += totalArea(d.Polygons)
		if d.Height != 360 {
			t.Errorf("%s height = %v, want 360", d.Name, d.Height)
		}
	}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(area-totalArea(m.Polygons())) > tolerance {
		t.Errorf("face drawings cover %v mm², want %v", area, totalArea(m.Polygons()))
	}
}
