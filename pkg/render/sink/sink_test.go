package sink

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"github.com/sylvainf/bellows/pkg/bellows"
	"github.com/sylvainf/bellows/pkg/errors"
	"github.com/sylvainf/bellows/pkg/layout"
)

func testDrawing() layout.Drawing {
	return layout.Drawing{
		Name:   "test",
		Width:  10,
		Height: 10,
		Polygons: []bellows.Polygon{
			{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 9}},
		},
		Lines: []layout.Line{
			{Points: bellows.Polyline{{X: 1, Y: 5}, {X: 9, Y: 5}}},
			{Points: bellows.Polyline{{X: 5, Y: 1}, {X: 5, Y: 9}}, Dashed: true},
		},
		Style: layout.DefaultRenderParams(),
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		ext     string
		wantErr bool
	}{
		{"svg", "svg", ".svg", false},
		{"PNG", "png", ".png", false},
		{"jpg", "jpeg", ".jpg", false},
		{"jpeg", "jpeg", ".jpg", false},
		{"webp", "webp", ".webp", false},
		{"pdf", "pdf", ".pdf", false},
		{"tiff", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exp, err := New(tt.format, 0)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeUnsupportedFormat) {
					t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeUnsupportedFormat)
				}
				return
			}
			if exp.Format() != tt.want || exp.Ext() != tt.ext {
				t.Errorf("New(%q) = %s/%s, want %s/%s", tt.format, exp.Format(), exp.Ext(), tt.want, tt.ext)
			}
		})
	}
}

func TestNewDefaultDPI(t *testing.T) {
	exp, err := New("png", 0)
	if err != nil {
		t.Fatal(err)
	}
	if r := exp.(Raster); r.DPI != DefaultDPI {
		t.Errorf("DPI = %v, want %v", r.DPI, DefaultDPI)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"black", color.RGBA{A: 0xff}, false},
		{"Red", color.RGBA{R: 0xff, A: 0xff}, false},
		{"#00ff80", color.RGBA{G: 0xff, B: 0x80, A: 0xff}, false},
		{"#f00", color.RGBA{R: 0xff, A: 0xff}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"notacolor", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(testDrawing())
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	s := string(svg)

	for _, want := range []string{
		`width="10mm" height="10mm" viewBox="0 0 10 10"`,
		`stroke="#000000" stroke-width="1"`,
		`<path d="M1,1L9,1L9,9L1,9Z"/>`,
		`<polyline points="1,5 9,5"/>`,
		`<polyline points="5,1 5,9" stroke-dasharray="4,2"/>`,
		`<title>test</title>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG missing %q:\n%s", want, s)
		}
	}
	if !strings.HasSuffix(s, "</svg>\n") {
		t.Error("SVG not terminated")
	}
}

func TestRenderSVGBadColor(t *testing.T) {
	d := testDrawing()
	d.Style.StrokeColor = "sparkly"
	if _, err := RenderSVG(d); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderSVG() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:        "0",
		-0.0001:  "0",
		1.5:      "1.5",
		100:      "100",
		12.34567: "12.346",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRasterize(t *testing.T) {
	r := Raster{DPI: 254, Encoding: FormatPNG} // 10 px per mm
	img, err := r.Rasterize(testDrawing())
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("size = %v, want 100x100", b)
	}

	// On the solid fold line and the outline.
	for _, p := range [][2]int{{30, 50}, {50, 10}, {10, 30}} {
		if c := img.NRGBAAt(p[0], p[1]); c.R > 64 {
			t.Errorf("pixel %v = %v, want stroke", p, c)
		}
	}
	// Inside the panel, away from every stroke.
	for _, p := range [][2]int{{25, 25}, {75, 75}, {2, 2}} {
		if c := img.NRGBAAt(p[0], p[1]); c.R != 0xff {
			t.Errorf("pixel %v = %v, want background", p, c)
		}
	}
}

func TestRasterRejectsHugeCanvas(t *testing.T) {
	pattern := testDrawing()
	pattern.Width, pattern.Height = 655, 360

	tests := []struct {
		name string
		dpi  float64
		d    layout.Drawing
	}{
		{"above pixel budget", 1e6, testDrawing()},
		{"pixel count past int range", 1.596e8, pattern},
		{"width past int range", 1e300, pattern},
		{"infinite dpi", math.Inf(1), pattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Raster{DPI: tt.dpi, Encoding: FormatPNG}
			if err := r.Check(tt.d); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Check() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
			if _, err := r.Rasterize(tt.d); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("Rasterize() error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestRasterCanvas(t *testing.T) {
	r := Raster{DPI: 254}
	w, h, err := r.Canvas(testDrawing())
	if err != nil || w != 100 || h != 100 {
		t.Errorf("Canvas() = %d, %d, %v, want 100, 100, nil", w, h, err)
	}

	empty := testDrawing()
	empty.Width = 0
	if _, _, err := r.Canvas(empty); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("Canvas() of empty drawing error = %v, want %s", err, errors.ErrCodeInvalidDimension)
	}
}

func TestCheck(t *testing.T) {
	drawings := []layout.Drawing{testDrawing(), testDrawing()}
	drawings[1].Width = 1e7

	if err := Check(Vector{}, drawings); err != nil {
		t.Errorf("Check(Vector) error = %v, want nil", err)
	}
	if err := Check(Raster{DPI: 72, Encoding: FormatPNG}, drawings[:1]); err != nil {
		t.Errorf("Check(Raster) error = %v, want nil", err)
	}
	if err := Check(Raster{DPI: 72, Encoding: FormatPNG}, drawings); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Check(Raster) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestExport(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			exp, err := New(format, 72)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := exp.Export(&buf, testDrawing()); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if buf.Len() == 0 {
				t.Fatal("Export() wrote nothing")
			}

			switch format {
			case FormatPDF:
				if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
					t.Errorf("missing PDF header: %q", buf.Bytes()[:min(16, buf.Len())])
				}
			case FormatPNG:
				img, err := png.Decode(&buf)
				if err != nil {
					t.Fatalf("png.Decode() error = %v", err)
				}
				if b := img.Bounds(); b.Dx() != 29 || b.Dy() != 29 {
					t.Errorf("size = %v, want 29x29", b)
				}
			}
		})
	}
}

func TestDashes(t *testing.T) {
	tests := []struct {
		name string
		pts  []vec.Vec2
		want [][]vec.Vec2
	}{
		{
			name: "straight",
			pts:  []vec.Vec2{{X: 0}, {X: 10}},
			want: [][]vec.Vec2{{{X: 0}, {X: 4}}, {{X: 6}, {X: 10}}},
		},
		{
			name: "around a corner",
			pts:  []vec.Vec2{{X: 0}, {X: 3}, {X: 3, Y: 3}},
			want: [][]vec.Vec2{{{X: 0}, {X: 3}, {X: 3, Y: 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, dashes(tt.pts, 4, 2)); diff != "" {
				t.Errorf("dashes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
