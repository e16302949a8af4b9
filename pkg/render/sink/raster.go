package sink

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"github.com/sylvainf/bellows/pkg/errors"
	"github.com/sylvainf/bellows/pkg/layout"
)

// jpegQuality is the encoder quality for JPEG output.
const jpegQuality = 95

// maxPixels bounds the canvas so a typo in --dpi cannot exhaust memory.
const maxPixels = 400_000_000

// joinSides is the number of sides of the polygon drawn at stroke joins.
const joinSides = 12

// Raster writes drawings as PNG, JPEG or WebP images at DPI dots per inch,
// black strokes on a white background by default.
type Raster struct {
	DPI      float64
	Encoding string // FormatPNG, FormatJPEG or FormatWebP
}

func (r Raster) Format() string { return r.Encoding }

func (r Raster) Ext() string {
	if r.Encoding == FormatJPEG {
		return ".jpg"
	}
	return "." + r.Encoding
}

func (r Raster) Export(w io.Writer, d layout.Drawing) error {
	img, err := r.Rasterize(d)
	if err != nil {
		return err
	}
	switch r.Encoding {
	case FormatPNG:
		return imaging.Encode(w, img, imaging.PNG)
	case FormatJPEG:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	case FormatWebP:
		return webp.Encode(w, img, &webp.Options{Lossless: true})
	default:
		return errors.New(errors.ErrCodeUnsupportedFormat, "unsupported raster encoding: %s", r.Encoding)
	}
}

// Canvas returns the canvas size in pixels for d. Sizes are bounded in
// float64 before converting, so no DPI can overflow the pixel count.
func (r Raster) Canvas(d layout.Drawing) (int, int, error) {
	s := r.scale()
	w, h := pixels(d.Width*s), pixels(d.Height*s)
	if !(w > 0 && h > 0) {
		return 0, 0, errors.New(errors.ErrCodeInvalidDimension, "drawing %q has no area", d.Name)
	}
	if w*h > maxPixels {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput,
			"raster of %.0fx%.0f pixels for %q is too large; lower the DPI", w, h, d.Name)
	}
	return int(w), int(h), nil
}

// Check reports whether d can be rasterized at r.DPI without encoding it.
func (r Raster) Check(d layout.Drawing) error {
	_, _, err := r.Canvas(d)
	return err
}

// pixels rounds up, ignoring float noise from the mm to px conversion.
func pixels(v float64) float64 {
	return math.Ceil(v - 1e-9)
}

func (r Raster) scale() float64 {
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return dpi / mmPerInch
}

// Rasterize strokes d onto a white canvas.
func (r Raster) Rasterize(d layout.Drawing) (*image.NRGBA, error) {
	c, err := ParseColor(d.Style.StrokeColor)
	if err != nil {
		return nil, err
	}
	w, h, err := r.Canvas(d)
	if err != nil {
		return nil, err
	}

	s := r.scale()
	half := math.Max(d.Style.StrokeWidth*s/2, 0.5)
	st := stroker{z: vector.NewRasterizer(w, h), scale: s, half: half}

	for _, p := range d.Polygons {
		if len(p) < 2 {
			continue
		}
		closed := append(append([]vec.Vec2(nil), p...), p[0])
		st.polyline(closed)
	}
	dash := dashPattern(d.Style.StrokeWidth)
	for _, l := range d.Lines {
		if !l.Dashed {
			st.polyline(l.Points)
			continue
		}
		for _, piece := range dashes(l.Points, dash[0], dash[1]) {
			st.polyline(piece)
		}
	}

	img := imaging.New(w, h, color.White)
	st.z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	return img, nil
}

// stroker turns polylines into filled outlines on a rasterizer. Every shape
// is added with the same winding so overlapping pieces never cancel out.
type stroker struct {
	z     *vector.Rasterizer
	scale float64
	half  float64 // half the stroke width, in pixels
}

func (st *stroker) polyline(pts []vec.Vec2) {
	for i := 0; i+1 < len(pts); i++ {
		st.segment(st.px(pts[i]), st.px(pts[i+1]))
	}
	for _, p := range pts {
		st.join(st.px(p))
	}
}

func (st *stroker) px(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.X * st.scale, Y: p.Y * st.scale}
}

func (st *stroker) segment(a, b vec.Vec2) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	ox, oy := -dy/n*st.half, dx/n*st.half
	st.fill([]vec.Vec2{
		{X: a.X + ox, Y: a.Y + oy},
		{X: b.X + ox, Y: b.Y + oy},
		{X: b.X - ox, Y: b.Y - oy},
		{X: a.X - ox, Y: a.Y - oy},
	})
}

func (st *stroker) join(c vec.Vec2) {
	pts := make([]vec.Vec2, joinSides)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / joinSides
		pts[i] = vec.Vec2{X: c.X + st.half*math.Cos(phi), Y: c.Y + st.half*math.Sin(phi)}
	}
	st.fill(pts)
}

func (st *stroker) fill(pts []vec.Vec2) {
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	st.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		st.z.LineTo(float32(p.X), float32(p.Y))
	}
	st.z.ClosePath()
}

func signedArea(pts []vec.Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// dashes cuts a polyline into "on" pieces of the given lengths, starting
// with a full dash at the first point.
func dashes(pts []vec.Vec2, on, off float64) [][]vec.Vec2 {
	if on <= 0 || off <= 0 || len(pts) < 2 {
		return [][]vec.Vec2{pts}
	}

	var out [][]vec.Vec2
	var cur []vec.Vec2
	drawing := true
	left := on // length remaining in the current dash or gap
	cur = append(cur, pts[0])

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > left {
			pos += left
			t := pos / segLen
			p := vec.Vec2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
			if drawing {
				out = append(out, append(cur, p))
				cur = nil
				left = off
			} else {
				cur = []vec.Vec2{p}
				left = on
			}
			drawing = !drawing
		}
		left -= segLen - pos
		if drawing {
			cur = append(cur, b)
		}
	}
	if drawing && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}
