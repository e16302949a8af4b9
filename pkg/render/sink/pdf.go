package sink

import (
	"io"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"github.com/sylvainf/bellows/pkg/layout"
)

// ptPerMM converts millimeters to PDF points.
const ptPerMM = 72 / mmPerInch

// PDF writes each drawing as a single-page PDF document sized to the drawing.
type PDF struct{}

func (PDF) Format() string { return FormatPDF }
func (PDF) Ext() string    { return ".pdf" }

func (PDF) Export(w io.Writer, d layout.Drawing) error {
	c, err := ParseColor(d.Style.StrokeColor)
	if err != nil {
		return err
	}

	height := d.Height * ptPerMM
	page, err := document.WriteSinglePage(w, &pdf.Rectangle{URx: d.Width * ptPerMM, URy: height}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF user space has y pointing up.
	pt := func(p vec.Vec2) (float64, float64) {
		return p.X * ptPerMM, height - p.Y*ptPerMM
	}
	trace := func(pts []vec.Vec2, closed bool) {
		page.MoveTo(pt(pts[0]))
		for _, p := range pts[1:] {
			page.LineTo(pt(p))
		}
		if closed {
			page.ClosePath()
		}
	}

	page.SetLineWidth(d.Style.StrokeWidth * ptPerMM)
	page.SetLineJoin(graphics.LineJoinRound)
	page.SetLineCap(graphics.LineCapRound)
	page.SetStrokeColor(pdfcolor.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255))

	var solid, dashed []layout.Line
	for _, l := range d.Lines {
		if len(l.Points) < 2 {
			continue
		}
		if l.Dashed {
			dashed = append(dashed, l)
		} else {
			solid = append(solid, l)
		}
	}

	stroke := false
	for _, p := range d.Polygons {
		if len(p) >= 2 {
			trace(p, true)
			stroke = true
		}
	}
	for _, l := range solid {
		trace(l.Points, false)
		stroke = true
	}
	if stroke {
		page.Stroke()
	}

	if len(dashed) > 0 {
		dash := dashPattern(d.Style.StrokeWidth)
		page.SetLineDash([]float64{dash[0] * ptPerMM, dash[1] * ptPerMM}, 0)
		for _, l := range dashed {
			trace(l.Points, false)
		}
		page.Stroke()
	}

	return page.Close()
}
