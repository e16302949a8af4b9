package sink

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"github.com/sylvainf/bellows/pkg/layout"
)

// Vector writes drawings as SVG. Sizes are in millimeters so the file prints
// at 1:1 scale.
type Vector struct{}

func (Vector) Format() string { return FormatSVG }
func (Vector) Ext() string    { return ".svg" }

func (Vector) Export(w io.Writer, d layout.Drawing) error {
	svg, err := RenderSVG(d)
	if err != nil {
		return err
	}
	_, err = w.Write(svg)
	return err
}

// RenderSVG returns d as an SVG document.
func RenderSVG(d layout.Drawing) ([]byte, error) {
	c, err := ParseColor(d.Style.StrokeColor)
	if err != nil {
		return nil, err
	}
	sw := d.Style.StrokeWidth

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="0 0 %s %s">`+"\n",
		num(d.Width), num(d.Height), num(d.Width), num(d.Height))
	if d.Name != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", d.Name)
	}
	fmt.Fprintf(&buf, `  <g fill="none" stroke="%s" stroke-width="%s" stroke-linejoin="round" stroke-linecap="round">`+"\n",
		hexColor(c), num(sw))

	for _, p := range d.Polygons {
		if len(p) < 2 {
			continue
		}
		fmt.Fprintf(&buf, "    <path d=\"%sZ\"/>\n", pathData(p))
	}

	dash := dashPattern(sw)
	for _, l := range d.Lines {
		if len(l.Points) < 2 {
			continue
		}
		if l.Dashed {
			fmt.Fprintf(&buf, "    <polyline points=\"%s\" stroke-dasharray=\"%s,%s\"/>\n",
				points(l.Points), num(dash[0]), num(dash[1]))
			continue
		}
		fmt.Fprintf(&buf, "    <polyline points=\"%s\"/>\n", points(l.Points))
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes(), nil
}

func pathData(pts []vec.Vec2) string {
	var b []byte
	for i, p := range pts {
		if i == 0 {
			b = append(b, 'M')
		} else {
			b = append(b, 'L')
		}
		b = append(b, num(p.X)...)
		b = append(b, ',')
		b = append(b, num(p.Y)...)
	}
	return string(b)
}

func points(pts []vec.Vec2) string {
	var b []byte
	for i, p := range pts {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, num(p.X)...)
		b = append(b, ',')
		b = append(b, num(p.Y)...)
	}
	return string(b)
}

// num formats v with at most three decimals (micrometer precision).
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
