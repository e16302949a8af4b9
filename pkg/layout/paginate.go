package layout

import (
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/rect"

	"github.com/sylvainf/bellows/pkg/bellows"
	"github.com/sylvainf/bellows/pkg/errors"
)

// PageSize is a sheet size in millimeters, portrait orientation.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Supported sheet sizes.
var (
	A4 = PageSize{Name: "A4", Width: 210, Height: 297}
	A3 = PageSize{Name: "A3", Width: 297, Height: 420}
)

// IsZero reports whether no page size is set (no splitting).
func (s PageSize) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// String returns the sheet name, or "none".
func (s PageSize) String() string {
	if s.IsZero() {
		return "none"
	}
	return s.Name
}

// ParsePageSize parses "none", "a4" or "a3" (case-insensitive).
// An empty string means "none".
func ParsePageSize(s string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PageSize{}, nil
	case "a4":
		return A4, nil
	case "a3":
		return A3, nil
	default:
		return PageSize{}, errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported page size: %s (must be 'none', 'a4' or 'a3')", s)
	}
}

// minArea is the clipped area below which a polygon piece is treated as a
// sliver left by an edge lying on the page boundary.
const minArea = 1e-9

// Page is one sheet of a paginated drawing. Content is in the coordinates
// of the source drawing; Bounds locates the sheet within it.
type Page struct {
	Row      int
	Col      int
	Size     PageSize
	Bounds   rect.Rect
	Polygons []bellows.Polygon
	Lines    []Line
	Style    RenderParams
}

// Name returns "page_{row}_{col}".
func (p Page) Name() string {
	return fmt.Sprintf("page_%d_%d", p.Row, p.Col)
}

// Empty reports whether nothing of the pattern reaches this sheet.
func (p Page) Empty() bool {
	return len(p.Polygons) == 0 && len(p.Lines) == 0
}

// Drawing returns the page as a sheet-sized drawing with its origin at the
// sheet's top-left corner.
func (p Page) Drawing() Drawing {
	dx, dy := -p.Bounds.LLx, -p.Bounds.LLy
	d := Drawing{
		Name:   p.Name(),
		Width:  p.Size.Width,
		Height: p.Size.Height,
		Style:  p.Style,
	}
	for _, poly := range p.Polygons {
		d.Polygons = append(d.Polygons, poly.Translate(dx, dy))
	}
	for _, l := range p.Lines {
		d.Lines = append(d.Lines, Line{Points: l.Points.Translate(dx, dy), Dashed: l.Dashed})
	}
	return d
}

// Grid returns how many sheet rows and columns are needed to cover d.
func Grid(d Drawing, size PageSize) (rows, cols int) {
	return cells(d.Height, size.Height), cells(d.Width, size.Width)
}

func cells(length, sheet float64) int {
	n := int(math.Ceil(length/sheet - 1e-9))
	return max(n, 1)
}

// Paginate tiles d into sheets of the given size in row-major order starting
// at row 1, column 1. Outlines and fold lines are clipped to each sheet;
// sheets the pattern does not reach are omitted.
func Paginate(d Drawing, size PageSize) ([]Page, error) {
	if size.IsZero() || size.Width <= 0 || size.Height <= 0 {
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "page size %s cannot tile a drawing", size)
	}

	rows, cols := Grid(d, size)
	var pages []Page
	for row := 1; row <= rows; row++ {
		for col := 1; col <= cols; col++ {
			pg := Page{
				Row:  row,
				Col:  col,
				Size: size,
				Bounds: rect.Rect{
					LLx: float64(col-1) * size.Width,
					LLy: float64(row-1) * size.Height,
					URx: float64(col) * size.Width,
					URy: float64(row) * size.Height,
				},
				Style: d.Style,
			}
			for _, poly := range d.Polygons {
				if c := ClipPolygon(poly, pg.Bounds); math.Abs(c.Area()) > minArea {
					pg.Polygons = append(pg.Polygons, c)
				}
			}
			for _, l := range d.Lines {
				for _, piece := range ClipPolyline(l.Points, pg.Bounds) {
					pg.Lines = append(pg.Lines, Line{Points: piece, Dashed: l.Dashed})
				}
			}
			if !pg.Empty() {
				pages = append(pages, pg)
			}
		}
	}
	return pages, nil
}
