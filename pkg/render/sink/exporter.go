package sink

import (
	"io"
	"strings"

	"github.com/sylvainf/bellows/pkg/errors"
	"github.com/sylvainf/bellows/pkg/layout"
)

// Supported output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatWebP = "webp"
	FormatPDF  = "pdf"
)

// DefaultDPI is the raster resolution used when none is given.
const DefaultDPI = 300.0

// mmPerInch converts between millimeters and device units.
const mmPerInch = 25.4

// Exporter writes a drawing in one output format.
type Exporter interface {
	// Format returns the canonical format name, e.g. "svg".
	Format() string
	// Ext returns the file extension including the dot.
	Ext() string
	// Export writes d to w.
	Export(w io.Writer, d layout.Drawing) error
}

// Checker is implemented by exporters that can reject a drawing before
// anything is written, such as [Raster] for canvases that are too large.
type Checker interface {
	Check(d layout.Drawing) error
}

// Check runs exp's checks on every drawing. Exporters without checks
// accept everything.
func Check(exp Exporter, drawings []layout.Drawing) error {
	c, ok := exp.(Checker)
	if !ok {
		return nil
	}
	for _, d := range drawings {
		if err := c.Check(d); err != nil {
			return err
		}
	}
	return nil
}

// Formats lists the accepted format names for help text and validation.
func Formats() []string {
	return []string{FormatSVG, FormatPNG, FormatJPEG, FormatWebP, FormatPDF}
}

// NormalizeFormat lowercases format and maps aliases ("jpg") to their
// canonical name. Unknown formats are returned unchanged.
func NormalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "jpg" {
		return FormatJPEG
	}
	return f
}

// New returns the exporter for format. dpi only applies to raster formats;
// a value <= 0 selects [DefaultDPI].
func New(format string, dpi float64) (Exporter, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	switch f := NormalizeFormat(format); f {
	case FormatSVG:
		return Vector{}, nil
	case FormatPNG, FormatJPEG, FormatWebP:
		return Raster{DPI: dpi, Encoding: f}, nil
	case FormatPDF:
		return PDF{}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat,
			"unsupported format: %s (must be one of %s)", format, strings.Join(Formats(), ", "))
	}
}

// dashPattern returns the on/off lengths used for valley folds.
func dashPattern(strokeWidth float64) [2]float64 {
	return [2]float64{4 * strokeWidth, 2 * strokeWidth}
}
