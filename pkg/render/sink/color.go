package sink

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/sylvainf/bellows/pkg/errors"
)

// ParseColor accepts an SVG color keyword ("black", "darkred") or a hex
// value in #rgb or #rrggbb form.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	// colorful.Hex accepts short trailing components, so the length is checked first.
	if strings.HasPrefix(name, "#") && (len(name) == 4 || len(name) == 7) {
		if c, err := colorful.Hex(name); err == nil {
			r, g, b := c.RGB255()
			return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
		}
	}
	return color.RGBA{}, errors.New(errors.ErrCodeInvalidInput,
		"invalid stroke color: %q (use a color name or #rrggbb)", s)
}

// hexColor formats c as #rrggbb.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
