package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sylvainf/bellows/pkg/bellows"
	"github.com/sylvainf/bellows/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim    = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Pattern Reports
// =============================================================================

// printSummary prints the pattern configuration: frame sizes, fold count
// and overall dimensions.
func printSummary(w io.Writer, s bellows.Summary) {
	printTitle(w, "Bellows pattern")
	printKeyValue(w, "Front", mm2(s.Spec.FrontWidth, s.Spec.FrontHeight))
	printKeyValue(w, "Rear", mm2(s.Spec.RearWidth, s.Spec.RearHeight))
	printKeyValue(w, "Max draw", mm(s.Spec.MaxDraw))
	printKeyValue(w, "Folds", fmt.Sprintf("%d (%d pairs)", s.Folds, s.Pairs))
	printKeyValue(w, "Length", mm(s.PleatLength))
	printKeyValue(w, "Size", mm2(s.Width, s.Height))
}

// printPanels prints one line per face with its edge widths and length.
func printPanels(w io.Writer, m *bellows.PatternModel) {
	for _, p := range m.Panels {
		parts := []string{
			fmt.Sprintf("near %s", mm(p.NearEdge)),
			fmt.Sprintf("far %s", mm(p.FarEdge)),
			fmt.Sprintf("%d pleats", len(p.Stiffeners)),
		}
		fmt.Fprintln(w, "  "+styleKey.Render(p.Face.Name())+" "+StyleDim.Render(strings.Join(parts, " · ")))
	}
}

// printArtifacts lists the written files.
func printArtifacts(w io.Writer, r *pipeline.Result) {
	printSuccess(w, "Wrote %s", StyleNumber.Render(plural(len(r.Artifacts), "file")))
	for _, a := range r.Artifacts {
		printFile(w, a.Path)
	}
}

func mm(v float64) string { return fmt.Sprintf("%.1f mm", v) }

func mm2(a, b float64) string { return fmt.Sprintf("%.1f × %.1f mm", a, b) }

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
