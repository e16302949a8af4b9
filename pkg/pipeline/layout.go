package pipeline

import (
	"github.com/sylvainf/bellows/pkg/bellows"
	"github.com/sylvainf/bellows/pkg/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// Plan is the set of drawings a run will export.
type Plan struct {
	Drawings []layout.Drawing

	// Pages counts drawings that are single sheets of a split drawing.
	Pages int

	// Unsplit names the drawings that already fit on a single page and were
	// kept whole. The full pattern has the empty name.
	Unsplit []string
}

// GenerateLayout places m on drawings according to opts: one drawing for
// the whole pattern or one per face, each tiled onto pages when a page size
// is set. Drawings that fit on a single page are kept unsplit.
func GenerateLayout(m *bellows.PatternModel, opts Options) (Plan, error) {
	var base []layout.Drawing
	if opts.SeparateFaces {
		base = layout.FaceDrawings(m, opts.Render)
	} else {
		base = []layout.Drawing{layout.LayOut(m, opts.Render)}
	}

	size, err := opts.PageSize()
	if err != nil {
		return Plan{}, err
	}
	if size.IsZero() {
		return Plan{Drawings: base}, nil
	}

	var plan Plan
	for _, d := range base {
		if rows, cols := layout.Grid(d, size); rows == 1 && cols == 1 {
			plan.Drawings = append(plan.Drawings, d)
			plan.Unsplit = append(plan.Unsplit, d.Name)
			continue
		}
		pages, err := layout.Paginate(d, size)
		if err != nil {
			return Plan{}, err
		}
		for _, pg := range pages {
			pd := pg.Drawing()
			pd.Name = joinName(d.Name, pd.Name)
			plan.Drawings = append(plan.Drawings, pd)
			plan.Pages++
		}
	}
	return plan, nil
}
