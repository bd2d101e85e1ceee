package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sublab/internal/sim"
)

// Axis bounds keep the plot from rescaling as the run animates.
const (
	CurveFloor   = 0
	CurveCeiling = 160
)

// Curve plots a run's temperature history. It returns "" when there is
// nothing to plot yet.
func Curve(curve []sim.Reading, width, height int) string {
	if len(curve) == 0 {
		return ""
	}

	// Start from room temperature so the first segment is visible.
	data := make([]float64, 0, len(curve)+1)
	data = append(data, 25)
	for _, r := range curve {
		data = append(data, r.Temperature)
	}

	last := curve[len(curve)-1]
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(CurveFloor),
		asciigraph.UpperBound(CurveCeiling),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("temperature °C over %d min", last.Minute)),
	)
}
