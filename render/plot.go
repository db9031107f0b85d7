package render

import "github.com/guptarohit/asciigraph"

// PopulationPlot draws live-cell counts per generation as an ASCII line chart
func PopulationPlot(values []float64, width, height int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
