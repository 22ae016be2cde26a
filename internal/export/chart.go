package export

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/geodesic/internal/trajectory"
)

// RadiusChartPNG plots r(τ) with the horizon radius as a dashed line.
func RadiusChartPNG(w io.Writer, tr *trajectory.Trajectory, rh float64) error {
	lo, hi := tr.TauRange()

	graph := chart.Chart{
		Width:  1024,
		Height: 512,
		XAxis:  chart.XAxis{Name: "Proper time τ"},
		YAxis:  chart.YAxis{Name: "r [M]"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "r(τ)",
				XValues: tr.Tau,
				YValues: tr.Radii(),
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("b2182b"),
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "horizon",
				XValues: []float64{lo, hi},
				YValues: []float64{rh, rh},
				Style: chart.Style{
					StrokeColor:     drawing.ColorFromHex("555555"),
					StrokeWidth:     1,
					StrokeDashArray: []float64{5, 5},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
