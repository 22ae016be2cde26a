// Package scene builds the plotly figure for a Schwarzschild geodesic.
//
// A figure holds three traces, always in this order:
//
//   - the trajectory, a 3D polyline coloured by proper time
//   - the event horizon, a sphere of radius 2M
//   - a legend-only entry listing the initial conditions
//
// and a layout with a fixed camera and equal axis scaling. The types
// marshal directly to plotly.js's figure schema.
//
// # Example
//
//	tr, _ := trajectory.Load("geodesic.txt")
//	fig := scene.Build(tr, config.DefaultConfig())
//	_ = export.NewHTMLWriter(cdn).WriteFile("geodesic_plot.html", fig)
package scene
