package scene

import (
	"math"
	"strings"

	"github.com/san-kum/geodesic/internal/config"
	"github.com/san-kum/geodesic/internal/trajectory"
)

// TrajectoryTrace draws the path as one polyline with each point coloured
// by its proper time; the colour range spans exactly [min τ, max τ].
func TrajectoryTrace(tr *trajectory.Trajectory, style config.TrajectoryStyle) Scatter3d {
	lo, hi := tr.TauRange()
	return Scatter3d{
		Name: style.Name,
		Mode: "lines",
		X:    Values(tr.X),
		Y:    Values(tr.Y),
		Z:    Values(tr.Z),
		Line: &Line{
			Color:      Values(tr.Tau),
			ColorScale: NamedScale(style.ColorScale),
			Width:      style.Width,
			ColorBar:   &ColorBar{Title: Title{style.ColorBarTitle}},
			CMin:       Number(lo),
			CMax:       Number(hi),
		},
	}
}

// HorizonSurface samples a sphere of radius r on an n×n grid of azimuth
// u ∈ [0, 2π] and polar angle v ∈ [0, π], endpoints included. Cell [i][j]
// holds the point at (u_i, v_j).
func HorizonSurface(r float64, n int) (x, y, z Grid) {
	u := linspace(0, 2*math.Pi, n)
	v := linspace(0, math.Pi, n)

	x, y, z = NewGrid(n, n), NewGrid(n, n), NewGrid(n, n)
	for i := range u {
		for j := range v {
			p := SphericalToCartesian(r, u[i], v[j])
			x[i][j], y[i][j], z[i][j] = p.X, p.Y, p.Z
		}
	}
	return x, y, z
}

func HorizonTrace(r float64, n int, style config.HorizonStyle) Surface {
	x, y, z := HorizonSurface(r, n)
	return Surface{
		Name:       style.Name,
		X:          x,
		Y:          y,
		Z:          z,
		ColorScale: UniformScale(style.Color),
		Opacity:    style.Opacity,
		ShowScale:  false,
		ShowLegend: true,
	}
}

// ConditionsText is the multi-line legend label, one "<br>" per line.
func ConditionsText(ic config.InitialCondition) string {
	lines := []string{
		"Initial conditions:",
		"r = " + ic.R,
		"θ = " + ic.Theta,
		"φ = " + ic.Phi,
		"v<sub>r</sub> = " + ic.VR,
		"v<sub>θ</sub> = " + ic.VTheta,
		"v<sub>φ</sub> = " + ic.VPhi,
	}
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteString("<br>")
	}
	return sb.String()
}

// ConditionsTrace carries the initial-condition text into the legend. It
// has a single null point, zero marker size and no hover label.
func ConditionsTrace(ic config.InitialCondition) Scatter3d {
	null := Values{math.NaN()}
	return Scatter3d{
		Name:       ConditionsText(ic),
		Mode:       "markers",
		X:          null,
		Y:          null,
		Z:          null,
		Marker:     &Marker{Size: 0},
		ShowLegend: boolPtr(true),
		HoverInfo:  "none",
	}
}

// Build assembles trajectory, horizon and conditions traces with the layout.
func Build(tr *trajectory.Trajectory, cfg *config.Config) *Figure {
	return &Figure{
		Data: []Trace{
			TrajectoryTrace(tr, cfg.Trajectory),
			HorizonTrace(cfg.HorizonRadius(), cfg.HorizonRes, cfg.Horizon),
			ConditionsTrace(cfg.Initial),
		},
		Layout: NewLayout(cfg),
	}
}

func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
