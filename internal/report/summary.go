// Package report prints terminal summaries of a loaded trajectory.
package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/geodesic/internal/trajectory"
)

type Summary struct {
	Samples       int
	TauMin        float64
	TauMax        float64
	RStart        float64
	REnd          float64
	RMin          float64
	RMax          float64
	HorizonRadius float64
	Crossed       bool
	CrossTau      float64
	radii         []float64
}

func Summarize(tr *trajectory.Trajectory, rh float64) Summary {
	s := Summary{Samples: tr.Len(), HorizonRadius: rh}
	if tr.Len() == 0 {
		return s
	}
	s.TauMin, s.TauMax = tr.TauRange()
	s.RMin, s.RMax = tr.RadiusRange()
	s.RStart = tr.Radius(0)
	s.REnd = tr.Radius(tr.Len() - 1)
	if i, ok := tr.CrossesHorizon(rh); ok {
		s.Crossed = true
		s.CrossTau = tr.Tau[i]
	}
	s.radii = tr.Radii()
	return s
}

func (s Summary) Render(st Styles) string {
	row := func(label, value string) string {
		return st.Label.Render(fmt.Sprintf("%-12s", label)) + " " + st.Value.Render(value)
	}

	lines := []string{
		st.Header.Render("geodesic summary"),
		row("samples", fmt.Sprintf("%d", s.Samples)),
		row("tau", fmt.Sprintf("%.4f .. %.4f", s.TauMin, s.TauMax)),
		row("r start/end", fmt.Sprintf("%.4f M -> %.4f M", s.RStart, s.REnd)),
		row("r range", fmt.Sprintf("%.4f .. %.4f M", s.RMin, s.RMax)),
	}
	if s.Crossed {
		lines = append(lines, st.Warning.Render(fmt.Sprintf("crosses horizon r=%.1fM at tau = %.4f", s.HorizonRadius, s.CrossTau)))
	} else {
		lines = append(lines, st.Success.Render(fmt.Sprintf("stays outside horizon r=%.1fM", s.HorizonRadius)))
	}
	if len(s.radii) > 0 {
		lines = append(lines, st.Subtle.Render("r(tau) "+Sparkline(s.radii, 48)))
	}

	return st.Box.Render(strings.Join(lines, "\n"))
}

// Preview plots r(τ) as an ASCII graph.
func Preview(tr *trajectory.Trajectory, width, height int) string {
	if tr.Len() == 0 {
		return ""
	}
	lo, hi := tr.TauRange()
	return asciigraph.Plot(tr.Radii(),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("r [M] vs tau (%.2f .. %.2f)", lo, hi)),
	)
}
