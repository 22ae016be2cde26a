package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/geodesic/internal/trajectory"
)

// Plane selects the two coordinates a projection keeps.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

func ParsePlane(s string) (Plane, error) {
	switch p := Plane(strings.ToLower(s)); p {
	case PlaneXY, PlaneXZ, PlaneYZ:
		return p, nil
	}
	return "", fmt.Errorf("unknown plane %q (want xy, xz or yz)", s)
}

func (p Plane) axes(tr *trajectory.Trajectory) (a, b []float64) {
	switch p {
	case PlaneXZ:
		return tr.X, tr.Z
	case PlaneYZ:
		return tr.Y, tr.Z
	default:
		return tr.X, tr.Y
	}
}

// ProjectionSVG draws the trajectory projected onto a coordinate plane
// together with the horizon circle of radius rh. Both axes share one
// scale so the horizon stays round.
func ProjectionSVG(tr *trajectory.Trajectory, p Plane, width, height int, rh float64, strokeColor string) string {
	if tr.Len() < 2 {
		return ""
	}
	xs, ys := p.axes(tr)

	// Find bounds, always including the horizon
	minX, maxX := -rh, rh
	minY, maxY := -rh, rh
	for i := range xs {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	scale := float64(width) / rangeX
	if s := float64(height) / rangeY; s < scale {
		scale = s
	}
	offX := (float64(width) - rangeX*scale) / 2
	offY := (float64(height) - rangeY*scale) / 2
	toScreen := func(x, y float64) (float64, float64) {
		return offX + (x-minX)*scale, float64(height) - offY - (y-minY)*scale
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	cx, cy := toScreen(0, 0)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="#a9a9a9" fill-opacity="0.5"/>
`, cx, cy, rh*scale))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i := range xs {
		x, y := toScreen(xs[i], ys[i])
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
