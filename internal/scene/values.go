package scene

import (
	"math"
	"strconv"
)

// Values is a numeric column. NaN entries marshal as null, which plotly
// treats as a gap.
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	b := make([]byte, 0, 2+len(v)*12)
	b = append(b, '[')
	for i, f := range v {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendNumber(b, f)
	}
	return append(b, ']'), nil
}

// Number is a scalar that marshals NaN and ±Inf as null.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	return appendNumber(nil, float64(n)), nil
}

func appendNumber(b []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(b, "null"...)
	}
	return strconv.AppendFloat(b, f, 'g', -1, 64)
}

// Grid is a row-major 2D sample grid, as used by surface traces.
type Grid []Values

func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make(Values, cols)
	}
	return g
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// SphericalToCartesian maps (r, azimuth u, polar v) to Cartesian coordinates.
func SphericalToCartesian(r, u, v float64) Vec3 {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	return Vec3{X: cu * sv, Y: su * sv, Z: cv}.Scale(r)
}
