// Package trajectory loads precomputed geodesics as four parallel columns:
// proper time and Cartesian position, in geometrized units (M = 1).
package trajectory

import "math"

// Trajectory is a time-ordered sequence of (τ, x, y, z) samples.
type Trajectory struct {
	Tau []float64
	X   []float64
	Y   []float64
	Z   []float64
}

func (t *Trajectory) Len() int {
	return len(t.Tau)
}

// TauRange returns the exact minimum and maximum proper time. A NaN
// anywhere in the column makes both bounds NaN.
func (t *Trajectory) TauRange() (lo, hi float64) {
	if len(t.Tau) == 0 {
		return 0, 0
	}
	lo, hi = t.Tau[0], t.Tau[0]
	for _, v := range t.Tau {
		if math.IsNaN(v) {
			return math.NaN(), math.NaN()
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Radius is the Schwarzschild radial coordinate of sample i.
func (t *Trajectory) Radius(i int) float64 {
	return math.Sqrt(t.X[i]*t.X[i] + t.Y[i]*t.Y[i] + t.Z[i]*t.Z[i])
}

func (t *Trajectory) Radii() []float64 {
	r := make([]float64, t.Len())
	for i := range r {
		r[i] = t.Radius(i)
	}
	return r
}

func (t *Trajectory) RadiusRange() (lo, hi float64) {
	if t.Len() == 0 {
		return 0, 0
	}
	lo, hi = t.Radius(0), t.Radius(0)
	for i := 1; i < t.Len(); i++ {
		r := t.Radius(i)
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	return lo, hi
}

// CrossesHorizon reports the first sample at or inside radius rh.
func (t *Trajectory) CrossesHorizon(rh float64) (int, bool) {
	for i := 0; i < t.Len(); i++ {
		if t.Radius(i) <= rh {
			return i, true
		}
	}
	return -1, false
}
