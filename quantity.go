package easement

import (
	"fmt"
	"math"
)

// Length is implemented by every quantity measured in meters.
type Length interface {
	Meters() float64
}

// === Curvature =============================================================

// Curvature (1/m) of a track. Positive values curve to the right, negative
// values to the left, zero is straight.
type Curvature float64

// Straight is the curvature of a straight track.
const Straight Curvature = 0

// IsStraight is a predicate: is k exactly zero?
func (k Curvature) IsStraight() bool {
	return k == Straight
}

// Add returns k + k2.
func (k Curvature) Add(k2 Curvature) Curvature {
	return k + k2
}

// Sub returns k - k2.
func (k Curvature) Sub(k2 Curvature) Curvature {
	return k - k2
}

// Scaled returns k scaled by factor a.
func (k Curvature) Scaled(a float64) Curvature {
	return k * Curvature(a)
}

// Radius converts k to its radius. A straight track has no radius, in which
// case ok is false.
func (k Curvature) Radius() (r Radius, ok bool) {
	if k.IsStraight() {
		return 0, false
	}
	return Radius(1 / float64(k)), true
}

// Sweep is the counter-clockwise angle a tangent turns by when travelling
// s along a track of curvature k. Right curves turn clockwise, therefore the
// sign is opposite to the sign of k.
func (k Curvature) Sweep(s ArcLength) Radian {
	return Radian(-(float64(k) * float64(s)))
}

func (k Curvature) String() string {
	return fmt.Sprintf("%g/m", float64(k))
}

// CurvatureOf converts an optional radius to a curvature. A missing radius
// denotes a straight tie-in. A radius of 0 has no curvature and is taken as
// straight as well.
func CurvatureOf(r *float64) Curvature {
	if r == nil {
		return Straight
	}
	if *r == 0 {
		tracer().Infof("radius 0 taken as straight")
		return Straight
	}
	return Radius(*r).Curvature()
}

// === Radius ================================================================

// Radius (m) of a circular arc, signed like the curvature it is derived from.
// Strokes keep curvatures, so a radius read back from a stroke is 1/(1/r) and
// may differ from the given r in the last bit.
type Radius float64

// Curvature converts r to a curvature.
func (r Radius) Curvature() Curvature {
	return Curvature(1 / float64(r))
}

// Meters implements Length.
func (r Radius) Meters() float64 {
	return float64(r)
}

// Abs is the magnitude of r.
func (r Radius) Abs() Radius {
	return Radius(math.Abs(float64(r)))
}

func (r Radius) String() string {
	return fmt.Sprintf("R%g", float64(r))
}

// === Arc Length ============================================================

// ArcLength (m) measures distance along a curve from the curve's own start.
type ArcLength float64

// Meters implements Length.
func (s ArcLength) Meters() float64 {
	return float64(s)
}

// Add returns s + s2.
func (s ArcLength) Add(s2 ArcLength) ArcLength {
	return s + s2
}

// Sub returns s - s2.
func (s ArcLength) Sub(s2 ArcLength) ArcLength {
	return s - s2
}

// Scaled returns s scaled by factor a.
func (s ArcLength) Scaled(a float64) ArcLength {
	return s * ArcLength(a)
}

// Ratio returns s / total.
func (s ArcLength) Ratio(total ArcLength) float64 {
	return float64(s) / float64(total)
}

func (s ArcLength) String() string {
	return fmt.Sprintf("%gm", float64(s))
}

// === Stationing ============================================================

// Stationing (m) is a position on the chainage axis of a route. Its origin is
// independent of any curve.
type Stationing float64

// Advance returns the station reached after travelling s.
func (l Stationing) Advance(s ArcLength) Stationing {
	return l + Stationing(s)
}

// Since returns the arc length travelled from station l0 to l.
func (l Stationing) Since(l0 Stationing) ArcLength {
	return ArcLength(l - l0)
}

// Add returns l + l2.
func (l Stationing) Add(l2 Stationing) Stationing {
	return l + l2
}

// Sub returns l - l2.
func (l Stationing) Sub(l2 Stationing) Stationing {
	return l - l2
}

// NextWhole returns the smallest whole station strictly greater than l.
func (l Stationing) NextWhole() Stationing {
	return Stationing(math.Floor(float64(l)) + 1)
}

// IsWhole is a predicate: is l a whole station?
func (l Stationing) IsWhole() bool {
	return float64(l) == math.Trunc(float64(l))
}

func (l Stationing) String() string {
	return fmt.Sprintf("%gk", float64(l))
}
