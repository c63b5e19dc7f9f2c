/*
Package easement implements the unit-tagged quantities, plane points and
affine transformations used to lay out railway transition curves.

Every quantity (curvature, radius, arc length, stationing, angles) is a
distinct type. Arithmetic is defined between values of the same quantity
only; crossing from one quantity to another always goes through a named
conversion such as Curvature.Radius or Degree.Radian.

# BSD License

# Copyright (c) The f5rail Authors

All rights reserved.

Please refer to the license file for more information.
*/
package easement

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'easement'
func tracer() tracing.Trace {
	return tracing.Select("easement")
}

// === Numeric Helpers =======================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// RoundTo rounds n to the given number of decimal places.
// Halves are rounded away from zero.
func RoundTo(n float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(n*scale) / scale
}

// === Vector Data Type ======================================================

// Vector is a displacement in the plane, (dx,dy).
// Vectors are created by ToVector or as the difference of two points.
type Vector complex128

// V is a quick notation for constructing a vector from floats.
func V(dx, dy float64) Vector {
	return Vector(complex(dx, dy))
}

// DX is the x-part of a vector.
func (v Vector) DX() float64 {
	return real(v)
}

// DY is the y-part of a vector.
func (v Vector) DY() float64 {
	return imag(v)
}

// Len is the euclidean length of a vector.
func (v Vector) Len() float64 {
	return cmplx.Abs(complex128(v))
}

// Scaled returns a new vector scaled by factor a.
func (v Vector) Scaled(a float64) Vector {
	return V(v.DX()*a, v.DY()*a)
}

func (v Vector) String() string {
	return fmt.Sprintf("<%g,%g>", v.DX(), v.DY())
}

// === Point Data Type =======================================================

// Point is a position in the plane.
type Point complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a point from floats.
func P(x, y float64) Point {
	return Point(complex(x, y))
}

// Pretty Stringer for points.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X(), p.Y())
}

// F is a quick notation for getting float values from a point.
func (p Point) F() (float64, float64) {
	return p.X(), p.Y()
}

// X is the x-part of a point.
func (p Point) X() float64 {
	return real(p)
}

// Y is the y-part of a point.
func (p Point) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Point) Zap() Point {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this point the origin?
func (p Point) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two points.
func (p Point) Equal(p2 Point) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point(complex128(p) + complex128(v))
}

// Sub returns the vector leading from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector(complex128(p) - complex128(q))
}

// Shifted returns a new point translated by v.
func (p Point) Shifted(v Vector) Point {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Rotated returns a new point rotated around origin by theta (counterclockwise).
func (p Point) Rotated(theta Radian) Point {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// RotatedAround returns a new point rotated around c by theta (counterclockwise).
func (p Point) RotatedAround(c Point, theta Radian) Point {
	T := Translation(Origin.Sub(c)).Combine(Rotation(theta)).Combine(Translation(c.Sub(Origin)))
	return T.Transform(p).Zap()
}

// === Affine Transformations ================================================

// AT is an affine transform of the plane, the matrix
//
//	| a b e |
//	| c d f |
//	| 0 0 1 |
//
// applied to points in homogeneous coordinates (x, y, 1).
type AT struct {
	a, b, c, d float64 // linear part
	e, f       float64 // translation
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{a: 1, d: 1}
}

// Translation transform. Translate a point by v.
func Translation(v Vector) AT {
	return AT{a: 1, d: 1, e: v.DX(), f: v.DY()}
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
func Rotation(theta Radian) AT {
	sin, cos := math.Sincos(float64(theta))
	return AT{a: cos, b: -sin, c: sin, d: cos}
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]", m.a, m.b, m.e, m.c, m.d, m.f)
}

// Combine returns the transform applying m first, then n.
func (m AT) Combine(n AT) AT {
	return AT{
		a: n.a*m.a + n.b*m.c,
		b: n.a*m.b + n.b*m.d,
		c: n.c*m.a + n.d*m.c,
		d: n.c*m.b + n.d*m.d,
		e: n.a*m.e + n.b*m.f + n.e,
		f: n.c*m.e + n.d*m.f + n.f,
	}
}

// Transform applies m to p.
func (m AT) Transform(p Point) Point {
	x, y := p.F()
	return P(m.a*x+m.b*y+m.e, m.c*x+m.d*y+m.f)
}
