package easement

import (
	"fmt"
	"math"
)

// Angle is implemented by every angular quantity.
type Angle interface {
	Radians() Radian
}

// Radian is an angle in radians, counter-clockwise positive.
type Radian float64

// Radians implements Angle.
func (a Radian) Radians() Radian {
	return a
}

// Degree converts a to degrees.
func (a Radian) Degree() Degree {
	return Degree(float64(a) * 180 / math.Pi)
}

// Add returns a + b.
func (a Radian) Add(b Radian) Radian {
	return a + b
}

// Sub returns a - b.
func (a Radian) Sub(b Radian) Radian {
	return a - b
}

// Scaled returns a scaled by factor f.
func (a Radian) Scaled(f float64) Radian {
	return a * Radian(f)
}

// Sin returns the sine of a.
func (a Radian) Sin() float64 {
	return math.Sin(float64(a))
}

// Cos returns the cosine of a.
func (a Radian) Cos() float64 {
	return math.Cos(float64(a))
}

func (a Radian) String() string {
	return fmt.Sprintf("%grad", float64(a))
}

// Degree is an angle in degrees, counter-clockwise positive.
type Degree float64

// Radians implements Angle.
func (d Degree) Radians() Radian {
	return d.Radian()
}

// Radian converts d to radians.
func (d Degree) Radian() Radian {
	return Radian(float64(d) * math.Pi / 180)
}

// Add returns d + e.
func (d Degree) Add(e Degree) Degree {
	return d + e
}

// Sub returns d - e.
func (d Degree) Sub(e Degree) Degree {
	return d - e
}

func (d Degree) String() string {
	return fmt.Sprintf("%g°", float64(d))
}

// Quarter is a quarter turn.
const Quarter Radian = math.Pi / 2

// TangentAngle is the direction of travel at a point of a track.
type TangentAngle Radian

// Tangent creates a tangent angle from any angle.
func Tangent(a Angle) TangentAngle {
	return TangentAngle(a.Radians())
}

// Radians implements Angle.
func (t TangentAngle) Radians() Radian {
	return Radian(t)
}

// Turned returns the tangent after turning counter-clockwise by a.
func (t TangentAngle) Turned(a Radian) TangentAngle {
	return TangentAngle(Radian(t) + a)
}

// Central converts t to the central angle of the point on an arc of
// curvature k where the track heads towards t. The central angle points
// from the arc's center to that point. Straight tracks have no center and
// yield t itself.
func (t TangentAngle) Central(k Curvature) CentralAngle {
	switch {
	case k > 0:
		return CentralAngle(Radian(t) + Quarter)
	case k < 0:
		return CentralAngle(Radian(t) - Quarter)
	}
	return CentralAngle(t)
}

func (t TangentAngle) String() string {
	return fmt.Sprintf("t=%s", Radian(t).Degree())
}

// CentralAngle is the direction from an arc's center to a point on the arc.
type CentralAngle Radian

// Radians implements Angle.
func (a CentralAngle) Radians() Radian {
	return Radian(a)
}

// Turned returns the central angle after turning counter-clockwise by s.
func (a CentralAngle) Turned(s Radian) CentralAngle {
	return CentralAngle(Radian(a) + s)
}

func (a CentralAngle) String() string {
	return fmt.Sprintf("a=%s", Radian(a).Degree())
}

// ToVector composes a length and a direction into a displacement.
func ToVector(l Length, a Angle) Vector {
	sin, cos := math.Sincos(float64(a.Radians()))
	return V(l.Meters()*cos, l.Meters()*sin)
}
