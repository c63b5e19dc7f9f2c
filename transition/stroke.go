package transition

import (
	"fmt"

	"github.com/f5rail/easement"
)

// Pose is a position on a track together with the direction of travel.
type Pose struct {
	P easement.Point
	T easement.TangentAngle
}

func (p Pose) String() string {
	return fmt.Sprintf("%s %s", p.P, p.T)
}

// Stroke is one piece of a spiral: a circular arc of constant curvature, or a
// straight if the curvature is zero.
//
// A stroke keeps both of its end poses as well as the center and central
// angles of its arc, so the end point may be cross-checked against the
// center (see EndFromCenter).
type Stroke struct {
	k      easement.Curvature
	length easement.ArcLength
	p0, p1 easement.Point
	t0, t1 easement.TangentAngle
	r      easement.Radius       // signed, zero for straights
	center easement.Point        // zero for straights
	a0, a1 easement.CentralAngle // zero for straights
}

// NewStroke lays out a track of curvature k and the given length, starting at p0
// heading towards t0.
//
// Positive curvature turns right: the center lies to the right of t0 and the
// tangent turns clockwise by k·length.
func NewStroke(k easement.Curvature, length easement.ArcLength, p0 easement.Point, t0 easement.TangentAngle) Stroke {
	st := Stroke{k: k, length: length, p0: p0, t0: t0}
	r, ok := k.Radius()
	if !ok {
		st.p1 = p0.Add(easement.ToVector(length, t0)).Zap()
		st.t1 = t0
		return st
	}
	sweep := k.Sweep(length)
	st.r = r
	st.center = p0.Add(easement.ToVector(r, t0.Radians().Sub(easement.Quarter))).Zap()
	st.p1 = p0.RotatedAround(st.center, sweep)
	st.t1 = t0.Turned(sweep)
	st.a0 = t0.Central(k)
	st.a1 = st.a0.Turned(sweep)
	return st
}

// Step lays out a stroke starting at pose and returns it together with the
// pose at its far end.
func Step(pose Pose, k easement.Curvature, length easement.ArcLength) (Stroke, Pose) {
	st := NewStroke(k, length, pose.P, pose.T)
	return st, st.End()
}

// K is the curvature of the stroke.
func (st Stroke) K() easement.Curvature {
	return st.k
}

// Len is the arc length of the stroke.
func (st Stroke) Len() easement.ArcLength {
	return st.length
}

// IsStraight is a predicate: is this stroke a straight?
func (st Stroke) IsStraight() bool {
	return st.k.IsStraight()
}

// Radius is the signed radius of an arc. Straights have none.
func (st Stroke) Radius() (easement.Radius, bool) {
	return st.r, !st.IsStraight()
}

// Center is the center of an arc. Straights have none.
func (st Stroke) Center() (easement.Point, bool) {
	return st.center, !st.IsStraight()
}

// P0 is the start point.
func (st Stroke) P0() easement.Point {
	return st.p0
}

// P1 is the end point.
func (st Stroke) P1() easement.Point {
	return st.p1
}

// T0 is the tangent at the start point.
func (st Stroke) T0() easement.TangentAngle {
	return st.t0
}

// T1 is the tangent at the end point.
func (st Stroke) T1() easement.TangentAngle {
	return st.t1
}

// A0 is the central angle of the start point. For straights it is T0.
func (st Stroke) A0() easement.CentralAngle {
	if st.IsStraight() {
		return easement.CentralAngle(st.t0)
	}
	return st.a0
}

// A1 is the central angle of the end point. For straights it is T1.
func (st Stroke) A1() easement.CentralAngle {
	if st.IsStraight() {
		return easement.CentralAngle(st.t1)
	}
	return st.a1
}

// Start is the pose at the start point.
func (st Stroke) Start() Pose {
	return Pose{P: st.p0, T: st.t0}
}

// End is the pose at the end point.
func (st Stroke) End() Pose {
	return Pose{P: st.p1, T: st.t1}
}

// EndFromCenter derives the end point from the center, the radius and the
// end central angle, independently of P1. Straights derive it from the start
// point and the tangent.
func (st Stroke) EndFromCenter() easement.Point {
	if st.IsStraight() {
		return st.p0.Add(easement.ToVector(st.length, st.t0))
	}
	return st.center.Add(easement.ToVector(st.r.Abs(), st.a1))
}

func (st Stroke) String() string {
	if st.IsStraight() {
		return fmt.Sprintf("straight %s..%s", st.p0, st.p1)
	}
	return fmt.Sprintf("arc %s c=%s %s..%s", st.r, st.center, st.p0, st.p1)
}
