package transition

import (
	"fmt"
	"math"

	"github.com/f5rail/easement"
)

// Diminish is the law by which curvature changes along a transition curve.
type Diminish int

const (
	// Sine is the half-wave sine diminish. Curvature changes slowly near both
	// tie-ins and fastest at the middle of the curve, so the rate of change of
	// curvature is zero where the curve meets the adjacent tracks.
	Sine Diminish = iota + 1
	// Linear changes curvature at a constant rate, a clothoid.
	Linear
)

// CurvatureAt returns the curvature at arc length s of a transition curve of
// total length tcl, running from curvature k0 to k1.
//
// Callers guarantee 0 ≤ s ≤ tcl.
func (d Diminish) CurvatureAt(tcl, s easement.ArcLength, k0, k1 easement.Curvature) easement.Curvature {
	x := s.Ratio(tcl)
	return k0.Add(k1.Sub(k0).Scaled(d.ease(x)))
}

// ease maps the relative position x ∈ [0,1] to the relative change of
// curvature y ∈ [0,1].
func (d Diminish) ease(x float64) float64 {
	switch d {
	case Sine:
		return math.Sin((x-0.5)*math.Pi)/2 + 0.5
	case Linear:
		return x
	}
	panic(fmt.Sprintf("transition: unknown diminish %d", int(d)))
}

// IsValid is a predicate: is d a known diminish?
func (d Diminish) IsValid() bool {
	return d == Sine || d == Linear
}

func (d Diminish) String() string {
	switch d {
	case Sine:
		return "sine"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("Diminish(%d)", int(d))
}

// ParseDiminish accepts the names printed by Diminish.String, as well as
// "sin" and "clothoid".
func ParseDiminish(s string) (Diminish, error) {
	switch s {
	case "sine", "sin":
		return Sine, nil
	case "linear", "clothoid":
		return Linear, nil
	}
	return 0, fmt.Errorf("%w: unknown diminish %q", ErrInvalidParameter, s)
}
