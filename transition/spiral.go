package transition

import (
	"iter"
	"math"
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/f5rail/easement"
)

// Param holds the input of a transition curve.
type Param struct {
	Diminish Diminish              // law of curvature change
	K0       easement.Curvature    // curvature at the start
	K1       easement.Curvature    // curvature at the end
	L0       easement.Stationing   // station of the start
	TCL      easement.ArcLength    // length of the transition curve, > 0
	P0       easement.Point        // start point
	T0       easement.TangentAngle // direction of travel at the start
}

// Validate checks if a transition curve can be laid out with p.
// Errors are of type *InvalidParameterError.
func (p Param) Validate() error {
	if !p.Diminish.IsValid() {
		return invalid("diminish", "is unknown")
	}
	if !(p.TCL > 0) {
		return invalid("tcl", "must be positive")
	}
	if math.IsInf(float64(p.TCL), 0) {
		return invalid("tcl", "must be finite")
	}
	if math.IsNaN(float64(p.L0)) || math.IsInf(float64(p.L0), 0) {
		return invalid("l0", "must be finite")
	}
	return nil
}

// Strokes validates p and returns the strokes of its spiral as a lazy
// sequence. The sequence may be ranged over any number of times; every run
// lays out the curve anew from P0.
func Strokes(p Param) (iter.Seq[Stroke], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(Stroke) bool) {
		for _, st := range fold(p) {
			if !yield(st) {
				return
			}
		}
	}, nil
}

// fold threads the pose through the intervals of p, one stroke per interval.
func fold(p Param) iter.Seq2[Interval, Stroke] {
	return func(yield func(Interval, Stroke) bool) {
		pose := Pose{P: p.P0, T: p.T0}
		for iv := range Segment(p.L0, p.TCL) {
			k := p.Diminish.CurvatureAt(p.TCL, iv.Mid(), p.K0, p.K1)
			var st Stroke
			st, pose = Step(pose, k, iv.Len())
			tracer().Debugf("interval %s: k = %s, end = %s", iv, k, pose)
			if !yield(iv, st) {
				return
			}
		}
	}
}

// Plot lays out the transition curve for p.
func Plot(p Param) (*Spiral, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("plot %s transition, k = %s → %s, tcl = %s from %s",
		p.Diminish, p.K0, p.K1, p.TCL, p.L0)
	sp := &Spiral{
		l0:    p.L0,
		begin: Pose{P: p.P0, T: p.T0},
		index: treemap.NewWith(utils.Float64Comparator),
	}
	for iv, st := range fold(p) {
		sp.index.Put(float64(p.L0.Advance(iv.S0)), len(sp.strokes))
		sp.strokes = append(sp.strokes, st)
		sp.length = iv.S1
	}
	return sp, nil
}

// MustPlot is like Plot but panics if p is invalid.
func MustPlot(p Param) *Spiral {
	sp, err := Plot(p)
	if err != nil {
		panic(err)
	}
	return sp
}

// Spiral is a laid out transition curve: an ordered, immutable sequence of
// strokes, each one starting where its predecessor ends.
type Spiral struct {
	l0      easement.Stationing
	length  easement.ArcLength
	begin   Pose
	strokes []Stroke
	index   *treemap.Map // start station → index into strokes
}

// Len is the number of strokes.
func (sp *Spiral) Len() int {
	return len(sp.strokes)
}

// Stroke returns stroke i.
func (sp *Spiral) Stroke(i int) Stroke {
	return sp.strokes[i]
}

// Strokes returns a copy of all strokes.
func (sp *Spiral) Strokes() []Stroke {
	return slices.Clone(sp.strokes)
}

// All iterates over the strokes in order.
func (sp *Spiral) All() iter.Seq2[int, Stroke] {
	return slices.All(sp.strokes)
}

// Length is the total arc length of the spiral.
func (sp *Spiral) Length() easement.ArcLength {
	return sp.length
}

// Start is the station of the spiral's start point.
func (sp *Spiral) Start() easement.Stationing {
	return sp.l0
}

// Finish is the station of the spiral's end point.
func (sp *Spiral) Finish() easement.Stationing {
	return sp.l0.Advance(sp.length)
}

// Begin is the pose at the start of the spiral.
func (sp *Spiral) Begin() Pose {
	return sp.begin
}

// End is the pose at the end of the spiral.
func (sp *Spiral) End() Pose {
	if len(sp.strokes) == 0 {
		return sp.begin
	}
	return sp.strokes[len(sp.strokes)-1].End()
}

// At returns the stroke covering station l. A station on the boundary of two
// strokes belongs to the latter one, the finish station to the last stroke.
func (sp *Spiral) At(l easement.Stationing) (Stroke, bool) {
	if l < sp.Start() || l > sp.Finish() {
		return Stroke{}, false
	}
	_, i := sp.index.Floor(float64(l))
	if i == nil {
		return Stroke{}, false
	}
	return sp.strokes[i.(int)], true
}
