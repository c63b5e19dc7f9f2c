package transition

import (
	"fmt"
	"iter"
	"math"

	"github.com/f5rail/easement"
)

// stationTolerance snaps the end station of a curve onto a whole station when
// floating point noise puts it a hair beyond one.
const stationTolerance = 1e-9

// Interval is a piece of a transition curve between two arc lengths, measured
// from the start of the curve.
type Interval struct {
	S0 easement.ArcLength
	S1 easement.ArcLength
}

// Mid is the arc length in the middle of the interval.
func (iv Interval) Mid() easement.ArcLength {
	return (iv.S0 + iv.S1) / 2
}

// Len is the length of the interval.
func (iv Interval) Len() easement.ArcLength {
	return iv.S1.Sub(iv.S0)
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g,%g]", float64(iv.S0), float64(iv.S1))
}

// Segment cuts a curve starting at station l0 with the given length at every
// whole station. Only the first interval may start and only the last one may
// end off a whole station. A curve shorter than one station which does not
// cross a whole station yields a single interval.
//
// The last interval ends at exactly length. No empty interval is produced.
// Stations too large to resolve length yield the whole curve as one interval.
// Callers guarantee length > 0 and a finite l0.
func Segment(l0 easement.Stationing, length easement.ArcLength) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		l1 := snap(l0, l0.Advance(length))
		if l1 <= l0 {
			tracer().Infof("station %s too coarse for length %s, not cut", l0, length)
			yield(Interval{S0: 0, S1: length})
			return
		}
		from := l0
		for from < l1 {
			to := from.NextWhole()
			s1 := to.Since(l0)
			if to >= l1 || to <= from || s1 >= length {
				to, s1 = l1, length
			}
			if !yield(Interval{S0: from.Since(l0), S1: s1}) {
				return
			}
			from = to
		}
	}
}

// Intervals collects the intervals of Segment.
func Intervals(l0 easement.Stationing, length easement.ArcLength) []Interval {
	n := int(math.Ceil(float64(length))) + 1
	intervals := make([]Interval, 0, n)
	for iv := range Segment(l0, length) {
		intervals = append(intervals, iv)
	}
	return intervals
}

func snap(l0, l1 easement.Stationing) easement.Stationing {
	w := easement.Stationing(math.Round(float64(l1)))
	if math.Abs(float64(l1-w)) <= stationTolerance && w > l0 {
		return w
	}
	return l1
}
