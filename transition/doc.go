/*
Package transition lays out railway transition (easement) curves.

A transition curve connects two tracks of different curvature, e.g. a
straight and a circular arc, with curvature varying continuously between
them. This package approximates the curve by a sequence of circular arcs and
straights, one per stationing interval:

	spiral, err := transition.Plot(transition.Param{
	    Diminish: transition.Sine,
	    K0:       easement.Radius(300).Curvature(),
	    K1:       easement.Radius(-300).Curvature(),
	    TCL:      19,
	})

The chainage axis is cut at every whole station, so the boundaries between
segments fall on whole stations, apart from the very first and last one.
Each interval is given the curvature of the diminish function at its
midpoint and is drawn as an arc of that curvature, starting where the
previous segment ended.

Positive curvature turns right, i.e. clockwise; angles are measured
counter-clockwise from the x-axis.

# BSD License

# Copyright (c) The f5rail Authors

All rights reserved.

Please refer to the license file for more information.
*/
package transition

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'transition'
func tracer() tracing.Trace {
	return tracing.Select("transition")
}
