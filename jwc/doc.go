/*
Package jwc reads and writes the coordinate exchange file a CAD host hands
to an external transformation program.

The exchange file is line oriented, every line terminated by CR LF and
encoded in Shift-JIS. An external program answers the host by writing
records of these kinds:

	he<message>          error; the host shows the first one and draws nothing
	h#<message>          notice; the host shows the last one
	ci cx cy r a0 a1     circular arc around (cx,cy), from a0 to a1 degrees
	x0 y0 x1 y1          straight line

Coordinates are meters in a y-up plane, angles are counter-clockwise degrees
with a0 < a1.

# BSD License

# Copyright (c) The f5rail Authors

All rights reserved.

Please refer to the license file for more information.
*/
package jwc

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'jwc'
func tracer() tracing.Trace {
	return tracing.Select("jwc")
}
