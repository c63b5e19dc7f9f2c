package jwc

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/text/encoding"

	"github.com/f5rail/easement"
	"github.com/f5rail/easement/transition"
)

// DefaultMaxArcRadius is the radius from which on arcs are written as
// straights. The host draws such arcs unreliably.
const DefaultMaxArcRadius = 100000.0

// Writer writes records to an exchange file.
//
// The first write error sticks: every subsequent call returns it without
// writing anything.
type Writer struct {
	out          *bufio.Writer
	closer       io.Closer
	enc          *encoding.Encoder
	maxArcRadius float64
	err          error
}

// Option configures a Writer.
type Option func(*Writer)

// WithEncoding selects the character set of the file. Default is Shift-JIS.
func WithEncoding(e Encoding) Option {
	return func(w *Writer) {
		w.enc = e.encoder()
	}
}

// WithMaxArcRadius sets the radius from which on arcs are written as straights.
// Non-positive values leave the default in place.
func WithMaxArcRadius(r float64) Option {
	return func(w *Writer) {
		if r > 0 {
			w.maxArcRadius = r
		}
	}
}

// NewWriter creates a Writer on top of out. If out is an io.Closer, Close
// will close it.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:          bufio.NewWriter(out),
		enc:          ShiftJIS.encoder(),
		maxArcRadius: DefaultMaxArcRadius,
	}
	if c, ok := out.(io.Closer); ok {
		w.closer = c
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Create creates or truncates the exchange file at path.
func Create(path string, opts ...Option) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to create exchange file %s", path)
	}
	tracer().Debugf("writing exchange file %s", path)
	return NewWriter(f, opts...), nil
}

// Error writes an error record. The host shows only the first error of a
// file and ignores every other record once it has seen one.
func (w *Writer) Error(err error) error {
	tracer().Infof("reporting error to host: %v", err)
	return w.puts("he" + oneLine(err.Error()))
}

// Notice writes a notice record. The host shows only the last notice.
// A notice between coordinate records breaks polylines, so notices are
// best written first.
func (w *Writer) Notice(msg string) error {
	return w.puts("h#" + oneLine(msg))
}

// Diminish writes the notice announcing a transition curve of kind d.
func (w *Writer) Diminish(d transition.Diminish) error {
	return w.Notice(Title(d) + "を描画しました。")
}

// Curve writes an arc around center c with radius r between the central
// angles a0 and a1. The angles may be given in either order.
func (w *Writer) Curve(c easement.Point, r easement.Radius, a0, a1 easement.CentralAngle) error {
	from, to := degrees(a0), degrees(a1)
	if from > to {
		from, to = to, from
	}
	return w.puts(strings.Join([]string{"ci",
		num(c.X()), num(c.Y()), num(float64(r.Abs())), num(from), num(to),
	}, " "))
}

// Straight writes a straight line from p0 to p1.
func (w *Writer) Straight(p0, p1 easement.Point) error {
	return w.puts(strings.Join([]string{
		num(p0.X()), num(p0.Y()), num(p1.X()), num(p1.Y()),
	}, " "))
}

// Stroke writes st as an arc, or as a straight if st is straight or its
// radius reaches the maximum arc radius.
func (w *Writer) Stroke(st transition.Stroke) error {
	c, isArc := st.Center()
	r, _ := st.Radius()
	if isArc && float64(r.Abs()) < w.maxArcRadius {
		return w.Curve(c, r, st.A0(), st.A1())
	}
	return w.Straight(st.P0(), st.P1())
}

// Strokes writes every stroke of seq.
func (w *Writer) Strokes(seq iter.Seq[transition.Stroke]) error {
	n := 0
	for st := range seq {
		if err := w.Stroke(st); err != nil {
			return err
		}
		n++
	}
	tracer().Debugf("wrote %d strokes", n)
	return nil
}

// Spiral writes the strokes of sp.
func (w *Writer) Spiral(sp *transition.Spiral) error {
	return w.Strokes(func(yield func(transition.Stroke) bool) {
		for _, st := range sp.All() {
			if !yield(st) {
				return
			}
		}
	})
}

// Plot lays out the transition curve for p and writes it, preceded by its
// notice. If p is invalid, an error record is written instead. The returned
// error reports failure to write only.
func (w *Writer) Plot(p transition.Param) error {
	strokes, err := transition.Strokes(p)
	if err != nil {
		return w.Error(err)
	}
	if err := w.Diminish(p.Diminish); err != nil {
		return err
	}
	return w.Strokes(strokes)
}

// Flush writes buffered records to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.out.Flush(); err != nil {
		w.err = pkgerrors.Wrap(err, "failed to write exchange file")
	}
	return w.err
}

// Close flushes w and closes the underlying writer, if it is closable.
func (w *Writer) Close() error {
	err := w.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); cerr != nil && err == nil {
			err = pkgerrors.Wrap(cerr, "failed to close exchange file")
		}
	}
	return err
}

// puts writes s and a line break.
func (w *Writer) puts(s string) error {
	if w.err != nil {
		return w.err
	}
	b, err := w.enc.Bytes([]byte(s))
	if err != nil {
		w.err = pkgerrors.Wrapf(err, "failed to encode %q", s)
		return w.err
	}
	b = append(b, '\r', '\n')
	if _, err := w.out.Write(b); err != nil {
		w.err = pkgerrors.Wrap(err, "failed to write exchange file")
	}
	return w.err
}

// Title is the name the host user knows a diminish function by.
func Title(d transition.Diminish) string {
	switch d {
	case transition.Sine:
		return "サイン半波長逓減曲線"
	case transition.Linear:
		return "直線逓減（クロソイド曲線）"
	}
	return d.String()
}

func degrees(a easement.CentralAngle) float64 {
	return float64(a.Radians().Degree())
}

// num formats f with as few digits as needed to read it back unchanged.
func num(f float64) string {
	if f == 0 {
		f = 0 // no "-0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// oneLine keeps a message from breaking the record structure.
func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
