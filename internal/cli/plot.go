package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/f5rail/easement"
	"github.com/f5rail/easement/jwc"
	"github.com/f5rail/easement/transition"
)

// PlotOptions holds the flags of the plot command.
type PlotOptions struct {
	Diminish string
	R0, R1   float64 // 0 means straight
	TCL      float64
	L0       float64
	X0, Y0   float64
	T0       float64 // degrees
	JWC      string  // optional exchange file to write as well
}

// Param converts the flags to curve parameters.
func (o *PlotOptions) Param() (transition.Param, error) {
	d, err := transition.ParseDiminish(o.Diminish)
	if err != nil {
		return transition.Param{}, err
	}
	return transition.Param{
		Diminish: d,
		K0:       easement.CurvatureOf(&o.R0),
		K1:       easement.CurvatureOf(&o.R1),
		L0:       easement.Stationing(o.L0),
		TCL:      easement.ArcLength(o.TCL),
		P0:       easement.P(o.X0, o.Y0),
		T0:       easement.Tangent(easement.Degree(o.T0)),
	}, nil
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Lay out a transition curve and print its strokes",
		Long: `Lay out a transition curve and print its strokes.

The curve is approximated by one circular arc per station interval. Radii are
signed: positive radii turn right, negative radii turn left, 0 is straight.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(rootOpts, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Diminish, "diminish", "sine", "diminish function (sine|linear)")
	cmd.Flags().Float64Var(&opts.R0, "r0", 0, "radius at the start")
	cmd.Flags().Float64Var(&opts.R1, "r1", 0, "radius at the end")
	cmd.Flags().Float64Var(&opts.TCL, "tcl", 0, "transition curve length, must be positive")
	cmd.Flags().Float64Var(&opts.L0, "l0", 0, "station of the start")
	cmd.Flags().Float64Var(&opts.X0, "x0", 0, "x of the start point")
	cmd.Flags().Float64Var(&opts.Y0, "y0", 0, "y of the start point")
	cmd.Flags().Float64Var(&opts.T0, "t0", 0, "direction at the start, degrees counter-clockwise from the x-axis")
	cmd.Flags().StringVar(&opts.JWC, "jwc", "", "also write the strokes to this exchange file")

	return cmd
}

// radiusPlaces is the precision of printed radii.
const radiusPlaces = 9

// StrokeResult is the printed form of a stroke.
type StrokeResult struct {
	Index   int         `json:"index"`
	Station float64     `json:"station"`
	Length  float64     `json:"length"`
	Radius  *float64    `json:"radius,omitempty"` // absent for straights
	Center  *[2]float64 `json:"center,omitempty"`
	P0      [2]float64  `json:"p0"`
	P1      [2]float64  `json:"p1"`
	T0      float64     `json:"t0"` // degrees
	T1      float64     `json:"t1"` // degrees
}

// PlotResult is the printed form of a spiral.
type PlotResult struct {
	Diminish string         `json:"diminish"`
	Start    float64        `json:"start"`
	Finish   float64        `json:"finish"`
	Strokes  []StrokeResult `json:"strokes"`
}

func runPlot(rootOpts *RootOptions, opts *PlotOptions, out io.Writer) error {
	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: out}

	p, err := opts.Param()
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		field := "diminish"
		var ipe *transition.InvalidParameterError
		if errors.As(err, &ipe) {
			field = ipe.Field
		}
		if ferr := formatter.Error(field, err.Error()); ferr != nil {
			return ferr
		}
		return WrapExitError(ExitCommandError, "invalid curve parameters", err)
	}

	sp, err := transition.Plot(p)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid curve parameters", err)
	}
	logrus.Debugf("laid out %d strokes", sp.Len())

	if opts.JWC != "" {
		if err := writeExchangeFile(rootOpts, opts.JWC, p.Diminish, sp); err != nil {
			return WrapExitError(ExitFailure, "cannot write exchange file", err)
		}
	}

	result := newPlotResult(p.Diminish, sp)
	return formatter.Success(result, result.print)
}

func writeExchangeFile(rootOpts *RootOptions, path string, d transition.Diminish, sp *transition.Spiral) error {
	w, err := jwc.Create(path, rootOpts.settings().WriterOptions()...)
	if err != nil {
		return err
	}
	err = w.Diminish(d)
	if err == nil {
		err = w.Spiral(sp)
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}

func newPlotResult(d transition.Diminish, sp *transition.Spiral) *PlotResult {
	res := &PlotResult{
		Diminish: d.String(),
		Start:    float64(sp.Start()),
		Finish:   float64(sp.Finish()),
		Strokes:  make([]StrokeResult, 0, sp.Len()),
	}
	station := sp.Start()
	for i, st := range sp.All() {
		sr := StrokeResult{
			Index:   i,
			Station: float64(station),
			Length:  float64(st.Len()),
			P0:      [2]float64{st.P0().X(), st.P0().Y()},
			P1:      [2]float64{st.P1().X(), st.P1().Y()},
			T0:      float64(st.T0().Radians().Degree()),
			T1:      float64(st.T1().Radians().Degree()),
		}
		if r, ok := st.Radius(); ok {
			rm := easement.RoundTo(r.Meters(), radiusPlaces)
			sr.Radius = &rm
			c, _ := st.Center()
			sr.Center = &[2]float64{c.X(), c.Y()}
		}
		res.Strokes = append(res.Strokes, sr)
		station = station.Advance(st.Len())
	}
	return res
}

func (res *PlotResult) print(w io.Writer) {
	fmt.Fprintf(w, "%s transition from %g to %g, %d strokes\n", res.Diminish, res.Start, res.Finish, len(res.Strokes))
	for _, sr := range res.Strokes {
		radius := "straight"
		if sr.Radius != nil {
			radius = fmt.Sprintf("R %.2f", *sr.Radius)
		}
		fmt.Fprintf(w, "%3d  %9.3f  %6.3f  %-12s  (%.4f, %.4f) -> (%.4f, %.4f)  %.4f°\n",
			sr.Index, sr.Station, sr.Length, radius, sr.P0[0], sr.P0[1], sr.P1[0], sr.P1[1], sr.T1)
	}
}
