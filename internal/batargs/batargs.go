// Package batargs parses the arguments a CAD host passes to an external
// transformation program through its batch file.
//
// Arguments have the form /KEY:VALUE. Tokens without a colon are ignored,
// as is the leading slash. Later tokens override earlier ones with the same
// key.
//
// Messages of ArgError are shown to the host user as they are, so they are
// written in the host's language.
package batargs

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/f5rail/easement"
	"github.com/f5rail/easement/transition"
)

// Keys of the host arguments.
const (
	KeyTransition = "TRANSITION" // diminish function: 1 sine, 2 linear
	KeyFile       = "FILE"       // exchange file
	KeyR0         = "R0"         // radius at the start; absent or 0 means straight
	KeyR1         = "R1"         // radius at the end; absent or 0 means straight
	KeyTCL        = "TCL"        // transition curve length
	KeyL0         = "L0"         // station of the start, default 0
)

// Sentinels matched by ArgError.
var (
	ErrNoFeature = errors.New("no feature selected")
	ErrMissing   = errors.New("missing argument")
	ErrNotNumber = errors.New("argument is not a number")
	ErrDiminish  = errors.New("unknown diminish function")
	ErrRange     = errors.New("argument out of range")
)

// ArgError is an invalid host argument.
type ArgError struct {
	Key     string // offending key, empty for ErrNoFeature
	Err     error  // one of the sentinels above
	Message string // message for the host user
}

func (e *ArgError) Error() string {
	return e.Message
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

func missing(key string) *ArgError {
	return &ArgError{Key: key, Err: ErrMissing, Message: key + "を指定してください"}
}

func notNumber(key string) *ArgError {
	return &ArgError{Key: key, Err: ErrNotNumber, Message: key + "を数値で入力してください"}
}

// Transition is a request to draw a transition curve.
type Transition struct {
	File string // exchange file to answer to

	// Param holds the curve, unless Err is set. Parameter errors are not
	// fatal: they are reported to the host through the exchange file.
	Param transition.Param
	Err   error
}

// Parse reads the host arguments. A missing feature or exchange file is
// an error; errors in the curve parameters are returned in Transition.Err.
func Parse(args []string) (*Transition, error) {
	m := Map(args)
	diminish, ok := m[KeyTransition]
	if !ok {
		return nil, &ArgError{Err: ErrNoFeature, Message: "機能を指定してください"}
	}
	file, ok := m[KeyFile]
	if !ok {
		return nil, missing(KeyFile)
	}
	tr := &Transition{File: file}
	tr.Param, tr.Err = param(diminish, m)
	return tr, nil
}

// Map splits /KEY:VALUE tokens into a map.
func Map(args []string) map[string]string {
	m := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(strings.TrimPrefix(arg, "/"), ":")
		if !ok {
			continue
		}
		m[key] = value
	}
	return m
}

func param(diminish string, m map[string]string) (transition.Param, error) {
	var p transition.Param
	switch diminish {
	case "1":
		p.Diminish = transition.Sine
	case "2":
		p.Diminish = transition.Linear
	default:
		return p, &ArgError{Key: KeyTransition, Err: ErrDiminish, Message: "緩和曲線関数に正しい値を入力してください"}
	}
	var err error
	if p.K0, err = curvature(m, KeyR0); err != nil {
		return p, err
	}
	if p.K1, err = curvature(m, KeyR1); err != nil {
		return p, err
	}
	value, ok := m[KeyTCL]
	if !ok {
		return p, missing(KeyTCL)
	}
	tcl, err := number(KeyTCL, value)
	if err != nil {
		return p, err
	}
	if tcl <= 0 {
		return p, &ArgError{Key: KeyTCL, Err: ErrRange, Message: "TCLに正数を入力してください"}
	}
	p.TCL = easement.ArcLength(tcl)
	if value, ok := m[KeyL0]; ok {
		l0, err := number(KeyL0, value)
		if err != nil {
			return p, err
		}
		p.L0 = easement.Stationing(l0)
	}
	return p, nil
}

// curvature reads an optional radius.
func curvature(m map[string]string, key string) (easement.Curvature, error) {
	value, ok := m[key]
	if !ok {
		return easement.Straight, nil
	}
	r, err := number(key, value)
	if err != nil {
		return 0, err
	}
	return easement.CurvatureOf(&r), nil
}

// number parses a finite decimal number.
func number(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, notNumber(key)
	}
	return f, nil
}
