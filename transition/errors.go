package transition

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every error rejecting a Param.
var ErrInvalidParameter = errors.New("invalid transition parameter")

// InvalidParameterError reports a parameter a transition curve cannot be
// laid out with.
type InvalidParameterError struct {
	Field  string // name of the offending field
	Reason string // what is wrong with it
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidParameter, e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidParameter) hold.
func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field, reason string) error {
	tracer().Errorf("rejecting parameter %s: %s", field, reason)
	return &InvalidParameterError{Field: field, Reason: reason}
}
