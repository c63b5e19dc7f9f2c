package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes of f5rail.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // host could not be answered
	ExitCommandError = 2 // bad invocation: no feature, no exchange file, invalid flags
)

// ExitError carries the exit code f5rail terminates with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps err to an exit code. Errors other than ExitError are
// failures.
func GetExitCode(err error) int {
	var xerr *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &xerr):
		return xerr.Code
	}
	return ExitFailure
}

// CLIResponse is the envelope of JSON output.
type CLIResponse struct {
	Status string    `json:"status"` // ok | error
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError names the offending flag, if any.
type CLIError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// OutputFormatter prints results as text or JSON, depending on --format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (f *OutputFormatter) isJSON() bool {
	return f.Format == "json"
}

// Success prints data; text renders it in text format.
func (f *OutputFormatter) Success(data any, text func(io.Writer)) error {
	if !f.isJSON() {
		text(f.Writer)
		return nil
	}
	return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
}

// Error prints a rejection of field. field may be empty.
func (f *OutputFormatter) Error(field, message string) error {
	if f.isJSON() {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Field: field, Message: message},
		})
	}
	var err error
	if field == "" {
		_, err = fmt.Fprintf(f.Writer, "Error: %s\n", message)
	} else {
		_, err = fmt.Fprintf(f.Writer, "Error [%s]: %s\n", field, message)
	}
	return err
}
