// Package errors provides structured error reporting for flick tooling.
//
// The scroll core never fails; these types describe failures at its edges:
// malformed scenario scripts, bad configuration, unmet expectations, and
// panics recovered from a host frame loop.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParsing indicates a malformed scenario or event script.
	KindParsing
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindAssertion indicates a scenario expectation that did not hold.
	KindAssertion
	// KindRender indicates a failure producing output such as a plot.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindConfig:
		return "config"
	case KindAssertion:
		return "assertion"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DriftError represents a structured error at a package boundary.
type DriftError struct {
	// Op is the operation that failed (e.g., "scenario.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Source is the file or script name involved, if any.
	Source string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DriftError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] source=%s: %v", e.Op, e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DriftError) Unwrap() error {
	return e.Err
}

// Wrap returns a DriftError for err, or nil when err is nil.
func Wrap(op string, kind ErrorKind, source string, err error) error {
	if err == nil {
		return nil
	}
	return &DriftError{Op: op, Kind: kind, Source: source, Err: err}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "demo.frame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError describes a field of a script or config that could not be used.
type ParseError struct {
	// Field is the path of the offending field (e.g., "steps[3].advance").
	Field string
	// Reason explains what was wrong.
	Reason string
	// Got is the value found, if any.
	Got any
}

func (e *ParseError) Error() string {
	if e.Got != nil {
		return fmt.Sprintf("invalid %s: %s (got %v)", e.Field, e.Reason, e.Got)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AssertionError reports an expectation that did not hold.
type AssertionError struct {
	// Step is the zero-based index of the failing step.
	Step int
	// Elapsed is the simulated time at which the check ran.
	Elapsed time.Duration
	// Field names what was checked (e.g., "offset.x").
	Field string
	Want  any
	Got   any
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("step %d at %v: %s = %v, want %v", e.Step, e.Elapsed, e.Field, e.Got, e.Want)
}

// ErrorHandler receives errors reported by flick tooling.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DriftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
