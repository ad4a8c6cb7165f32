// Package errors provides structured error handling for the primitives framework.
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
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindConfig indicates a configuration parsing failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PrimitiveError represents a structured error in the primitives framework.
type PrimitiveError struct {
	// Op is the operation that failed (e.g., "theme.LoadFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PrimitiveError) Unwrap() error {
	return e.Err
}

// New wraps err as a PrimitiveError with the given operation and kind.
func New(op string, kind ErrorKind, err error) *PrimitiveError {
	return &PrimitiveError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// BuildError represents a panic recovered during a widget build.
type BuildError struct {
	// Widget is the type name of the widget whose build failed.
	Widget string
	// Element is the type name of the hosting element.
	Element string
	// Recovered is the value passed to panic().
	Recovered any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build of %s failed: %v", e.Widget, e.Recovered)
}

// PanicError represents a recovered panic outside of a build.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dom.DispatchClick").
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
