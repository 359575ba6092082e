package screen

import (
	"errors"
	"fmt"
)

// FailureKind classifies a capture failure for the caller-facing boundary.
type FailureKind int

const (
	// KindResolution: no window/monitor matched, or an index/ordinal was out
	// of range, or a selector could not be constructed.
	KindResolution FailureKind = iota
	// KindState: the target window is minimized and restoration was not
	// permitted.
	KindState
	// KindCapture: background capture failed and the foreground fallback was
	// disallowed or also failed.
	KindCapture
	// KindEnvironment: the OS capture facility itself could not run.
	KindEnvironment
	// KindIO: the destination directory could not be created, or the output
	// file is absent after a reported success.
	KindIO
)

func (k FailureKind) String() string {
	switch k {
	case KindResolution:
		return "resolution"
	case KindState:
		return "state"
	case KindCapture:
		return "capture"
	case KindEnvironment:
		return "environment"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Failure is a typed capture failure with a human-readable diagnostic.
type Failure struct {
	Kind FailureKind
	Msg  string
	Err  error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Msg, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
}

func (f *Failure) Unwrap() error { return f.Err }

// Resolutionf builds a resolution failure.
func Resolutionf(format string, args ...interface{}) *Failure {
	return &Failure{Kind: KindResolution, Msg: fmt.Sprintf(format, args...)}
}

// Statef builds a window-state failure.
func Statef(format string, args ...interface{}) *Failure {
	return &Failure{Kind: KindState, Msg: fmt.Sprintf(format, args...)}
}

// Capturef builds a capture failure.
func Capturef(format string, args ...interface{}) *Failure {
	return &Failure{Kind: KindCapture, Msg: fmt.Sprintf(format, args...)}
}

// Environmentf builds an environment failure wrapping the backend error.
func Environmentf(err error, format string, args ...interface{}) *Failure {
	return &Failure{Kind: KindEnvironment, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IOf builds an IO failure wrapping the filesystem error.
func IOf(err error, format string, args ...interface{}) *Failure {
	return &Failure{Kind: KindIO, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the failure kind from err. Errors that did not originate
// as a Failure are treated as environment failures.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindEnvironment
}
