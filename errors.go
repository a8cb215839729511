package vg

import "errors"

// Status classifies the outcome of an operation. Every error returned by
// this module wraps one of the sentinel errors below, so callers that need
// a result code can recover it with StatusOf.
type Status int

// Status values.
const (
	StatusOk Status = iota
	StatusGenericError
	StatusInvalidParameter
	StatusOutOfMemory
	StatusInsufficientBuffer
	StatusWrongState
	StatusAborted
)

// Sentinel errors, one per non-Ok Status.
var (
	// ErrGeneric reports a failure with no more specific classification.
	ErrGeneric = errors.New("vg: generic error")

	// ErrInvalidParameter reports an out-of-range index or an unusable argument.
	ErrInvalidParameter = errors.New("vg: invalid parameter")

	// ErrOutOfMemory reports an allocation-class failure.
	ErrOutOfMemory = errors.New("vg: out of memory")

	// ErrInsufficientBuffer reports that a caller-provided buffer is too small.
	ErrInsufficientBuffer = errors.New("vg: insufficient buffer")

	// ErrWrongState reports an operation that is not valid in the object's
	// current state, such as drawing on a closed spline.
	ErrWrongState = errors.New("vg: wrong state")

	// ErrAborted reports an operation that was stopped before completion.
	ErrAborted = errors.New("vg: aborted")
)

var statusErrors = [...]struct {
	status Status
	err    error
}{
	{StatusInvalidParameter, ErrInvalidParameter},
	{StatusOutOfMemory, ErrOutOfMemory},
	{StatusInsufficientBuffer, ErrInsufficientBuffer},
	{StatusWrongState, ErrWrongState},
	{StatusAborted, ErrAborted},
	{StatusGenericError, ErrGeneric},
}

// StatusOf maps an error to its Status. A nil error is StatusOk; errors that
// wrap none of the sentinels are StatusGenericError.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOk
	}
	for _, se := range statusErrors {
		if errors.Is(err, se.err) {
			return se.status
		}
	}
	return StatusGenericError
}

// Err returns the sentinel error for s, or nil for StatusOk.
func (s Status) Err() error {
	for _, se := range statusErrors {
		if se.status == s {
			return se.err
		}
	}
	if s == StatusOk {
		return nil
	}
	return ErrGeneric
}

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusGenericError:
		return "GenericError"
	case StatusInvalidParameter:
		return "InvalidParameter"
	case StatusOutOfMemory:
		return "OutOfMemory"
	case StatusInsufficientBuffer:
		return "InsufficientBuffer"
	case StatusWrongState:
		return "WrongState"
	case StatusAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}
