package news

import "errors"

// Failure classes for upstream requests. Callers render the same fallback
// text for all of them; the class only shows up in logs, metrics and spans.
var (
	ErrUnreachable = errors.New("news api unreachable")
	ErrStatus      = errors.New("news api returned an error status")
	ErrMalformed   = errors.New("news api returned a malformed payload")
)

// Outcome labels used for metrics and span status.
const (
	OutcomeOK          = "ok"
	OutcomeUnreachable = "unreachable"
	OutcomeStatus      = "status"
	OutcomeMalformed   = "malformed"
)

// Result is the outcome of one upstream request: either a decoded value or
// a failure. The value is only reachable through Ok, which forces callers to
// handle the failed case.
type Result[T any] struct {
	value T
	err   error
}

// Succeeded wraps a decoded value.
func Succeeded[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failed wraps a request failure. A nil err is replaced with ErrUnreachable
// so a failed Result is never mistaken for a success.
func Failed[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnreachable
	}
	return Result[T]{err: err}
}

// Ok returns the value and true on success, or the zero value and false.
func (r Result[T]) Ok() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure cause, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Outcome classifies err into one of the Outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrStatus):
		return OutcomeStatus
	case errors.Is(err, ErrMalformed):
		return OutcomeMalformed
	default:
		return OutcomeUnreachable
	}
}
