package clipper

import "github.com/pkg/errors"

// ErrInvalidInput indicates a coordinate outside the supported range or a
// degenerate path was supplied to AddPath/AddPaths (spec.md §7).
var ErrInvalidInput = errors.New("clipper: invalid input")

// ErrReentrant indicates Execute was invoked while another Execute call on
// the same instance had not yet returned (spec.md §7).
var ErrReentrant = errors.New("clipper: Execute called re-entrantly")

// internalError signals a broken AEL/scanbeam invariant: a bug in the
// engine, not a caller mistake (spec.md §7, InternalInvariantViolation).
// It is always raised as a panic and recovered at the top of Execute, which
// then returns false; callers can retrieve the description via LastError.
type internalError struct {
	err error
}

func (e *internalError) Error() string { return e.err.Error() }

func raiseInvariant(format string, args ...interface{}) {
	panic(&internalError{err: errors.Errorf(format, args...)})
}

// recoverInvariant should be deferred at the top of every exported Execute
// method. On a raised internalError it sets *outErr and *ok=false; any other
// panic is re-raised (it is not this package's to swallow).
func recoverInvariant(ok *bool, outErr *error) {
	if r := recover(); r != nil {
		ie, isInternal := r.(*internalError)
		if !isInternal {
			panic(r)
		}
		*ok = false
		*outErr = errors.WithStack(ie.err)
	}
}
