package termpaint

import (
	"errors"
	"fmt"
)

var (
	// ErrInitialization reports that the terminal handle or descriptor could
	// not be acquired. An Engine cannot exist without one.
	ErrInitialization = errors.New("termpaint: terminal unavailable")

	// ErrInvalidGeometry reports a region whose endpoint lies before its
	// origin on either axis
	ErrInvalidGeometry = errors.New("termpaint: inverted region bounds")

	// ErrTornDown is returned by primitives called after PostProcess
	ErrTornDown = errors.New("termpaint: engine torn down")
)

// IOError wraps a failure of the backend while carrying out Op. The Engine's
// state is left as it was before the failed call.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("termpaint: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func ioError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}

func initError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInitialization, fmt.Sprintf(format, args...))
}
